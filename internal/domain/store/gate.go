package store

import "storefront/internal/domain/wizard"

// Gate returns the step validator of the active store. Only the family household step has a
// rule; every other step accepts whatever the shopper entered.
func (s *Session) Gate() wizard.Gate {
	return wizard.GateFunc(func(step wizard.Step) wizard.Result {
		if s.Family != nil && step == wizard.StepHousehold {
			return wizard.ValidateHousehold(s.Family.Household)
		}

		return wizard.Passed()
	})
}
