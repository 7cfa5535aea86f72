package store

import (
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/wizard"
)

// CurrentCarrier describes the plan the shopper is leaving.
type CurrentCarrier struct {
	Name        string  `json:"name"`
	MonthlyBill float64 `json:"monthly_bill"`
	Lines       int     `json:"lines"`
}

// CarrierPatch is a partial current carrier update.
type CarrierPatch struct {
	Name        *string  `json:"name"`
	MonthlyBill *float64 `json:"monthly_bill" validate:"omitempty,min=0"`
	Lines       *int     `json:"lines" validate:"omitempty,min=1,max=10"`
}

// SwitcherUsage is how much the switcher uses their current plan.
type SwitcherUsage struct {
	Level  entity.UsageLevel `json:"level"`
	DataGB int               `json:"data_gb"`
}

// SwitcherUsagePatch is a partial switcher usage update.
type SwitcherUsagePatch struct {
	Level  *entity.UsageLevel `json:"level" validate:"omitempty,oneof=light moderate heavy"`
	DataGB *int               `json:"data_gb" validate:"omitempty,min=0"`
}

// Switcher is the value switcher session state.
type Switcher struct {
	Wizard        wizard.State    `json:"wizard"`
	Carrier       CurrentCarrier  `json:"carrier"`
	Usage         SwitcherUsage   `json:"usage"`
	BYO           *entity.BYOInfo `json:"byo,omitempty"`
	SelectedDeals []string        `json:"selected_deals"`
	PortingID     string          `json:"porting_id,omitempty"`
	Cart          Cart            `json:"cart"`
}

// NewSwitcher returns the initial value switcher state.
func NewSwitcher() *Switcher {
	return &Switcher{
		Wizard:        wizard.SwitcherFlow.Start(),
		Carrier:       CurrentCarrier{Lines: 1},
		Usage:         SwitcherUsage{Level: entity.UsageModerate},
		SelectedDeals: []string{},
		Cart:          newCart(),
	}
}

// SetCarrier merges the patch into the current carrier details.
func (s *Switcher) SetCarrier(p CarrierPatch) {
	setIf(&s.Carrier.Name, p.Name)
	setIf(&s.Carrier.MonthlyBill, p.MonthlyBill)
	setIf(&s.Carrier.Lines, p.Lines)
}

// SetUsage merges the patch into the usage answers.
func (s *Switcher) SetUsage(p SwitcherUsagePatch) {
	setIf(&s.Usage.Level, p.Level)
	setIf(&s.Usage.DataGB, p.DataGB)
}

// SetBYO stores the compatibility check. A compatible device clears any device in the cart.
func (s *Switcher) SetBYO(info entity.BYOInfo) {
	s.BYO = &info
	if info.Compatible {
		s.Cart.DeviceID = ""
	}
}

// ToggleDeal selects a deal, or unselects it when already selected.
func (s *Switcher) ToggleDeal(dealID string) {
	if i := slices.Index(s.SelectedDeals, dealID); i >= 0 {
		s.SelectedDeals = slices.Delete(s.SelectedDeals, i, i+1)

		return
	}
	s.SelectedDeals = append(s.SelectedDeals, dealID)
}

// SetPorting records the number transfer started for this session.
func (s *Switcher) SetPorting(portingID string) {
	s.PortingID = portingID
}

// SetCart merges the patch into the cart.
func (s *Switcher) SetCart(p CartPatch) {
	s.Cart.apply(p)
}

// BringsOwnDevice reports whether checkout should use the shopper's own phone.
func (s *Switcher) BringsOwnDevice() bool {
	return s.BYO != nil && s.BYO.Compatible && s.Cart.DeviceID == ""
}

// Reset restores the initial state.
func (s *Switcher) Reset() {
	*s = *NewSwitcher()
}

// Clone returns a deep copy.
func (s *Switcher) Clone() *Switcher {
	c := *s
	c.Wizard = cloneState(s.Wizard)
	c.SelectedDeals = slices.Clone(s.SelectedDeals)
	if s.BYO != nil {
		byo := *s.BYO
		c.BYO = &byo
	}

	return &c
}
