package recommend

import "storefront/internal/util"

// DefaultTermMonths is used when a true cost request has no positive term.
const DefaultTermMonths = 24

// TrueCostInput is the True Cost Calculator form.
type TrueCostInput struct {
	DeviceMonthly float64 `json:"device_monthly" validate:"min=0"`
	PlanMonthly   float64 `json:"plan_monthly" validate:"min=0"`
	Months        int     `json:"months"`
	Promo         float64 `json:"promo" validate:"min=0"` // Monthly promotional credit.
}

// CostRow is one provider line of the comparison.
type CostRow struct {
	Provider string  `json:"provider"`
	Monthly  float64 `json:"monthly"`
	Upfront  float64 `json:"upfront"`
	Total    float64 `json:"total"`
}

// TrueCost is the full-term cost of an offer compared against two competitors.
type TrueCost struct {
	Months      int       `json:"months"`
	Total       float64   `json:"total"`
	TrueMonthly float64   `json:"true_monthly"`
	Competitors []CostRow `json:"competitors"`
}

// competitor describes how a rival prices the same device and plan.
type competitor struct {
	name        string
	planOffset  float64
	upfrontFees float64
}

var competitors = []competitor{
	{name: "Competitor A", planOffset: 10, upfrontFees: 50},
	{name: "Competitor B", planOffset: -5, upfrontFees: 30},
}

// CalculateTrueCost computes (device + plan - promo) x months and the competitor totals
// (device + plan + offset) x months + upfront fees.
func CalculateTrueCost(in TrueCostInput) TrueCost {
	months := in.Months
	if months <= 0 {
		months = DefaultTermMonths
	}

	monthly := in.DeviceMonthly + in.PlanMonthly - in.Promo
	total := util.RoundCents(monthly * float64(months))

	rows := make([]CostRow, 0, len(competitors))
	for _, c := range competitors {
		rivalMonthly := in.DeviceMonthly + in.PlanMonthly + c.planOffset
		rows = append(rows, CostRow{
			Provider: c.name,
			Monthly:  util.RoundCents(rivalMonthly),
			Upfront:  c.upfrontFees,
			Total:    util.RoundCents(rivalMonthly*float64(months) + c.upfrontFees),
		})
	}

	return TrueCost{
		Months:      months,
		Total:       total,
		TrueMonthly: util.RoundCents(total / float64(months)),
		Competitors: rows,
	}
}
