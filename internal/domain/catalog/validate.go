package catalog

import (
	"fmt"
)

// Warning is a soft catalog invariant violation. A catalog with warnings still loads.
type Warning struct {
	Table   string `json:"table"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s/%s: %s", w.Table, w.ID, w.Message)
}

// Lint reports the expectations a well-formed catalog should meet.
func (c *Catalog) Lint() []Warning {
	var warnings []Warning

	for _, d := range c.devices {
		if d.Price36 > d.Price24 {
			warnings = append(warnings, Warning{"devices", d.ID,
				fmt.Sprintf("36-month price %.2f exceeds 24-month price %.2f", d.Price36, d.Price24)})
		}
		if d.Price24 <= 0 || d.Price36 <= 0 {
			warnings = append(warnings, Warning{"devices", d.ID, "monthly prices must be positive"})
		}
		if len(d.Categories) == 0 {
			warnings = append(warnings, Warning{"devices", d.ID, "device has no categories"})
		}
	}

	for _, p := range c.plans {
		if p.StudentDiscount >= p.MonthlyPrice {
			warnings = append(warnings, Warning{"plans", p.ID, "student discount covers the whole price"})
		}
	}

	for i, tier := range c.sharedPlans {
		if tier.MaxLines <= 0 {
			warnings = append(warnings, Warning{"sharedPlans", tier.ID, "tier allows no lines"})
		}
		if i > 0 && tier.Price < c.sharedPlans[i-1].Price {
			warnings = append(warnings, Warning{"sharedPlans", tier.ID, "larger tier is cheaper than a smaller one"})
		}
	}

	for _, r := range c.refurbs {
		if r.Grade.Discount() == 0 {
			warnings = append(warnings, Warning{"refurbs", r.ID, fmt.Sprintf("unknown grade %q", r.Grade)})
		}
		if r.BatteryHealth < 0 || r.BatteryHealth > 100 {
			warnings = append(warnings, Warning{"refurbs", r.ID, "battery health must be a percentage"})
		}
	}

	if len(c.zones) == 0 {
		warnings = append(warnings, Warning{"coverage", "-", "no coverage zones"})
	}

	return warnings
}
