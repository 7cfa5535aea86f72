package recommend

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTrueCost(t *testing.T) {
	cost := CalculateTrueCost(TrueCostInput{DeviceMonthly: 40, PlanMonthly: 49, Months: 24, Promo: 10})

	assert.Equal(t, 24, cost.Months)
	assert.Equal(t, 1896.0, cost.Total)
	assert.Equal(t, 79.0, cost.TrueMonthly)
	assert.Equal(t, []CostRow{
		{Provider: "Competitor A", Monthly: 99, Upfront: 50, Total: 2426},
		{Provider: "Competitor B", Monthly: 84, Upfront: 30, Total: 2046},
	}, cost.Competitors)
}

func TestCalculateTrueCost_DefaultTerm(t *testing.T) {
	for _, months := range []int{0, -6} {
		cost := CalculateTrueCost(TrueCostInput{DeviceMonthly: 20, PlanMonthly: 30, Months: months})

		assert.Equal(t, DefaultTermMonths, cost.Months)
		assert.Equal(t, 1200.0, cost.Total)
		assert.Equal(t, 50.0, cost.TrueMonthly)
	}

	cost := CalculateTrueCost(TrueCostInput{DeviceMonthly: 33.33, PlanMonthly: 45, Months: 36})
	assert.Equal(t, 2819.88, cost.Total)
	assert.Equal(t, 78.33, cost.TrueMonthly)
}

func TestCheckBYO(t *testing.T) {
	tests := []struct {
		model      string
		compatible bool
		simType    entity.SimType
	}{
		{"iPhone 15 Pro", true, entity.SimESIM},
		{"iPhone 14", true, entity.SimESIM},
		{"iPhone 13 mini", true, entity.SimBoth},
		{"Pixel 7a", true, entity.SimESIM},
		{"Samsung Galaxy S23", true, entity.SimBoth},
		{"OnePlus Nord", true, entity.SimBoth},
		{"  motorola edge  ", true, entity.SimBoth},
		{"Nokia 3310", false, entity.SimBoth},
		{"", false, entity.SimBoth},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			info := CheckBYO(tt.model)

			assert.Equal(t, tt.model, info.Model)
			assert.Equal(t, tt.compatible, info.Compatible)
			assert.Equal(t, tt.simType, info.SimType)
		})
	}
}

func TestListRefurbs(t *testing.T) {
	refurbs := testCatalog(t).Refurbs()

	ids := func(list []entity.RefurbDevice) []string {
		out := make([]string, len(list))
		for i, r := range list {
			out[i] = r.ID
		}

		return out
	}

	all := ListRefurbs(refurbs, RefurbFilter{})
	assert.Len(t, all, len(refurbs))
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Price, all[i].Price)
	}

	assert.Equal(t, []string{"refurb-pixel-8-pro-a", "refurb-iphone-15-pro-a"},
		ids(ListRefurbs(refurbs, RefurbFilter{Grade: entity.GradeA})))
	assert.Equal(t, []string{"refurb-pixel-8-pro-a", "refurb-iphone-15-pro-a"},
		ids(ListRefurbs(refurbs, RefurbFilter{MinBatteryHealth: 90})))
	assert.Empty(t, ListRefurbs(refurbs, RefurbFilter{Grade: entity.GradeC, MinBatteryHealth: 90}))
}
