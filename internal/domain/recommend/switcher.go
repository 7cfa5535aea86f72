package recommend

import (
	"slices"
	"strings"

	"storefront/internal/domain/entity"
)

// byoBrands are the model substrings accepted for bring-your-own-device.
var byoBrands = []string{"iphone", "samsung", "galaxy", "pixel", "google", "oneplus", "motorola"}

// esimOnlyModels are the model substrings that only take an eSIM.
var esimOnlyModels = []string{"iphone 14", "iphone 15", "pixel"}

// CheckBYO reports whether a device model can be brought to the network.
func CheckBYO(model string) entity.BYOInfo {
	name := strings.ToLower(strings.TrimSpace(model))

	info := entity.BYOInfo{
		Model:      model,
		Compatible: containsAny(name, byoBrands),
		SimType:    entity.SimBoth,
	}
	if containsAny(name, esimOnlyModels) {
		info.SimType = entity.SimESIM
	}

	return info
}

// RefurbFilter narrows the refurbished listing.
type RefurbFilter struct {
	Grade            entity.RefurbGrade `query:"grade" json:"grade"`
	MinBatteryHealth int                `query:"min_battery_health" json:"min_battery_health"`
}

// ListRefurbs returns the matching refurbished units, cheapest first.
func ListRefurbs(refurbs []entity.RefurbDevice, filter RefurbFilter) []entity.RefurbDevice {
	out := slices.DeleteFunc(slices.Clone(refurbs), func(r entity.RefurbDevice) bool {
		if filter.Grade != "" && r.Grade != filter.Grade {
			return true
		}

		return r.BatteryHealth < filter.MinBatteryHealth
	})

	slices.SortStableFunc(out, func(a, b entity.RefurbDevice) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	})

	return out
}
