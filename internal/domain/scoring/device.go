package scoring

import (
	"slices"
	"strings"

	"storefront/internal/domain/entity"
)

// Thresholds shared by the device scores.
const (
	HighRefreshHz    = 120
	UltraRefreshHz   = 144
	LargeBatteryMAh  = 5000
	MediumBatteryMAh = 4500
	KidBatteryMAh    = 4000
)

// flagshipChipsets are chipset substrings that earn the gaming bonus.
var flagshipChipsets = []string{"8 Gen 3", "A17"}

// PremiumBrands earn the prestige brand bonus.
var PremiumBrands = []string{"Apple", "Samsung", "Google"}

// Gaming is the canonical gaming score: base 50, refresh bonus (+25 at 144Hz, +20 at 120Hz),
// battery bonus (+15 at 5000mAh, +10 at 4500mAh) and +10 for a flagship chipset, capped at 100.
func Gaming(d entity.Device) int {
	score := 50

	switch hz := RefreshHz(d.RefreshRate); {
	case hz >= UltraRefreshHz:
		score += 25
	case hz >= HighRefreshHz:
		score += 20
	}

	switch mah := BatteryMAh(d.Battery); {
	case mah >= LargeBatteryMAh:
		score += 15
	case mah >= MediumBatteryMAh:
		score += 10
	}

	for _, chip := range flagshipChipsets {
		if strings.Contains(d.Chipset, chip) {
			score += 10

			break
		}
	}

	return clamp(score)
}

// Battery maps the capacity onto four tiers; an unknown capacity scores a neutral 50.
func Battery(d entity.Device) int {
	mah := BatteryMAh(d.Battery)

	switch {
	case mah == 0:
		return 50
	case mah >= LargeBatteryMAh:
		return 95
	case mah >= MediumBatteryMAh:
		return 85
	case mah >= KidBatteryMAh:
		return 75
	default:
		return 60
	}
}

// Camera maps the largest sensor resolution onto tiers; an unknown resolution scores a neutral 50.
func Camera(d entity.Device) int {
	mp := Megapixels(d.Camera)

	switch {
	case mp == 0:
		return 50
	case mp >= 200:
		return 95
	case mp >= 64:
		return 85
	case mp >= 48:
		return 75
	default:
		return 60
	}
}

// Work favours smooth displays, long battery life and affordable monthly prices.
func Work(d entity.Device) int {
	score := 15
	if RefreshHz(d.RefreshRate) >= HighRefreshHz {
		score = 30
	}

	score += tenths(4, Battery(d))

	switch {
	case d.Price24 < 60:
		score += 30
	case d.Price24 < 80:
		score += 20
	default:
		score += 10
	}

	return clamp(score)
}

// Prestige rewards expensive devices with a named camera sensor from a premium brand.
func Prestige(d entity.Device) int {
	score := 10

	switch {
	case d.Price24 >= 80:
		score = 40
	case d.Price24 >= 60:
		score = 25
	}

	if strings.Contains(d.Camera, "MP") {
		score += 30
	}
	if IsPremiumBrand(d.Brand) {
		score += 30
	}

	return clamp(score)
}

// Value rewards cheap devices that still do well on battery and work.
func Value(d entity.Device) int {
	score := 10

	switch {
	case d.Price24 < 50:
		score = 40
	case d.Price24 < 70:
		score = 25
	}

	score += tenths(3, Battery(d)) + tenths(3, Work(d))

	return clamp(score)
}

// IsPremiumBrand reports whether the brand is one of PremiumBrands, ignoring case.
func IsPremiumBrand(brand string) bool {
	return slices.ContainsFunc(PremiumBrands, func(b string) bool {
		return strings.EqualFold(b, brand)
	})
}

// Durability is the family durability score.
func Durability(d entity.Device) int {
	if BatteryMAh(d.Battery) >= LargeBatteryMAh {
		return 95
	}

	return 75
}

// FamilyBattery is the battery score shown in the family flow.
func FamilyBattery(d entity.Device) int {
	if BatteryMAh(d.Battery) >= LargeBatteryMAh {
		return 90
	}

	return 70
}

// IsKidFriendly holds for cheap devices with at least a 4000mAh battery.
func IsKidFriendly(d entity.Device) bool {
	return d.Price24 < 50 && BatteryMAh(d.Battery) >= KidBatteryMAh
}

// KidSafety is 90 for kid-friendly devices and 60 otherwise.
func KidSafety(d entity.Device) int {
	if IsKidFriendly(d) {
		return 90
	}

	return 60
}

// Card computes every device score at once.
func Card(d entity.Device) entity.DeviceScores {
	return entity.DeviceScores{
		DeviceID:   d.ID,
		Gaming:     Gaming(d),
		Battery:    Battery(d),
		Camera:     Camera(d),
		Work:       Work(d),
		Prestige:   Prestige(d),
		Value:      Value(d),
		Durability: Durability(d),
		KidSafety:  KidSafety(d),
	}
}
