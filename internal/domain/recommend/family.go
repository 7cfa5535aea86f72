package recommend

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/scoring"
	"storefront/internal/util"
)

// FamilyCategory filters the family device browser.
type FamilyCategory string

const (
	FamilyAll        FamilyCategory = "all"
	FamilyKids       FamilyCategory = "kids"
	FamilyTeens      FamilyCategory = "teens"
	FamilyParents    FamilyCategory = "parents"
	FamilyAffordable FamilyCategory = "affordable"
)

// IsValid checks if the FamilyCategory is a valid value.
func (c FamilyCategory) IsValid() bool {
	switch c {
	case FamilyAll, FamilyKids, FamilyTeens, FamilyParents, FamilyAffordable:
		return true
	default:
		return false
	}
}

// FamilyDevice is a device with the scores shown in the family browser.
type FamilyDevice struct {
	entity.Device
	Durability   int  `json:"durability"`
	BatteryScore int  `json:"battery_score"`
	KidSafety    int  `json:"kid_safety"`
	KidFriendly  bool `json:"kid_friendly"`
}

// FamilyDevices returns the devices of a category in catalog order. Unknown categories
// behave like FamilyAll.
func FamilyDevices(devices []entity.Device, category FamilyCategory) []FamilyDevice {
	out := make([]FamilyDevice, 0, len(devices))
	for _, d := range devices {
		if !inFamilyCategory(d, category) {
			continue
		}
		out = append(out, FamilyDevice{
			Device:       d,
			Durability:   scoring.Durability(d),
			BatteryScore: scoring.FamilyBattery(d),
			KidSafety:    scoring.KidSafety(d),
			KidFriendly:  scoring.IsKidFriendly(d),
		})
	}

	return out
}

func inFamilyCategory(d entity.Device, category FamilyCategory) bool {
	switch category {
	case FamilyKids:
		return scoring.IsKidFriendly(d)
	case FamilyTeens:
		return d.Price24 <= 70 && scoring.RefreshHz(d.RefreshRate) >= 90
	case FamilyParents:
		return d.Price24 >= 60
	case FamilyAffordable:
		return d.Price24 < 40
	default:
		return true
	}
}

// Shared tier positions, smallest first.
const (
	tierEssentials = iota
	tierPlus
	tierMax
	tierUnlimited
)

// RecommendSharedPlan picks a shared tier from usage and bumps it until the tier covers the
// household size. tiers must be ordered by capacity. It reports false when no tier is large
// enough.
func RecommendSharedPlan(tiers []entity.SharedPlanTier, size int, usage entity.HouseholdUsage) (entity.SharedPlanTier, bool) {
	if len(tiers) == 0 {
		return entity.SharedPlanTier{}, false
	}

	heavy := usage.Level == entity.UsageHeavy
	var start int
	switch {
	case heavy && usage.GamingOrStreaming():
		start = tierUnlimited
	case heavy:
		start = tierMax
	case usage.GamingOrStreaming():
		start = tierPlus
	default:
		start = tierEssentials
	}
	start = min(start, len(tiers)-1)

	for _, tier := range tiers[start:] {
		if tier.MaxLines >= size {
			return tier, true
		}
	}

	return entity.SharedPlanTier{}, false
}

// individualPrices is the single-line price by role and usage level.
var individualPrices = map[entity.MemberRole]map[entity.UsageLevel]float64{
	entity.RoleParent: {entity.UsageLight: 35, entity.UsageModerate: 45, entity.UsageHeavy: 55},
	entity.RoleTeen:   {entity.UsageLight: 30, entity.UsageModerate: 35, entity.UsageHeavy: 45},
	entity.RoleKid:    {entity.UsageLight: 15, entity.UsageModerate: 20, entity.UsageHeavy: 25},
}

// IndividualPrice returns what a member would pay on a single-line plan. Unknown usage levels
// are priced as moderate and unknown roles as parents.
func IndividualPrice(role entity.MemberRole, level entity.UsageLevel) float64 {
	row, ok := individualPrices[role]
	if !ok {
		row = individualPrices[entity.RoleParent]
	}
	price, ok := row[level]
	if !ok {
		price = row[entity.UsageModerate]
	}

	return price
}

// IndividualPlans prices every member on a single-line plan.
func IndividualPlans(members []entity.HouseholdMember, usage entity.HouseholdUsage) []entity.IndividualPlan {
	plans := make([]entity.IndividualPlan, 0, len(members))
	for _, m := range members {
		plans = append(plans, entity.IndividualPlan{
			MemberID: m.ID,
			Name:     m.Name,
			Role:     m.Role,
			Price:    IndividualPrice(m.Role, usage.Level),
		})
	}

	return plans
}

// Summarize compares the shared tier against the individual plans.
func Summarize(shared entity.SharedPlanTier, individual []entity.IndividualPlan) entity.FamilyRecommendation {
	var total float64
	for _, p := range individual {
		total += p.Price
	}

	return entity.FamilyRecommendation{
		SharedPlan:      shared,
		IndividualPlans: individual,
		IndividualTotal: util.RoundCents(total),
		TotalSavings:    util.RoundCents(total - shared.Price),
	}
}

// BuildFamilySummary assembles the review step. The monthly total is the shared plan plus the
// 24-month price of every selected device.
func BuildFamilySummary(
	members []entity.HouseholdMember,
	rec entity.FamilyRecommendation,
	devices map[string]entity.Device,
	safety map[string]entity.SafetySettings,
) entity.FamilySummary {
	total := rec.SharedPlan.Price
	selected := make(map[string]entity.Device, len(devices))
	settings := make([]entity.SafetySettings, 0, len(members))

	for _, m := range members {
		if d, ok := devices[m.ID]; ok {
			selected[m.ID] = d
			total += d.Price24
		}
		if s, ok := safety[m.ID]; ok {
			settings = append(settings, s)
		} else if m.Role != entity.RoleParent {
			settings = append(settings, entity.DefaultSafetySettings(m.ID, m.Role))
		}
	}

	return entity.FamilySummary{
		Members:        members,
		Recommendation: rec,
		Devices:        selected,
		Safety:         settings,
		MonthlyTotal:   util.RoundCents(total),
	}
}
