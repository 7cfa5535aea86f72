// Package entity contains the core business objects of the project.
package entity

// IndividualPlan is the hypothetical single-line price of one household member.
type IndividualPlan struct {
	MemberID string     `json:"member_id"`
	Name     string     `json:"name"`
	Role     MemberRole `json:"role"`
	Price    float64    `json:"price"`
}

// FamilyRecommendation is the shared plan chosen for a household plus the per-member breakdown.
type FamilyRecommendation struct {
	SharedPlan      SharedPlanTier   `json:"shared_plan"`
	IndividualPlans []IndividualPlan `json:"individual_plans,omitempty"`
	IndividualTotal float64          `json:"individual_total"`
	TotalSavings    float64          `json:"total_savings"`
}

// FamilySummary is the final review of the family plan builder.
type FamilySummary struct {
	Members        []HouseholdMember    `json:"members"`
	Recommendation FamilyRecommendation `json:"recommendation"`
	Devices        map[string]Device    `json:"devices"` // Keyed by member ID.
	Safety         []SafetySettings     `json:"safety"`
	MonthlyTotal   float64              `json:"monthly_total"`
}
