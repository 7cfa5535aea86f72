// Package entity contains the core business objects of the project.
package entity

// MemberRole is the role of a person in a family group.
type MemberRole string

const (
	RoleParent MemberRole = "parent"
	RoleTeen   MemberRole = "teen"
	RoleKid    MemberRole = "kid"
)

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	switch r {
	case RoleParent, RoleTeen, RoleKid:
		return true
	default:
		return false
	}
}

// HouseholdMember is a person in the family group being built.
type HouseholdMember struct {
	ID   string     `json:"id"`
	Name string     `json:"name" validate:"required,notblank"`
	Age  int        `json:"age" validate:"min=0,max=120"`
	Role MemberRole `json:"role" validate:"required,oneof=parent teen kid"`
}

// UsageLevel describes how much data a household or shopper consumes.
type UsageLevel string

const (
	UsageLight    UsageLevel = "light"
	UsageModerate UsageLevel = "moderate"
	UsageHeavy    UsageLevel = "heavy"
)

// HouseholdUsage is the answer set of the family usage step.
type HouseholdUsage struct {
	Level     UsageLevel `json:"level"`
	Streaming bool       `json:"streaming"`
	Gaming    bool       `json:"gaming"`
	Hotspot   bool       `json:"hotspot"`
}

// GamingOrStreaming reports whether the household streams or games heavily enough to need more data.
func (u HouseholdUsage) GamingOrStreaming() bool {
	return u.Streaming || u.Gaming
}
