// Package entity contains the core business objects of the project.
package entity

// BedtimeWindow is the nightly period during which a line is restricted.
type BedtimeWindow struct {
	Start   string `json:"start"` // "HH:MM"
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

// SafetySettings is the parental control configuration of one household member.
type SafetySettings struct {
	MemberID            string        `json:"member_id"`
	ScreenTimeHours     int           `json:"screen_time_hours"`
	Bedtime             BedtimeWindow `json:"bedtime"`
	DataCapGB           int           `json:"data_cap_gb"` // 0 means no cap.
	LocationSharing     bool          `json:"location_sharing"`
	ContentFiltering    bool          `json:"content_filtering"`
	PurchaseRestriction bool          `json:"purchase_restriction"`
	SocialMonitoring    bool          `json:"social_monitoring"`
	WeeklyReports       bool          `json:"weekly_reports"`
	AllowedContacts     []string      `json:"allowed_contacts"`
	EmergencyContacts   []string      `json:"emergency_contacts"`
	BlockedApps         []string      `json:"blocked_apps"`
	BlockedWebsites     []string      `json:"blocked_websites"`
}

// MaxScreenTimeHours is the upper bound of the daily screen time limit.
const MaxScreenTimeHours = 12

// DefaultSafetySettings returns the role-based defaults applied when a member's settings are first created.
func DefaultSafetySettings(memberID string, role MemberRole) SafetySettings {
	switch role {
	case RoleKid:
		return SafetySettings{
			MemberID:            memberID,
			ScreenTimeHours:     2,
			Bedtime:             BedtimeWindow{Start: "20:00", End: "07:00", Enabled: true},
			DataCapGB:           2,
			LocationSharing:     true,
			ContentFiltering:    true,
			PurchaseRestriction: true,
			SocialMonitoring:    true,
			WeeklyReports:       true,
			AllowedContacts:     []string{},
			EmergencyContacts:   []string{},
			BlockedApps:         []string{"social", "dating", "gambling"},
			BlockedWebsites:     []string{"adult", "gambling", "violence"},
		}
	case RoleTeen:
		return SafetySettings{
			MemberID:            memberID,
			ScreenTimeHours:     4,
			Bedtime:             BedtimeWindow{Start: "22:00", End: "06:30", Enabled: true},
			DataCapGB:           10,
			LocationSharing:     true,
			ContentFiltering:    true,
			PurchaseRestriction: true,
			WeeklyReports:       true,
			AllowedContacts:     []string{},
			EmergencyContacts:   []string{},
			BlockedApps:         []string{"dating", "gambling"},
			BlockedWebsites:     []string{"adult", "gambling"},
		}
	default:
		return SafetySettings{
			MemberID:          memberID,
			ScreenTimeHours:   MaxScreenTimeHours,
			Bedtime:           BedtimeWindow{Start: "23:00", End: "06:00"},
			AllowedContacts:   []string{},
			EmergencyContacts: []string{},
			BlockedApps:       []string{},
			BlockedWebsites:   []string{},
		}
	}
}
