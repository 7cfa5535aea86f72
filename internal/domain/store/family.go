package store

import (
	"maps"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/wizard"
)

// Family is the plan builder session state.
type Family struct {
	Wizard         wizard.State                     `json:"wizard"`
	Household      []entity.HouseholdMember         `json:"household"`
	Usage          entity.HouseholdUsage            `json:"usage"`
	Recommendation *entity.FamilyRecommendation     `json:"recommendation,omitempty"`
	Devices        map[string]string                `json:"devices"` // Device ID by member ID.
	Safety         map[string]entity.SafetySettings `json:"safety"`
	Summary        *entity.FamilySummary            `json:"summary,omitempty"`
}

// UsagePatch is a partial household usage update.
type UsagePatch struct {
	Level     *entity.UsageLevel `json:"level" validate:"omitempty,oneof=light moderate heavy"`
	Streaming *bool              `json:"streaming"`
	Gaming    *bool              `json:"gaming"`
	Hotspot   *bool              `json:"hotspot"`
}

// SafetyPatch is a partial parental control update.
type SafetyPatch struct {
	ScreenTimeHours     *int                  `json:"screen_time_hours" validate:"omitempty,min=0,max=12"`
	Bedtime             *entity.BedtimeWindow `json:"bedtime"`
	DataCapGB           *int                  `json:"data_cap_gb" validate:"omitempty,min=0"`
	LocationSharing     *bool                 `json:"location_sharing"`
	ContentFiltering    *bool                 `json:"content_filtering"`
	PurchaseRestriction *bool                 `json:"purchase_restriction"`
	SocialMonitoring    *bool                 `json:"social_monitoring"`
	WeeklyReports       *bool                 `json:"weekly_reports"`
	AllowedContacts     *[]string             `json:"allowed_contacts"`
	EmergencyContacts   *[]string             `json:"emergency_contacts"`
	BlockedApps         *[]string             `json:"blocked_apps"`
	BlockedWebsites     *[]string             `json:"blocked_websites"`
}

// NewFamily returns the initial family state.
func NewFamily() *Family {
	return &Family{
		Wizard:    wizard.FamilyFlow.Start(),
		Household: []entity.HouseholdMember{},
		Usage:     entity.HouseholdUsage{Level: entity.UsageModerate},
		Devices:   map[string]string{},
		Safety:    map[string]entity.SafetySettings{},
	}
}

// SetHousehold replaces the member list. Device picks and safety settings of members that
// are no longer in the household are dropped, as is the plan recommendation.
func (s *Family) SetHousehold(members []entity.HouseholdMember) {
	s.Household = slices.Clone(members)
	s.dropPlan()

	keep := make(map[string]struct{}, len(members))
	for _, m := range members {
		keep[m.ID] = struct{}{}
	}
	maps.DeleteFunc(s.Devices, func(id string, _ string) bool {
		_, ok := keep[id]

		return !ok
	})
	maps.DeleteFunc(s.Safety, func(id string, _ entity.SafetySettings) bool {
		_, ok := keep[id]

		return !ok
	})
}

// Member looks up a household member by ID.
func (s *Family) Member(id string) (entity.HouseholdMember, bool) {
	i := slices.IndexFunc(s.Household, func(m entity.HouseholdMember) bool { return m.ID == id })
	if i < 0 {
		return entity.HouseholdMember{}, false
	}

	return s.Household[i], true
}

// SetUsage merges the patch into the usage answers and drops the plan recommendation.
func (s *Family) SetUsage(p UsagePatch) {
	setIf(&s.Usage.Level, p.Level)
	setIf(&s.Usage.Streaming, p.Streaming)
	setIf(&s.Usage.Gaming, p.Gaming)
	setIf(&s.Usage.Hotspot, p.Hotspot)
	s.dropPlan()
}

func (s *Family) dropPlan() {
	s.Recommendation = nil
	s.Summary = nil
}

// SetRecommendation stores the plan recommendation.
func (s *Family) SetRecommendation(rec entity.FamilyRecommendation) {
	s.Recommendation = &rec
}

// SelectDevice assigns a device to a member.
func (s *Family) SelectDevice(memberID, deviceID string) {
	s.Devices[memberID] = deviceID
}

// SafetyFor returns the member's settings, falling back to the role defaults.
func (s *Family) SafetyFor(member entity.HouseholdMember) entity.SafetySettings {
	if settings, ok := s.Safety[member.ID]; ok {
		return settings
	}

	return entity.DefaultSafetySettings(member.ID, member.Role)
}

// SetSafety merges the patch into the member's settings, starting from the role defaults
// the first time.
func (s *Family) SetSafety(member entity.HouseholdMember, p SafetyPatch) entity.SafetySettings {
	settings := s.SafetyFor(member)

	setIf(&settings.ScreenTimeHours, p.ScreenTimeHours)
	setIf(&settings.Bedtime, p.Bedtime)
	setIf(&settings.DataCapGB, p.DataCapGB)
	setIf(&settings.LocationSharing, p.LocationSharing)
	setIf(&settings.ContentFiltering, p.ContentFiltering)
	setIf(&settings.PurchaseRestriction, p.PurchaseRestriction)
	setIf(&settings.SocialMonitoring, p.SocialMonitoring)
	setIf(&settings.WeeklyReports, p.WeeklyReports)
	setIf(&settings.AllowedContacts, p.AllowedContacts)
	setIf(&settings.EmergencyContacts, p.EmergencyContacts)
	setIf(&settings.BlockedApps, p.BlockedApps)
	setIf(&settings.BlockedWebsites, p.BlockedWebsites)

	s.Safety[member.ID] = settings

	return settings
}

// SetSummary stores the review step result.
func (s *Family) SetSummary(summary entity.FamilySummary) {
	s.Summary = &summary
}

// Reset restores the initial state.
func (s *Family) Reset() {
	*s = *NewFamily()
}

// Clone returns a deep copy.
func (s *Family) Clone() *Family {
	c := *s
	c.Wizard = cloneState(s.Wizard)
	c.Household = slices.Clone(s.Household)
	c.Devices = maps.Clone(s.Devices)
	c.Safety = make(map[string]entity.SafetySettings, len(s.Safety))
	for id, settings := range s.Safety {
		settings.AllowedContacts = slices.Clone(settings.AllowedContacts)
		settings.EmergencyContacts = slices.Clone(settings.EmergencyContacts)
		settings.BlockedApps = slices.Clone(settings.BlockedApps)
		settings.BlockedWebsites = slices.Clone(settings.BlockedWebsites)
		c.Safety[id] = settings
	}
	if s.Recommendation != nil {
		rec := *s.Recommendation
		rec.IndividualPlans = slices.Clone(rec.IndividualPlans)
		c.Recommendation = &rec
	}
	if s.Summary != nil {
		summary := *s.Summary
		summary.Members = slices.Clone(summary.Members)
		summary.Devices = maps.Clone(summary.Devices)
		summary.Safety = slices.Clone(summary.Safety)
		c.Summary = &summary
	}

	return &c
}
