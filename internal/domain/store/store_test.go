package store

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		persona entity.Persona
		flow    string
		check   func(t *testing.T, s *Session)
	}{
		{entity.PersonaGenZ, "genz_finder", func(t *testing.T, s *Session) { assert.NotNil(t, s.GenZ) }},
		{entity.PersonaFamily, "family_plan_builder", func(t *testing.T, s *Session) { assert.NotNil(t, s.Family) }},
		{entity.PersonaYoungPro, "young_pro_quiz", func(t *testing.T, s *Session) { assert.NotNil(t, s.YoungPro) }},
		{entity.PersonaSwitcher, "value_switcher", func(t *testing.T, s *Session) { assert.NotNil(t, s.Switcher) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.persona), func(t *testing.T) {
			s, err := NewSession(tt.persona, now, time.Hour)
			require.NoError(t, err)

			tt.check(t, s)
			assert.Equal(t, tt.flow, s.Flow().Name())
			assert.Equal(t, tt.flow, s.Wizard().Flow)
			assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)
			assert.False(t, s.Expired(now))
			assert.True(t, s.Expired(now.Add(time.Hour)))
		})
	}

	_, err := NewSession("boomer", now, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidPersona)
}

func TestSession_SetWizardAndReset(t *testing.T) {
	s, err := NewSession(entity.PersonaYoungPro, time.Now(), time.Hour)
	require.NoError(t, err)

	next, _, err := s.Flow().Fire(s.Wizard(), wizard.EventNext, nil)
	require.NoError(t, err)
	s.SetWizard(next)
	s.YoungPro.SetAnswers(AnswersPatch{Price: ptr(5)})

	assert.Equal(t, wizard.StepBudget, s.Wizard().Current)

	s.Reset()
	assert.Equal(t, wizard.StepPriorities, s.Wizard().Current)
	assert.Equal(t, NewYoungPro(), s.YoungPro)
}

func TestSession_CloneIsDeep(t *testing.T) {
	s, err := NewSession(entity.PersonaFamily, time.Now(), time.Hour)
	require.NoError(t, err)
	member := entity.HouseholdMember{ID: "m1", Name: "Leo", Age: 9, Role: entity.RoleKid}
	s.Family.SetHousehold([]entity.HouseholdMember{member})
	s.Family.SetSafety(member, SafetyPatch{ScreenTimeHours: ptr(3)})

	c := s.Clone()
	c.Family.Household[0].Name = "changed"
	c.Family.SelectDevice("m1", "nokia-g42")
	settings := c.Family.Safety["m1"]
	settings.BlockedApps[0] = "changed"

	assert.Equal(t, "Leo", s.Family.Household[0].Name)
	assert.Empty(t, s.Family.Devices)
	assert.Equal(t, "social", s.Family.Safety["m1"].BlockedApps[0])
}

func TestGenZ_SetPreferencesMerges(t *testing.T) {
	s := NewGenZ()

	s.SetPreferences(PreferencesPatch{Style: ptr("creator"), Budget: ptr(40.0)})
	s.SetPreferences(PreferencesPatch{GamingMode: ptr(true)})

	assert.Equal(t, recommend.FinderQuery{
		Style:      "creator",
		Budget:     40,
		Priority:   recommend.DefaultPriority,
		GamingMode: true,
	}, s.Preferences)

	s.SetCart(CartPatch{DeviceID: ptr("pixel-8a")})
	s.SetCart(CartPatch{PlanID: ptr("plus"), TermMonths: ptr(Term36)})
	assert.Equal(t, Cart{DeviceID: "pixel-8a", PlanID: "plus", TermMonths: Term36}, s.Cart)

	s.AddAssistantTurn(AssistantTurn{Question: "hi"})
	s.Reset()
	assert.Equal(t, NewGenZ(), s)
	assert.True(t, s.Cart.IsEmpty())
}

func TestFamily_Setters(t *testing.T) {
	s := NewFamily()
	ana := entity.HouseholdMember{ID: "m1", Name: "Ana", Age: 40, Role: entity.RoleParent}
	leo := entity.HouseholdMember{ID: "m2", Name: "Leo", Age: 9, Role: entity.RoleKid}

	s.SetHousehold([]entity.HouseholdMember{ana, leo})
	s.SetUsage(UsagePatch{Streaming: ptr(true)})
	s.SetUsage(UsagePatch{Level: ptr(entity.UsageHeavy)})
	s.SelectDevice("m2", "nokia-g42")

	assert.Equal(t, entity.HouseholdUsage{Level: entity.UsageHeavy, Streaming: true}, s.Usage)

	settings := s.SetSafety(leo, SafetyPatch{ScreenTimeHours: ptr(1), BlockedApps: ptr([]string{"games"})})
	assert.Equal(t, 1, settings.ScreenTimeHours)
	assert.Equal(t, []string{"games"}, settings.BlockedApps)
	assert.Equal(t, 2, settings.DataCapGB, "untouched fields keep the role default")

	settings = s.SetSafety(leo, SafetyPatch{DataCapGB: ptr(5)})
	assert.Equal(t, 1, settings.ScreenTimeHours)
	assert.Equal(t, 5, settings.DataCapGB)

	assert.Equal(t, entity.DefaultSafetySettings("m1", entity.RoleParent), s.SafetyFor(ana))

	got, ok := s.Member("m2")
	require.True(t, ok)
	assert.Equal(t, leo, got)
	_, ok = s.Member("m9")
	assert.False(t, ok)

	s.SetHousehold([]entity.HouseholdMember{ana})
	assert.Empty(t, s.Devices)
	assert.Empty(t, s.Safety)

	s.SetRecommendation(entity.FamilyRecommendation{TotalSavings: 10})
	s.SetUsage(UsagePatch{Gaming: ptr(true)})
	assert.Nil(t, s.Recommendation, "usage changes invalidate the recommendation")

	s.SetRecommendation(entity.FamilyRecommendation{TotalSavings: 10})
	s.Reset()
	assert.Equal(t, NewFamily(), s)
}

func TestYoungPro_SetAnswersDropsResults(t *testing.T) {
	s := NewYoungPro()
	s.SetResults(entity.ScorerResults{Recommendation: entity.BucketValue}, nil, nil)
	require.NotNil(t, s.Results)

	s.SetAnswers(AnswersPatch{Brand: ptr(4), TravelFrequency: ptr(entity.TravelFrequent)})

	assert.Nil(t, s.Results)
	assert.Equal(t, 4, s.Answers.Brand)
	assert.Equal(t, entity.TravelFrequent, s.Answers.TravelFrequency)
	assert.Equal(t, 0, s.Answers.Price)
}

func TestSwitcher_Setters(t *testing.T) {
	s := NewSwitcher()

	s.SetCarrier(CarrierPatch{Name: ptr("OldTel"), MonthlyBill: ptr(85.0)})
	s.SetUsage(SwitcherUsagePatch{DataGB: ptr(20)})
	assert.Equal(t, CurrentCarrier{Name: "OldTel", MonthlyBill: 85, Lines: 1}, s.Carrier)
	assert.Equal(t, SwitcherUsage{Level: entity.UsageModerate, DataGB: 20}, s.Usage)

	s.SetCart(CartPatch{DeviceID: ptr("pixel-8a")})
	s.SetBYO(entity.BYOInfo{Model: "iPhone 15", Compatible: true, SimType: entity.SimESIM})
	assert.Empty(t, s.Cart.DeviceID)
	assert.True(t, s.BringsOwnDevice())

	s.ToggleDeal("trade-in")
	s.ToggleDeal("switch-credit")
	s.ToggleDeal("trade-in")
	assert.Equal(t, []string{"switch-credit"}, s.SelectedDeals)

	s.SetPorting("port-1")
	c := s.Clone()
	c.BYO.Compatible = false
	assert.True(t, s.BYO.Compatible)

	s.Reset()
	assert.Equal(t, NewSwitcher(), s)
	assert.False(t, s.BringsOwnDevice())
}
