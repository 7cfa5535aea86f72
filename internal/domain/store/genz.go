package store

import (
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/wizard"
)

// AssistantTurn is one question and answer of the shopping assistant chat.
type AssistantTurn struct {
	Question string                   `json:"question"`
	Reply    recommend.AssistantReply `json:"reply"`
}

// GenZ is the AI finder session state.
type GenZ struct {
	Wizard      wizard.State          `json:"wizard"`
	Preferences recommend.FinderQuery `json:"preferences"`
	Matches     []entity.RankedDevice `json:"matches"`
	Assistant   []AssistantTurn       `json:"assistant"`
	Cart        Cart                  `json:"cart"`
}

// PreferencesPatch is a partial finder query update.
type PreferencesPatch struct {
	Style      *string  `json:"style"`
	Budget     *float64 `json:"budget" validate:"omitempty,min=0"`
	Priority   *int     `json:"priority" validate:"omitempty,min=0,max=100"`
	GamingMode *bool    `json:"gaming_mode"`
}

// NewGenZ returns the initial Gen Z state.
func NewGenZ() *GenZ {
	return &GenZ{
		Wizard:      wizard.GenZFlow.Start(),
		Preferences: recommend.FinderQuery{Priority: recommend.DefaultPriority},
		Matches:     []entity.RankedDevice{},
		Assistant:   []AssistantTurn{},
		Cart:        newCart(),
	}
}

// SetPreferences merges the patch into the finder query.
func (s *GenZ) SetPreferences(p PreferencesPatch) {
	setIf(&s.Preferences.Style, p.Style)
	setIf(&s.Preferences.Budget, p.Budget)
	setIf(&s.Preferences.Priority, p.Priority)
	setIf(&s.Preferences.GamingMode, p.GamingMode)
}

// SetMatches replaces the latest finder results.
func (s *GenZ) SetMatches(matches []entity.RankedDevice) {
	s.Matches = slices.Clone(matches)
}

// AddAssistantTurn appends a chat exchange.
func (s *GenZ) AddAssistantTurn(turn AssistantTurn) {
	s.Assistant = append(s.Assistant, turn)
}

// SetCart merges the patch into the cart.
func (s *GenZ) SetCart(p CartPatch) {
	s.Cart.apply(p)
}

// Reset restores the initial state.
func (s *GenZ) Reset() {
	*s = *NewGenZ()
}

// Clone returns a deep copy.
func (s *GenZ) Clone() *GenZ {
	c := *s
	c.Wizard = cloneState(s.Wizard)
	c.Matches = slices.Clone(s.Matches)
	c.Assistant = slices.Clone(s.Assistant)

	return &c
}

func cloneState(s wizard.State) wizard.State {
	s.Completed = slices.Clone(s.Completed)

	return s
}
