package store

import (
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/wizard"
)

// YoungPro is the scorer quiz session state.
type YoungPro struct {
	Wizard  wizard.State          `json:"wizard"`
	Answers entity.ScorerAnswers  `json:"answers"`
	Results *entity.ScorerResults `json:"results,omitempty"`
	Picks   []entity.RankedDevice `json:"picks"`
	Roaming []entity.RoamingPack  `json:"roaming"`
	Cart    Cart                  `json:"cart"`
}

// AnswersPatch is a partial quiz update. Ratings use a 1-5 scale.
type AnswersPatch struct {
	Price           *int                    `json:"price" validate:"omitempty,min=1,max=5"`
	Brand           *int                    `json:"brand" validate:"omitempty,min=1,max=5"`
	Camera          *int                    `json:"camera" validate:"omitempty,min=1,max=5"`
	Battery         *int                    `json:"battery" validate:"omitempty,min=1,max=5"`
	Productivity    *int                    `json:"productivity" validate:"omitempty,min=1,max=5"`
	Budget          *float64                `json:"budget" validate:"omitempty,min=0"`
	TravelFrequency *entity.TravelFrequency `json:"travel_frequency" validate:"omitempty,oneof=never occasional frequent"`
	HybridWork      *bool                   `json:"hybrid_work"`
}

// NewYoungPro returns the initial Young Professional state.
func NewYoungPro() *YoungPro {
	return &YoungPro{
		Wizard:  wizard.YoungProFlow.Start(),
		Answers: entity.ScorerAnswers{TravelFrequency: entity.TravelNever},
		Picks:   []entity.RankedDevice{},
		Roaming: []entity.RoamingPack{},
		Cart:    newCart(),
	}
}

// SetAnswers merges the patch into the quiz answers. Stored results are dropped because they
// no longer match the answers.
func (s *YoungPro) SetAnswers(p AnswersPatch) {
	setIf(&s.Answers.Price, p.Price)
	setIf(&s.Answers.Brand, p.Brand)
	setIf(&s.Answers.Camera, p.Camera)
	setIf(&s.Answers.Battery, p.Battery)
	setIf(&s.Answers.Productivity, p.Productivity)
	setIf(&s.Answers.Budget, p.Budget)
	setIf(&s.Answers.TravelFrequency, p.TravelFrequency)
	setIf(&s.Answers.HybridWork, p.HybridWork)

	s.Results = nil
}

// SetResults stores the quiz outcome with the matching picks and roaming packs.
func (s *YoungPro) SetResults(results entity.ScorerResults, picks []entity.RankedDevice, roaming []entity.RoamingPack) {
	s.Results = &results
	s.Picks = slices.Clone(picks)
	s.Roaming = slices.Clone(roaming)
}

// SetCart merges the patch into the cart.
func (s *YoungPro) SetCart(p CartPatch) {
	s.Cart.apply(p)
}

// Reset restores the initial state.
func (s *YoungPro) Reset() {
	*s = *NewYoungPro()
}

// Clone returns a deep copy.
func (s *YoungPro) Clone() *YoungPro {
	c := *s
	c.Wizard = cloneState(s.Wizard)
	c.Picks = slices.Clone(s.Picks)
	c.Roaming = slices.Clone(s.Roaming)
	if s.Results != nil {
		results := *s.Results
		c.Results = &results
	}

	return &c
}
