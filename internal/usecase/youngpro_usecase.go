package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"

	"github.com/google/uuid"
)

// YoungProResults is the outcome of the scorer quiz.
type YoungProResults struct {
	Results entity.ScorerResults  `json:"results"`
	Picks   []entity.RankedDevice `json:"picks"`
	Roaming []entity.RoamingPack  `json:"roaming"`
}

// YoungProUsecase defines the Young Professional quiz operations.
type YoungProUsecase interface {
	// SetAnswers merges a patch into the quiz answers.
	SetAnswers(ctx context.Context, sessionID uuid.UUID, patch store.AnswersPatch) (*entity.ScorerAnswers, error)

	// Results scores the answers, picks devices under budget and suggests roaming packs.
	Results(ctx context.Context, sessionID uuid.UUID) (*YoungProResults, error)
}
