package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/scoring"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type youngProService struct {
	sessions repository.SessionRepository
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

// NewYoungProService creates a new Young Professional quiz service instance
func NewYoungProService(
	sessions repository.SessionRepository,
	c *catalog.Catalog,
	logger *slog.Logger,
) usecase.YoungProUsecase {
	return &youngProService{
		sessions: sessions,
		catalog:  c,
		logger:   logger,
	}
}

// SetAnswers merges a patch into the quiz answers
func (s *youngProService) SetAnswers(ctx context.Context, sessionID uuid.UUID, patch store.AnswersPatch) (*entity.ScorerAnswers, error) {
	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaYoungPro, func(sess *store.Session) error {
		sess.YoungPro.SetAnswers(patch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	answers := session.YoungPro.Answers

	return &answers, nil
}

// Results scores the answers, picks devices under budget and suggests roaming packs
func (s *youngProService) Results(ctx context.Context, sessionID uuid.UUID) (*usecase.YoungProResults, error) {
	var out usecase.YoungProResults
	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaYoungPro, func(sess *store.Session) error {
		answers := sess.YoungPro.Answers

		out.Results = scoring.Quiz(answers)
		out.Picks = recommend.YoungProPicks(s.catalog.Devices(), out.Results, answers.Budget)
		out.Roaming = recommend.SuggestRoaming(s.catalog.RoamingPacks(), answers.TravelFrequency)
		sess.YoungPro.SetResults(out.Results, out.Picks, out.Roaming)

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.logger).Debug("Quiz scored",
		slog.String("session_id", sessionID.String()),
		slog.String("recommendation", string(out.Results.Recommendation)),
	)

	return &out, nil
}
