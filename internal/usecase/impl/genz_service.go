package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type genZService struct {
	sessions repository.SessionRepository
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

// NewGenZService creates a new Gen Z finder service instance
func NewGenZService(
	sessions repository.SessionRepository,
	c *catalog.Catalog,
	logger *slog.Logger,
) usecase.GenZUsecase {
	return &genZService{
		sessions: sessions,
		catalog:  c,
		logger:   logger,
	}
}

// SetPreferences merges a patch into the finder query
func (s *genZService) SetPreferences(ctx context.Context, sessionID uuid.UUID, patch store.PreferencesPatch) (*recommend.FinderQuery, error) {
	if patch.Style != nil {
		style := strings.ToLower(strings.TrimSpace(*patch.Style))
		patch.Style = &style
	}

	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaGenZ, func(sess *store.Session) error {
		sess.GenZ.SetPreferences(patch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	query := session.GenZ.Preferences

	return &query, nil
}

// FindMatches runs the finder with the stored query and keeps the result in the session
func (s *genZService) FindMatches(ctx context.Context, sessionID uuid.UUID) ([]entity.RankedDevice, error) {
	var matches []entity.RankedDevice
	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaGenZ, func(sess *store.Session) error {
		matches = recommend.Find(s.catalog.Devices(), sess.GenZ.Preferences)
		sess.GenZ.SetMatches(matches)

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.logger).Debug("Finder matches computed",
		slog.String("session_id", sessionID.String()),
		slog.Int("count", len(matches)),
	)

	return matches, nil
}

// Ask answers a chat message and appends the exchange to the session
func (s *genZService) Ask(ctx context.Context, sessionID uuid.UUID, message string) (*recommend.AssistantReply, error) {
	reply := recommend.Ask(s.catalog.Devices(), message)

	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaGenZ, func(sess *store.Session) error {
		sess.GenZ.AddAssistantTurn(store.AssistantTurn{Question: message, Reply: reply})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &reply, nil
}
