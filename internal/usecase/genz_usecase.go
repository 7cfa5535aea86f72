package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/store"

	"github.com/google/uuid"
)

// GenZUsecase defines the AI phone finder operations of a Gen Z session.
type GenZUsecase interface {
	// SetPreferences merges a patch into the finder query.
	SetPreferences(ctx context.Context, sessionID uuid.UUID, patch store.PreferencesPatch) (*recommend.FinderQuery, error)

	// FindMatches runs the finder with the stored query and keeps the result in the session.
	FindMatches(ctx context.Context, sessionID uuid.UUID) ([]entity.RankedDevice, error)

	// Ask answers a chat message and appends the exchange to the session.
	Ask(ctx context.Context, sessionID uuid.UUID, message string) (*recommend.AssistantReply, error)
}
