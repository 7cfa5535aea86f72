// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/domain/wizard"

	"github.com/google/uuid"
)

// StartedSession is a new session together with the bearer token that addresses it.
type StartedSession struct {
	Session *store.Session `json:"session"`
	Token   string         `json:"token"`
}

// Navigation is the outcome of a wizard event. When Validation is not OK the wizard did not move.
type Navigation struct {
	Wizard     wizard.State  `json:"wizard"`
	Validation wizard.Result `json:"validation"`
}

// SessionUsecase defines the interface for persona session management.
type SessionUsecase interface {
	// StartSession opens a session for the persona and issues its token.
	StartSession(ctx context.Context, persona entity.Persona) (*StartedSession, error)

	// Authenticate validates a session token and returns its claims.
	Authenticate(ctx context.Context, token string) (*service.SessionClaims, error)

	// GetSession returns a snapshot of the session store.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*store.Session, error)

	// ResetSession restores the persona store to its initial state.
	ResetSession(ctx context.Context, sessionID uuid.UUID) (*store.Session, error)

	// Navigate applies a wizard event, guarded by the validation of the current step.
	Navigate(ctx context.Context, sessionID uuid.UUID, event wizard.Event) (*Navigation, error)

	// UpdateCart merges a cart patch into the Gen Z, Young Professional or Value Switcher store.
	UpdateCart(ctx context.Context, sessionID uuid.UUID, patch store.CartPatch) (*store.Cart, error)

	// CleanupExpiredSessions removes expired sessions and reports how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int, error)
}
