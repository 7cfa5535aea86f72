// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDuplicateSession is returned when trying to create a session that already exists.
	ErrDuplicateSession = errors.New("session already exists")
)

// SessionRepository owns the per-shopper session stores and serializes access to each of them.
type SessionRepository interface {
	// CreateSession persists a freshly opened session.
	CreateSession(ctx context.Context, session *store.Session) error

	// FindSessionByID returns a snapshot of a live session. Mutating it has no effect on the stored value.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*store.Session, error)

	// UpdateSession runs fn on a working copy under the session's lock and commits the copy
	// only when fn returns nil. The committed session is returned.
	UpdateSession(ctx context.Context, id uuid.UUID, fn func(session *store.Session) error) (*store.Session, error)

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredSessions removes every session that expired at or before now and reports how many.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
