// Package memory contains the in-process implementation of the persistence layer.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionEntry pairs a stored session with the lock that serializes its updates.
type sessionEntry struct {
	mu      sync.Mutex
	session *store.Session
	deleted bool
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
	now      func() time.Time
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*sessionEntry),
		now:      now,
	}
}

// CreateSession stores a copy of the session.
func (r *sessionRepository) CreateSession(_ context.Context, session *store.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return errors.Wrapf(repository.ErrDuplicateSession, "session %s", session.ID)
	}
	r.sessions[session.ID] = &sessionEntry{session: session.Clone()}

	return nil
}

// FindSessionByID returns a snapshot of a live session.
func (r *sessionRepository) FindSessionByID(_ context.Context, id uuid.UUID) (*store.Session, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := r.checkLive(entry, id); err != nil {
		return nil, err
	}

	return entry.session.Clone(), nil
}

// UpdateSession runs fn on a working copy under the session lock.
func (r *sessionRepository) UpdateSession(ctx context.Context, id uuid.UUID, fn func(session *store.Session) error) (*store.Session, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := r.checkLive(entry, id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	working := entry.session.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	entry.session = working

	return working.Clone(), nil
}

// DeleteSession removes a session.
func (r *sessionRepository) DeleteSession(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return errors.Wrapf(repository.ErrSessionNotFound, "session %s", id)
	}

	entry.mu.Lock()
	entry.deleted = true
	entry.mu.Unlock()

	return nil
}

// DeleteExpiredSessions removes every session that expired at or before now.
func (r *sessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.sessions {
		// Sessions busy in an update are picked up by the next sweep.
		if !entry.mu.TryLock() {
			continue
		}
		if entry.session.Expired(now) {
			entry.deleted = true
			delete(r.sessions, id)
			removed++
		}
		entry.mu.Unlock()
	}

	return removed, nil
}

func (r *sessionRepository) entry(id uuid.UUID) (*sessionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(repository.ErrSessionNotFound, "session %s", id)
	}

	return entry, nil
}

// checkLive must be called with the entry lock held.
func (r *sessionRepository) checkLive(entry *sessionEntry, id uuid.UUID) error {
	if entry.deleted || entry.session.Expired(r.now()) {
		return errors.Wrapf(repository.ErrSessionNotFound, "session %s", id)
	}

	return nil
}
