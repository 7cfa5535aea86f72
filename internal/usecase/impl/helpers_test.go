package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	return c
}

// openSession stores a fresh session for the persona and returns its ID.
func openSession(t *testing.T, sessions repository.SessionRepository, persona entity.Persona) uuid.UUID {
	t.Helper()

	session, err := store.NewSession(persona, time.Now(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessions.CreateSession(context.Background(), session))

	return session.ID
}

func newTestSessions() repository.SessionRepository {
	return memory.NewSessionRepository()
}

func ptr[T any](v T) *T {
	return &v
}
