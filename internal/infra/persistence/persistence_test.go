package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_InMemoryWithoutPostgres(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	repos, err := NewRepositories(Params{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), SessionID: uuid.New(), Persona: entity.PersonaGenZ, Status: entity.OrderPlaced}

	err = repos.TxManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewOrderRepository().CreateOrder(ctx, order)
	})
	require.NoError(t, err)

	found, err := repos.Orders.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.SessionID, found.SessionID)

	_, err = repos.Portings.FindPortingByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPortingNotFound)
}
