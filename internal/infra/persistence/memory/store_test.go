package memory

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPorting(phone string, now time.Time) *entity.PortingStatus {
	return &entity.PortingStatus{
		ID:          uuid.NewString(),
		SessionID:   uuid.NewString(),
		PhoneNumber: phone,
		Carrier:     "OldTel",
		Steps:       entity.NewPortingSteps(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(NewStore())

	sessionID := uuid.New()
	first := &entity.Order{ID: uuid.New(), SessionID: sessionID, CreatedAt: time.Unix(100, 0),
		Lines: []entity.OrderLine{{PlanID: "essential"}}}
	second := &entity.Order{ID: uuid.New(), SessionID: sessionID, CreatedAt: time.Unix(200, 0)}
	other := &entity.Order{ID: uuid.New(), SessionID: uuid.New(), CreatedAt: time.Unix(50, 0)}

	for _, o := range []*entity.Order{second, first, other} {
		require.NoError(t, orders.CreateOrder(ctx, o))
	}
	assert.True(t, errors.Is(orders.CreateOrder(ctx, first), repository.ErrDuplicateOrder))

	found, err := orders.FindOrderByID(ctx, first.ID)
	require.NoError(t, err)
	found.Lines[0].PlanID = "changed"

	again, err := orders.FindOrderByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "essential", again.Lines[0].PlanID)

	bySession, err := orders.FindOrdersBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, bySession, 2)
	assert.Equal(t, first.ID, bySession[0].ID)
	assert.Equal(t, second.ID, bySession[1].ID)

	_, err = orders.FindOrderByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestPortingRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	portings := NewPortingRepository(NewStore())

	porting := newTestPorting("+15551234567", now)
	require.NoError(t, portings.CreatePorting(ctx, porting))

	dup := newTestPorting("+15551234567", now)
	assert.True(t, errors.Is(portings.CreatePorting(ctx, dup), repository.ErrDuplicatePorting))

	porting.Advance(now.Add(time.Hour))
	require.NoError(t, portings.UpdatePorting(ctx, porting))

	found, err := portings.FindPortingByID(ctx, porting.ID)
	require.NoError(t, err)
	assert.Equal(t, "transfer_scheduled", found.CurrentStep())

	err = portings.UpdatePorting(ctx, newTestPorting("+15550000000", now))
	assert.True(t, errors.Is(err, repository.ErrPortingNotFound))
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tm := NewTransactionManager(s)
	orders := NewOrderRepository(s)

	committed := &entity.Order{ID: uuid.New(), SessionID: uuid.New()}
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.NewOrderRepository().CreateOrder(ctx, committed)
	})
	require.NoError(t, err)

	_, err = orders.FindOrderByID(ctx, committed.ID)
	require.NoError(t, err)

	rolledBack := &entity.Order{ID: uuid.New(), SessionID: uuid.New()}
	boom := errors.New("boom")
	err = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewOrderRepository().CreateOrder(ctx, rolledBack); err != nil {
			return err
		}
		_, err := repos.NewPortingRepository().FindPortingByID(ctx, "missing")
		if err != nil {
			return boom
		}

		return nil
	})
	assert.Equal(t, boom, err)

	_, err = orders.FindOrderByID(ctx, rolledBack.ID)
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(NewStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
