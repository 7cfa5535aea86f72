package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentService_ConfirmOrder(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	svc := NewFulfillmentService(FulfillmentServiceParams{
		TxManager: memory.NewTransactionManager(memory.NewStore()),
		Notifier:  notifier,
		Logger:    testLogger(),
	})
	ctx := context.Background()
	event := &service.OrderPlacedEvent{
		OrderID:      uuid.NewString(),
		Lines:        2,
		MonthlyTotal: 1234.5,
		ESIM:         true,
		NotifyToken:  "device-token",
	}

	notifier.EXPECT().
		SendSingleNotification(ctx, "device-token", "Order confirmed",
			mock.MatchedBy(func(body string) bool {
				return strings.Contains(body, "2 line(s)") &&
					strings.Contains(body, "$1,234.50") &&
					strings.Contains(body, "eSIM")
			}),
			map[string]string{"type": "order.placed", "order_id": event.OrderID}).
		Return(nil)

	require.NoError(t, svc.ConfirmOrder(ctx, event))
}

func TestFulfillmentService_ConfirmOrder_Skips(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		svc := NewFulfillmentService(FulfillmentServiceParams{
			Notifier: mockSvc.NewMockNotificationService(t),
			Logger:   testLogger(),
		})
		require.NoError(t, svc.ConfirmOrder(ctx, &service.OrderPlacedEvent{OrderID: "o-1"}))
	})

	t.Run("notifications disabled", func(t *testing.T) {
		svc := NewFulfillmentService(FulfillmentServiceParams{Logger: testLogger()})
		require.NoError(t, svc.ConfirmOrder(ctx, &service.OrderPlacedEvent{OrderID: "o-1", NotifyToken: "t"}))
	})
}

func TestFulfillmentService_ConfirmOrder_SendFailure(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	svc := NewFulfillmentService(FulfillmentServiceParams{Notifier: notifier, Logger: testLogger()})

	notifier.EXPECT().
		SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("unregistered token"))

	err := svc.ConfirmOrder(context.Background(), &service.OrderPlacedEvent{OrderID: "o-1", NotifyToken: "t"})
	assert.ErrorContains(t, err, "unregistered token")
}

func TestFulfillmentService_AdvancePorting(t *testing.T) {
	db := memory.NewStore()
	portings := memory.NewPortingRepository(db)
	svc := NewFulfillmentService(FulfillmentServiceParams{
		TxManager: memory.NewTransactionManager(db),
		Logger:    testLogger(),
	})
	ctx := context.Background()

	porting := &entity.PortingStatus{
		ID:          uuid.NewString(),
		PhoneNumber: "+15551234567",
		Carrier:     "OldTel",
		Steps:       entity.NewPortingSteps(time.Now()),
	}
	require.NoError(t, portings.CreatePorting(ctx, porting))

	event := &service.PortingUpdateEvent{PortingID: porting.ID, Carrier: "OldTel"}
	wantSteps := []string{"transfer_scheduled", "number_active", "number_active"}
	for i, want := range wantSteps {
		got, err := svc.AdvancePorting(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, want, got.CurrentStep(), "update %d", i+1)
	}

	stored, err := portings.FindPortingByID(ctx, porting.ID)
	require.NoError(t, err)
	assert.True(t, stored.Done())

	// Further updates leave the completed transfer untouched.
	got, err := svc.AdvancePorting(ctx, event)
	require.NoError(t, err)
	assert.True(t, got.Done())
}

func TestFulfillmentService_AdvancePorting_NotFound(t *testing.T) {
	svc := NewFulfillmentService(FulfillmentServiceParams{
		TxManager: memory.NewTransactionManager(memory.NewStore()),
		Logger:    testLogger(),
	})

	_, err := svc.AdvancePorting(context.Background(), &service.PortingUpdateEvent{PortingID: "missing"})
	assert.True(t, errors.Is(err, domainerrors.ErrPortingNotFound))
}

func TestFulfillmentService_AdvancePorting_UpdateFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	portings := mockRepo.NewMockPortingRepository(t)
	svc := NewFulfillmentService(FulfillmentServiceParams{TxManager: txManager, Logger: testLogger()})
	ctx := context.Background()

	porting := &entity.PortingStatus{ID: "p-1", Steps: entity.NewPortingSteps(time.Now())}

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewPortingRepository().Return(portings)
	portings.EXPECT().FindPortingByID(ctx, "p-1").Return(porting, nil)
	portings.EXPECT().UpdatePorting(ctx, porting).Return(errors.New("serialization failure"))

	_, err := svc.AdvancePorting(ctx, &service.PortingUpdateEvent{PortingID: "p-1"})
	assert.True(t, errors.Is(err, domainerrors.ErrPortingFailed))
	assert.ErrorContains(t, err, "serialization failure")
}
