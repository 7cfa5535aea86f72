package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSMDP = "smdp.test.example"

type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	sessions  repository.SessionRepository
	portings  repository.PortingRepository
	qrcodes   *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	sessions := newTestSessions()
	db := memory.NewStore()
	qrcodes := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		Sessions:  sessions,
		Orders:    memory.NewOrderRepository(db),
		TxManager: memory.NewTransactionManager(db),
		Catalog:   testCatalog(t),
		QRCodes:   qrcodes,
		Publisher: publisher,
		Config:    &config.Config{ESIM: &config.ESIMConfig{SMDPAddress: testSMDP}},
		Logger:    testLogger(),
	})

	return checkoutServiceFixtures{
		service:   svc,
		sessions:  sessions,
		portings:  memory.NewPortingRepository(db),
		qrcodes:   qrcodes,
		publisher: publisher,
	}
}

func (fx checkoutServiceFixtures) expectPublished(t *testing.T) *service.Event {
	t.Helper()

	var published service.Event
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*service.Event")).
		Run(func(_ context.Context, event *service.Event) { published = *event }).
		Return(nil).
		Once()

	return &published
}

func TestCheckoutService_Checkout_GenZ(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaGenZ)
	published := fx.expectPublished(t)

	order, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{
			DeviceID:  ptr("iphone-15-pro"),
			PlanID:    ptr("plus"),
			PromoCode: ptr("welcome10"),
		},
		NotifyToken: "device-token",
	})
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, entity.OrderLine{
		DeviceID:      "iphone-15-pro",
		PlanID:        "plus",
		TermMonths:    24,
		DeviceMonthly: 85,
		PlanMonthly:   45,
	}, order.Lines[0])
	assert.Equal(t, "WELCOME10", order.PromoCode)
	assert.Equal(t, 10.0, order.Discount)
	assert.Equal(t, 120.0, order.MonthlyTotal)
	assert.Equal(t, entity.OrderPlaced, order.Status)
	assert.Empty(t, order.ActivationID)

	assert.Equal(t, service.EventOrderPlaced, published.Type)
	require.NotNil(t, published.OrderPlaced)
	assert.Equal(t, order.ID.String(), published.OrderPlaced.OrderID)
	assert.Equal(t, "device-token", published.OrderPlaced.NotifyToken)
	assert.Equal(t, 120.0, published.OrderPlaced.MonthlyTotal)

	got, err := fx.service.GetOrder(ctx, id, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// The cart patch is kept in the session.
	session, err := fx.sessions.FindSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "iphone-15-pro", session.GenZ.Cart.DeviceID)
}

func TestCheckoutService_Checkout_YoungProUpfront(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaYoungPro)
	fx.expectPublished(t)

	order, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{DeviceID: ptr("galaxy-s24-ultra"), PlanID: ptr("max"), TermMonths: ptr(36)},
	})
	require.NoError(t, err)
	assert.Equal(t, 125.0, order.MonthlyTotal)
	assert.Equal(t, 99.0, order.UpfrontTotal)
	assert.Equal(t, 36, order.Lines[0].TermMonths)
}

func TestCheckoutService_Checkout_Family(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaFamily)
	fx.expectPublished(t)

	family := NewFamilyService(fx.sessions, testCatalog(t), testLogger())
	update, err := family.SetHousehold(ctx, id, testHousehold())
	require.NoError(t, err)
	_, err = family.Recommend(ctx, id, false)
	require.NoError(t, err)
	require.NoError(t, family.SelectDevice(ctx, id, update.Members[2].ID, "nokia-g42"))

	order, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{TermMonths: ptr(36), PromoCode: ptr("FAMILY20")},
	})
	require.NoError(t, err)

	require.Len(t, order.Lines, 3)
	assert.Equal(t, 80.0, order.Lines[0].PlanMonthly)
	assert.Zero(t, order.Lines[1].PlanMonthly)
	assert.Empty(t, order.Lines[1].DeviceID)
	assert.Equal(t, "nokia-g42", order.Lines[2].DeviceID)
	assert.Equal(t, 14.0, order.Lines[2].DeviceMonthly)
	for _, line := range order.Lines {
		assert.Equal(t, "family-essentials", line.PlanID)
		assert.Equal(t, 36, line.TermMonths)
	}
	// 80 shared + 14 device - 20 promo.
	assert.Equal(t, 74.0, order.MonthlyTotal)
}

func TestCheckoutService_Checkout_FamilyWithoutPlan(t *testing.T) {
	fx := createTestCheckoutService(t)
	id := openSession(t, fx.sessions, entity.PersonaFamily)

	_, err := fx.service.Checkout(context.Background(), id, &usecase.CheckoutRequest{})
	assert.True(t, errors.Is(err, domainerrors.ErrNoSharedPlan))
}

func TestCheckoutService_Checkout_SwitcherBYOWithPorting(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaSwitcher)

	porting := &entity.PortingStatus{
		ID:          uuid.NewString(),
		SessionID:   id.String(),
		PhoneNumber: "+15551234567",
		Carrier:     "OldTel",
		Steps:       entity.NewPortingSteps(time.Now()),
	}
	require.NoError(t, fx.portings.CreatePorting(ctx, porting))
	_, err := fx.sessions.UpdateSession(ctx, id, func(s *store.Session) error {
		s.Switcher.SetBYO(entity.BYOInfo{Model: "Pixel 7", Compatible: true, SimType: entity.SimESIM})
		s.Switcher.SetPorting(porting.ID)

		return nil
	})
	require.NoError(t, err)

	published := fx.expectPublished(t)
	order, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{Cart: store.CartPatch{PlanID: ptr("max")}})
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.True(t, order.Lines[0].ESIM)
	assert.Empty(t, order.Lines[0].DeviceID)
	assert.Equal(t, 55.0, order.MonthlyTotal)
	assert.Regexp(t, `^[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`, order.ActivationID)
	assert.True(t, published.OrderPlaced.ESIM)

	attached, err := fx.portings.FindPortingByID(ctx, porting.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID.String(), attached.OrderID)

	fx.qrcodes.EXPECT().
		GenerateActivationQR(entity.ESIMActivation{SMDPAddress: testSMDP, MatchingID: order.ActivationID}).
		Return([]byte("png"), nil)

	png, err := fx.service.ESIMQRCode(ctx, id, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestCheckoutService_Checkout_Errors(t *testing.T) {
	tests := []struct {
		name    string
		persona entity.Persona
		setup   func(s *store.Session)
		cart    store.CartPatch
		wantErr error
	}{
		{
			name:    "empty cart",
			persona: entity.PersonaGenZ,
			wantErr: domainerrors.ErrEmptyCart,
		},
		{
			name:    "missing plan",
			persona: entity.PersonaGenZ,
			cart:    store.CartPatch{DeviceID: ptr("pixel-8a")},
			wantErr: domainerrors.ErrEmptyCart,
		},
		{
			name:    "unknown plan",
			persona: entity.PersonaYoungPro,
			cart:    store.CartPatch{DeviceID: ptr("pixel-8a"), PlanID: ptr("mega")},
			wantErr: domainerrors.ErrPlanNotFound,
		},
		{
			name:    "unknown device",
			persona: entity.PersonaYoungPro,
			cart:    store.CartPatch{DeviceID: ptr("pixel-99"), PlanID: ptr("plus")},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:    "invalid promo code",
			persona: entity.PersonaGenZ,
			cart:    store.CartPatch{DeviceID: ptr("pixel-8a"), PlanID: ptr("plus"), PromoCode: ptr("FREE100")},
			wantErr: domainerrors.ErrInvalidPromoCode,
		},
		{
			name:    "incompatible own device",
			persona: entity.PersonaSwitcher,
			setup: func(s *store.Session) {
				s.Switcher.SetBYO(entity.BYOInfo{Model: "Nokia 3310", SimType: entity.SimBoth})
			},
			cart:    store.CartPatch{PlanID: ptr("plus")},
			wantErr: domainerrors.ErrIncompatibleDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			ctx := context.Background()
			id := openSession(t, fx.sessions, tt.persona)
			if tt.setup != nil {
				_, err := fx.sessions.UpdateSession(ctx, id, func(s *store.Session) error {
					tt.setup(s)

					return nil
				})
				require.NoError(t, err)
			}

			_, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{Cart: tt.cart})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCheckoutService_Checkout_PublishFailureKeepsOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaGenZ)

	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{DeviceID: ptr("pixel-8a"), PlanID: ptr("essential")},
	})
	require.NoError(t, err)

	_, err = fx.service.GetOrder(ctx, id, order.ID)
	require.NoError(t, err)
}

func TestCheckoutService_Checkout_PersistFailure(t *testing.T) {
	sessions := newTestSessions()
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewCheckoutService(CheckoutServiceParams{
		Sessions:  sessions,
		Orders:    mockRepo.NewMockOrderRepository(t),
		TxManager: txManager,
		Catalog:   testCatalog(t),
		Config:    &config.Config{},
		Logger:    testLogger(),
	})
	id := openSession(t, sessions, entity.PersonaGenZ)

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.Checkout(context.Background(), id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{DeviceID: ptr("pixel-8a"), PlanID: ptr("essential")},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrOrderCreationFailed))

	// Without an order the session cart is left as it was.
	session, err := sessions.FindSessionByID(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, session.GenZ.Cart.DeviceID)
	assert.Empty(t, session.GenZ.Cart.PlanID)
}

func TestCheckoutService_Checkout_SavesCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaGenZ)
	fx.expectPublished(t)

	_, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{DeviceID: ptr("pixel-8a"), PlanID: ptr("essential")},
	})
	require.NoError(t, err)

	session, err := fx.sessions.FindSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "pixel-8a", session.GenZ.Cart.DeviceID)
	assert.Equal(t, "essential", session.GenZ.Cart.PlanID)
}

func TestCheckoutService_GetOrder_OtherSession(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaGenZ)
	fx.expectPublished(t)

	order, err := fx.service.Checkout(ctx, id, &usecase.CheckoutRequest{
		Cart: store.CartPatch{DeviceID: ptr("pixel-8a"), PlanID: ptr("essential")},
	})
	require.NoError(t, err)

	_, err = fx.service.GetOrder(ctx, uuid.New(), order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	_, err = fx.service.GetOrder(ctx, id, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	_, err = fx.service.ESIMQRCode(ctx, id, order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNoESIM))
}
