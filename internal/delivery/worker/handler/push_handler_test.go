package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockFulfillmentUsecase) {
	t.Helper()

	fulfillmentUC := mockUC.NewMockFulfillmentUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.DiscardHandler),
		FulfillmentUC: fulfillmentUC,
	})

	return h, fulfillmentUC
}

func pushBody(t *testing.T, event *service.Event, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.ID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/test/subscriptions/storefront-fulfillment"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_OrderPlaced(t *testing.T) {
	h, fulfillmentUC := newTestPushHandler(t, &config.Config{})

	placed := &service.OrderPlacedEvent{OrderID: "order-1", Lines: 1, NotifyToken: "device-token"}
	fulfillmentUC.EXPECT().ConfirmOrder(mock.Anything, placed).
		Run(func(ctx context.Context, _ *service.OrderPlacedEvent) {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil).Once()

	rec := servePush(h, pushBody(t, &service.Event{
		ID:          "evt-1",
		Type:        service.EventOrderPlaced,
		RequestID:   "req-from-event",
		OrderPlaced: placed,
	}, map[string]string{"request_id": "req-from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	porting := &service.PortingUpdateEvent{PortingID: "port-1", Carrier: "Acme Mobile"}

	tests := []struct {
		name       string
		event      *service.Event
		setup      func(m *mockUC.MockFulfillmentUsecase)
		wantStatus int
	}{
		{
			name:  "porting advanced",
			event: &service.Event{ID: "evt-2", Type: service.EventPortingUpdate, PortingUpdate: porting},
			setup: func(m *mockUC.MockFulfillmentUsecase) {
				status := &entity.PortingStatus{ID: "port-1"}
				m.EXPECT().AdvancePorting(mock.Anything, porting).Return(status, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "porting gone is acknowledged",
			event: &service.Event{ID: "evt-3", Type: service.EventPortingUpdate, PortingUpdate: porting},
			setup: func(m *mockUC.MockFulfillmentUsecase) {
				m.EXPECT().AdvancePorting(mock.Anything, porting).
					Return(nil, errors.Wrap(domainerrors.ErrPortingNotFound, "port-1")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "porting storage failure is retried",
			event: &service.Event{ID: "evt-4", Type: service.EventPortingUpdate, PortingUpdate: porting},
			setup: func(m *mockUC.MockFulfillmentUsecase) {
				m.EXPECT().AdvancePorting(mock.Anything, porting).Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:  "notification failure is retried",
			event: &service.Event{ID: "evt-5", Type: service.EventOrderPlaced, OrderPlaced: &service.OrderPlacedEvent{OrderID: "order-2"}},
			setup: func(m *mockUC.MockFulfillmentUsecase) {
				m.EXPECT().ConfirmOrder(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "missing payload is dropped",
			event:      &service.Event{ID: "evt-6", Type: service.EventOrderPlaced},
			setup:      func(*mockUC.MockFulfillmentUsecase) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown type is acknowledged",
			event:      &service.Event{ID: "evt-7", Type: "catalog.reloaded"},
			setup:      func(*mockUC.MockFulfillmentUsecase) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fulfillmentUC := newTestPushHandler(t, &config.Config{})
			tt.setup(fulfillmentUC)

			rec := servePush(h, pushBody(t, tt.event, nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`, nil).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`, nil).Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://fulfillment.example/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, fulfillmentUC := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.verifyToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good-token" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	body := pushBody(t, &service.Event{ID: "evt-8", Type: "catalog.reloaded"}, nil)

	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, http.Header{"Authorization": {"Bearer forged"}}).Code)
	assert.Equal(t, "https://fulfillment.example/push", gotAudience)

	assert.Equal(t, http.StatusOK, servePush(h, body, http.Header{"Authorization": {"Bearer good-token"}}).Code)
	fulfillmentUC.AssertNotCalled(t, "ConfirmOrder", mock.Anything, mock.Anything)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
