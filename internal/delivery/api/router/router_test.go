package router

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/catalog"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/qrcode"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testAPI struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "router-test-secret"
	cfg.Session = &config.SessionConfig{TTL: time.Hour}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.ESIM = &config.ESIMConfig{SMDPAddress: "smdp.test.example"}

	logger := slog.New(slog.DiscardHandler)
	c, err := catalog.Default()
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	sessions := memory.NewSessionRepository()
	st := memory.NewStore()
	sessionUC := impl.NewSessionService(sessions, tokens, cfg, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	NewRouter(RouterParams{
		CatalogHandler:  handler.NewCatalogHandler(impl.NewCatalogService(c)),
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		GenZHandler:     handler.NewGenZHandler(impl.NewGenZService(sessions, c, logger)),
		FamilyHandler:   handler.NewFamilyHandler(impl.NewFamilyService(sessions, c, logger)),
		YoungProHandler: handler.NewYoungProHandler(impl.NewYoungProService(sessions, c, logger)),
		SwitcherHandler: handler.NewSwitcherHandler(impl.NewSwitcherService(
			sessions, memory.NewPortingRepository(st), c, auth.NewBcryptHasher(cfg), publisher, logger,
		)),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{
			CheckoutUC: impl.NewCheckoutService(impl.CheckoutServiceParams{
				Sessions:  sessions,
				Orders:    memory.NewOrderRepository(st),
				TxManager: memory.NewTransactionManager(st),
				Catalog:   c,
				QRCodes:   qrcode.NewQRCodeService(256, "M"),
				Publisher: publisher,
				Config:    cfg,
				Logger:    logger,
			}),
			Logger: logger,
		}),
		SessionMiddleware: apimiddleware.NewSessionMiddleware(sessionUC),
	}).RegisterRoutes(e)

	return &testAPI{t: t, echo: e}
}

func (a *testAPI) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

// start opens a session for the persona and returns its bearer token.
func (a *testAPI) start(persona string) string {
	a.t.Helper()

	rec, env := a.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{"persona": persona})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var started struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &started))
	require.NotEmpty(a.t, started.Token)

	return started.Token
}

func TestRouter_PublicRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := api.do(http.MethodGet, "/api/v1/catalog/devices", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var devices []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &devices))
	assert.NotEmpty(t, devices)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, env = api.do(http.MethodPost, "/api/v1/tools/true-cost", "", map[string]any{
		"device_monthly": 45,
		"plan_monthly":   34,
		"months":         24,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var cost struct {
		Total       float64 `json:"total"`
		TrueMonthly float64 `json:"true_monthly"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cost))
	assert.InDelta(t, 1896, cost.Total, 0.001)
	assert.InDelta(t, 79, cost.TrueMonthly, 0.001)

	rec, env = api.do(http.MethodPost, "/api/v1/tools/byo-check", "", map[string]string{"model": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "model")

	rec, _ = api.do(http.MethodGet, "/api/v1/catalog/devices/no-such-phone/scores", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SessionAuth(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(http.MethodGet, "/api/v1/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, env = api.do(http.MethodGet, "/api/v1/session", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_TOKEN_INVALID", env.Error.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{"persona": "pirate"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PERSONA", env.Error.Code)

	token := api.start("genz")
	rec, _ = api.do(http.MethodGet, "/api/v1/session", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(http.MethodGet, "/api/v1/family/summary", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PERSONA_MISMATCH", env.Error.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/session/wizard/sideways", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_EVENT", env.Error.Code)
}

func TestRouter_FamilyHouseholdGate(t *testing.T) {
	api := newTestAPI(t)
	token := api.start("family")

	rec, env := api.do(http.MethodPut, "/api/v1/family/household", token, map[string]any{
		"members": []map[string]any{
			{"name": "Alex", "age": 121, "role": "parent"},
			{"name": "Kim", "age": 9, "role": "kid"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var update struct {
		Validation struct {
			OK bool `json:"ok"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &update))
	assert.False(t, update.Validation.OK)

	rec, env = api.do(http.MethodPost, "/api/v1/session/wizard/next", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "STEP_INCOMPLETE", env.Error.Code)
	assert.Contains(t, env.Error.Details, "members.0.age")

	rec, _ = api.do(http.MethodPut, "/api/v1/family/household", token, map[string]any{
		"members": []map[string]any{
			{"name": "Alex", "age": 45, "role": "parent"},
			{"name": "Kim", "age": 9, "role": "kid"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/session/wizard/next", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var nav struct {
		Wizard struct {
			Current string `json:"current"`
		} `json:"wizard"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &nav))
	assert.Equal(t, "usage", nav.Wizard.Current)

	// Usage and plan advance without a usage profile or a recommendation.
	for _, want := range []string{"plan", "devices"} {
		rec, env = api.do(http.MethodPost, "/api/v1/session/wizard/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(env.Data, &nav))
		assert.Equal(t, want, nav.Wizard.Current)
	}

	rec, _ = api.do(http.MethodGet, "/api/v1/family/devices?category=pets", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_GenZCheckout(t *testing.T) {
	api := newTestAPI(t)
	token := api.start("genz")

	rec, env := api.do(http.MethodPut, "/api/v1/genz/preferences", token, map[string]any{"priority": 101})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error.Details, "priority")

	rec, _ = api.do(http.MethodPut, "/api/v1/genz/preferences", token, map[string]any{
		"style":    "gaming",
		"budget":   1200,
		"priority": 80,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodGet, "/api/v1/genz/matches", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/checkout", token, map[string]any{
		"cart": map[string]any{"device_id": "iphone-15-pro", "plan_id": "plus"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var order struct {
		ID    string `json:"id"`
		Lines []any  `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Len(t, order.Lines, 1)
	assert.Equal(t, "/api/v1/orders/"+order.ID, rec.Header().Get(echo.HeaderLocation))

	rec, _ = api.do(http.MethodGet, "/api/v1/orders/"+order.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(http.MethodGet, "/api/v1/orders/"+order.ID+"/esim-qr", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NO_ESIM", env.Error.Code)

	rec, env = api.do(http.MethodGet, "/api/v1/orders/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)

	other := api.start("genz")
	rec, _ = api.do(http.MethodGet, "/api/v1/orders/"+order.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SwitcherESIM(t *testing.T) {
	api := newTestAPI(t)
	token := api.start("value_switcher")

	rec, _ := api.do(http.MethodPut, "/api/v1/switcher/carrier", token, map[string]any{
		"name":         "Acme Mobile",
		"monthly_bill": 95,
		"lines":        1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/switcher/byo", token, map[string]string{"model": "iPhone 15 Pro"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := api.do(http.MethodPost, "/api/v1/switcher/porting", token, map[string]string{
		"phone_number":   "4155550100",
		"account_number": "ACCT-1",
		"pin":            "1234",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "must start with +", env.Error.Details["phone_number"])

	rec, _ = api.do(http.MethodPost, "/api/v1/switcher/porting", token, map[string]string{
		"phone_number":   "+14155550100",
		"account_number": "ACCT-1",
		"pin":            "1234",
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	rec, _ = api.do(http.MethodGet, "/api/v1/switcher/porting", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/checkout", token, map[string]any{
		"cart": map[string]any{"plan_id": "plus"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var order struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))

	rec, _ = api.do(http.MethodGet, "/api/v1/orders/"+order.ID+"/esim-qr", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())
}
