package worker

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWorkerRoutes(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.DiscardHandler)

	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:        cfg,
		Logger:        logger,
		FulfillmentUC: mockUC.NewMockFulfillmentUsecase(t),
	})
	e := newEcho(cfg, logger, push)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 2048)))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
