package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"
	"storefront/internal/domain/wizard"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves persona sessions and their wizards
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSessionRequest represents the request body for starting a session
type StartSessionRequest struct {
	Persona entity.Persona `json:"persona" validate:"required"`
}

// StartSession opens a persona session and returns its bearer token
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	started, err := h.sessionUC.StartSession(c.Request().Context(), req.Persona)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, started)
}

// GetSession returns a snapshot of the session store
func (h *SessionHandler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// ResetSession restores the persona store to its initial state
func (h *SessionHandler) ResetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.ResetSession(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Navigate applies a wizard event. A blocked step answers 422 with the field errors.
func (h *SessionHandler) Navigate(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	nav, err := h.sessionUC.Navigate(c.Request().Context(), id, wizard.Event(c.Param("event")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !nav.Validation.OK {
		return response.UnprocessableEntity(c, "STEP_INCOMPLETE", "Complete the current step before moving on", nav.Validation.Errors)
	}

	return response.Success(c, http.StatusOK, nav)
}

// UpdateCart merges a cart patch into the session
func (h *SessionHandler) UpdateCart(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.CartPatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.sessionUC.UpdateCart(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
