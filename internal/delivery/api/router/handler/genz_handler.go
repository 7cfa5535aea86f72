package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GenZHandler serves the AI phone finder
type GenZHandler struct {
	genZUC usecase.GenZUsecase
}

// NewGenZHandler is the constructor for GenZHandler
func NewGenZHandler(genZUC usecase.GenZUsecase) *GenZHandler {
	return &GenZHandler{genZUC: genZUC}
}

// AskRequest is a chat message for the assistant
type AskRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

func (h *GenZHandler) SetPreferences(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.PreferencesPatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	query, err := h.genZUC.SetPreferences(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, query)
}

func (h *GenZHandler) FindMatches(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.genZUC.FindMatches(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches)
}

func (h *GenZHandler) Ask(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	reply, err := h.genZUC.Ask(c.Request().Context(), id, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply)
}
