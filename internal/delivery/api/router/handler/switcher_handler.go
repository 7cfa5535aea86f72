package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SwitcherHandler serves the Value Switcher flow
type SwitcherHandler struct {
	switcherUC usecase.SwitcherUsecase
}

// NewSwitcherHandler is the constructor for SwitcherHandler
func NewSwitcherHandler(switcherUC usecase.SwitcherUsecase) *SwitcherHandler {
	return &SwitcherHandler{switcherUC: switcherUC}
}

func (h *SwitcherHandler) SetCarrier(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.CarrierPatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	carrier, err := h.switcherUC.SetCarrier(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, carrier)
}

func (h *SwitcherHandler) SetUsage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.SwitcherUsagePatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	usage, err := h.switcherUC.SetUsage(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usage)
}

// CheckBYO runs the compatibility check and keeps the result in the session
func (h *SwitcherHandler) CheckBYO(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BYOCheckRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	info, err := h.switcherUC.CheckBYO(c.Request().Context(), id, req.Model)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info)
}

// ToggleDeal selects or unselects a deal and returns the selected deal IDs
func (h *SwitcherHandler) ToggleDeal(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	selected, err := h.switcherUC.ToggleDeal(c.Request().Context(), id, c.Param("dealId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"selected_deals": selected})
}

// StartPorting opens a number transfer
func (h *SwitcherHandler) StartPorting(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.PortingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.switcherUC.StartPorting(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, status)
}

func (h *SwitcherHandler) GetPorting(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.switcherUC.GetPorting(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
