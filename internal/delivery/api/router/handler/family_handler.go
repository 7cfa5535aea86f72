package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FamilyHandler serves the family plan builder
type FamilyHandler struct {
	familyUC usecase.FamilyUsecase
}

// NewFamilyHandler is the constructor for FamilyHandler
func NewFamilyHandler(familyUC usecase.FamilyUsecase) *FamilyHandler {
	return &FamilyHandler{familyUC: familyUC}
}

// HouseholdRequest replaces the household. Members are validated by the household step.
type HouseholdRequest struct {
	Members []entity.HouseholdMember `json:"members"`
}

// RecommendationRequest asks for the shared plan, optionally with the per-line breakdown
type RecommendationRequest struct {
	Individual bool `json:"individual"`
}

// SelectDeviceRequest assigns a catalog device to a member
type SelectDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// SetHousehold stores the household. The validation result is returned alongside, never as an error.
func (h *FamilyHandler) SetHousehold(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req HouseholdRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	update, err := h.familyUC.SetHousehold(c.Request().Context(), id, req.Members)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, update)
}

func (h *FamilyHandler) SetUsage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.UsagePatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	usage, err := h.familyUC.SetUsage(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usage)
}

// ListDevices returns the family device browser. An empty category lists every device.
func (h *FamilyHandler) ListDevices(c echo.Context) error {
	category := recommend.FamilyCategory(c.QueryParam("category"))
	if category == "" {
		category = recommend.FamilyAll
	}
	if !category.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrInvalidCategory.WithDetails(string(category)))
	}

	return response.Success(c, http.StatusOK, h.familyUC.ListDevices(c.Request().Context(), category))
}

func (h *FamilyHandler) Recommend(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecommendationRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rec, err := h.familyUC.Recommend(c.Request().Context(), id, req.Individual)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rec)
}

func (h *FamilyHandler) SelectDevice(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SelectDeviceRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.familyUC.SelectDevice(c.Request().Context(), id, c.Param("memberId"), req.DeviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"member_id": c.Param("memberId"),
		"device_id": req.DeviceID,
	})
}

func (h *FamilyHandler) GetSafety(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.familyUC.GetSafety(c.Request().Context(), id, c.Param("memberId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

func (h *FamilyHandler) UpdateSafety(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.SafetyPatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.familyUC.UpdateSafety(c.Request().Context(), id, c.Param("memberId"), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

func (h *FamilyHandler) Summary(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.familyUC.Summary(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
