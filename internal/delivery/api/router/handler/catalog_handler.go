package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/recommend"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the catalog reads and the session-less shopping tools
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// BYOCheckRequest names the device model to check
type BYOCheckRequest struct {
	Model string `json:"model" validate:"required,max=100"`
}

func (h *CatalogHandler) ListDevices(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListDevices(c.Request().Context()))
}

func (h *CatalogHandler) ListPlans(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListPlans(c.Request().Context()))
}

func (h *CatalogHandler) ListDeals(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListDeals(c.Request().Context()))
}

func (h *CatalogHandler) ListRoamingPacks(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListRoamingPacks(c.Request().Context()))
}

// ListRefurbs filters refurbished devices by grade and minimum battery health
func (h *CatalogHandler) ListRefurbs(c echo.Context) error {
	var filter recommend.RefurbFilter
	if err := bind(c, &filter); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.catalogUC.ListRefurbs(c.Request().Context(), filter))
}

// DeviceScores returns every score of a device
func (h *CatalogHandler) DeviceScores(c echo.Context) error {
	scores, err := h.catalogUC.DeviceScores(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scores)
}

func (h *CatalogHandler) Trending(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Trending(c.Request().Context()))
}

// TrueCost runs the true cost calculator
func (h *CatalogHandler) TrueCost(c echo.Context) error {
	var input recommend.TrueCostInput
	if err := bind(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.catalogUC.TrueCost(c.Request().Context(), input))
}

// BYOCheck reports whether a device model can be brought to the network
func (h *CatalogHandler) BYOCheck(c echo.Context) error {
	var req BYOCheckRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.catalogUC.CheckBYO(c.Request().Context(), req.Model))
}

// Coverage returns the best network technology at a location
func (h *CatalogHandler) Coverage(c echo.Context) error {
	var query usecase.CoverageQuery
	if err := bind(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.catalogUC.CheckCoverage(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
