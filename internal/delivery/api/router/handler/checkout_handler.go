package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves order placement and retrieval
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// Checkout places the order of the session cart
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CheckoutRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.checkoutUC.Checkout(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+order.ID.String())

	return response.Success(c, http.StatusCreated, order)
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.checkoutUC.GetOrder(c.Request().Context(), id, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ESIMQRCode renders the activation QR code of the order as PNG
func (h *CheckoutHandler) ESIMQRCode(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.checkoutUC.ESIMQRCode(c.Request().Context(), id, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Debug("Rendered eSIM QR code",
		slog.String("order_id", orderID.String()),
		slog.Int("bytes", len(image)),
	)

	return response.PNG(c, image)
}
