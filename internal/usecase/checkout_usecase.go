package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"

	"github.com/google/uuid"
)

// CheckoutRequest finalizes the session cart. Cart fields override what the session holds.
type CheckoutRequest struct {
	Cart        store.CartPatch `json:"cart"`
	NotifyToken string          `json:"notify_token"` // Optional push token for the confirmation.
}

// CheckoutUsecase defines order placement and retrieval.
type CheckoutUsecase interface {
	// Checkout prices the session cart and places the order.
	Checkout(ctx context.Context, sessionID uuid.UUID, req *CheckoutRequest) (*entity.Order, error)

	// GetOrder returns an order placed from the session.
	GetOrder(ctx context.Context, sessionID, orderID uuid.UUID) (*entity.Order, error)

	// ESIMQRCode renders the eSIM activation QR code of an order as PNG.
	ESIMQRCode(ctx context.Context, sessionID, orderID uuid.UUID) ([]byte, error)
}
