package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/store"

	"github.com/google/uuid"
)

// PortingRequest starts a number transfer from the current carrier.
type PortingRequest struct {
	PhoneNumber   string `json:"phone_number" validate:"required,startswith=+,e164"`
	AccountNumber string `json:"account_number" validate:"required,max=32"`
	PIN           string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

// SwitcherUsecase defines the Value Switcher operations.
type SwitcherUsecase interface {
	// SetCarrier merges a patch into the current carrier details.
	SetCarrier(ctx context.Context, sessionID uuid.UUID, patch store.CarrierPatch) (*store.CurrentCarrier, error)

	// SetUsage merges a patch into the switcher usage.
	SetUsage(ctx context.Context, sessionID uuid.UUID, patch store.SwitcherUsagePatch) (*store.SwitcherUsage, error)

	// CheckBYO runs the compatibility check and keeps the result in the session.
	CheckBYO(ctx context.Context, sessionID uuid.UUID, model string) (*entity.BYOInfo, error)

	// ToggleDeal selects or unselects a catalog deal and returns the selection.
	ToggleDeal(ctx context.Context, sessionID uuid.UUID, dealID string) ([]string, error)

	// StartPorting opens a number transfer for the session.
	StartPorting(ctx context.Context, sessionID uuid.UUID, req *PortingRequest) (*entity.PortingStatus, error)

	// GetPorting returns the transfer of the session.
	GetPorting(ctx context.Context, sessionID uuid.UUID) (*entity.PortingStatus, error)
}
