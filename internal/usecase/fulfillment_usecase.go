package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// FulfillmentUsecase defines the asynchronous work done by the fulfillment worker.
type FulfillmentUsecase interface {
	// ConfirmOrder notifies the shopper that the order was placed.
	ConfirmOrder(ctx context.Context, event *service.OrderPlacedEvent) error

	// AdvancePorting completes the next step of a number transfer after a carrier update.
	AdvancePorting(ctx context.Context, event *service.PortingUpdateEvent) (*entity.PortingStatus, error)
}
