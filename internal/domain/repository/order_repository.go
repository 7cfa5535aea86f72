package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when trying to create an order that already exists.
	ErrDuplicateOrder = errors.New("order already exists")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a placed order with its lines.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersBySession retrieves the orders placed from a session, oldest first.
	FindOrdersBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Order, error)
}
