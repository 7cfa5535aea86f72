package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for number transfer persistence.
var (
	// ErrPortingNotFound is returned when a number transfer is not found.
	ErrPortingNotFound = errors.New("porting request not found")
	// ErrDuplicatePorting is returned when a phone number already has a transfer in progress.
	ErrDuplicatePorting = errors.New("porting request already exists")
)

// PortingRepository defines the interface for number transfer tracking.
type PortingRepository interface {
	// CreatePorting persists a new transfer request.
	CreatePorting(ctx context.Context, porting *entity.PortingStatus) error

	// FindPortingByID retrieves a transfer by its unique ID.
	FindPortingByID(ctx context.Context, id string) (*entity.PortingStatus, error)

	// UpdatePorting saves the steps and order link of an existing transfer.
	UpdatePorting(ctx context.Context, porting *entity.PortingStatus) error
}
