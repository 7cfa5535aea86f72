package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
)

// CoverageQuery is a coverage lookup request.
type CoverageQuery struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CatalogUsecase defines the session-less catalog reads and shopping tools.
type CatalogUsecase interface {
	ListDevices(ctx context.Context) []entity.Device
	ListPlans(ctx context.Context) []entity.Plan
	ListDeals(ctx context.Context) []entity.Deal
	ListRoamingPacks(ctx context.Context) []entity.RoamingPack
	ListRefurbs(ctx context.Context, filter recommend.RefurbFilter) []entity.RefurbDevice

	// DeviceScores returns every score of a device.
	DeviceScores(ctx context.Context, deviceID string) (*entity.DeviceScores, error)

	// Trending returns the devices carrying the trending badge with an explanation.
	Trending(ctx context.Context) []entity.RankedDevice

	// TrueCost runs the true cost calculator.
	TrueCost(ctx context.Context, input recommend.TrueCostInput) recommend.TrueCost

	// CheckBYO reports whether a device model can be brought to the network.
	CheckBYO(ctx context.Context, model string) entity.BYOInfo

	// CheckCoverage returns the best network technology at a location.
	CheckCoverage(ctx context.Context, query CoverageQuery) (*entity.CoverageResult, error)
}
