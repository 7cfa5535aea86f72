package impl

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/scoring"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(c *catalog.Catalog) usecase.CatalogUsecase {
	return &catalogService{
		catalog: c,
	}
}

func (s *catalogService) ListDevices(_ context.Context) []entity.Device {
	return s.catalog.Devices()
}

func (s *catalogService) ListPlans(_ context.Context) []entity.Plan {
	return s.catalog.Plans()
}

func (s *catalogService) ListDeals(_ context.Context) []entity.Deal {
	return s.catalog.Deals()
}

func (s *catalogService) ListRoamingPacks(_ context.Context) []entity.RoamingPack {
	return s.catalog.RoamingPacks()
}

func (s *catalogService) ListRefurbs(_ context.Context, filter recommend.RefurbFilter) []entity.RefurbDevice {
	return recommend.ListRefurbs(s.catalog.Refurbs(), filter)
}

// DeviceScores returns every score of a device
func (s *catalogService) DeviceScores(_ context.Context, deviceID string) (*entity.DeviceScores, error) {
	device, ok := s.catalog.Device(deviceID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrDeviceNotFound, "device %q", deviceID)
	}

	scores := scoring.Card(device)

	return &scores, nil
}

func (s *catalogService) Trending(_ context.Context) []entity.RankedDevice {
	return recommend.Trending(s.catalog.Devices())
}

func (s *catalogService) TrueCost(_ context.Context, input recommend.TrueCostInput) recommend.TrueCost {
	return recommend.CalculateTrueCost(input)
}

func (s *catalogService) CheckBYO(_ context.Context, model string) entity.BYOInfo {
	return recommend.CheckBYO(model)
}

// CheckCoverage returns the best network technology at a location
func (s *catalogService) CheckCoverage(_ context.Context, query usecase.CoverageQuery) (*entity.CoverageResult, error) {
	result, err := recommend.CheckCoverage(s.catalog.CoverageZones(), query.Latitude, query.Longitude)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidCoordinates) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, err.Error())
		}

		return nil, err
	}

	return &result, nil
}
