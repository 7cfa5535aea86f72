package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/recommend"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Listings(t *testing.T) {
	c := testCatalog(t)
	svc := NewCatalogService(c)
	ctx := context.Background()

	assert.Len(t, svc.ListDevices(ctx), len(c.Devices()))
	assert.Len(t, svc.ListPlans(ctx), len(c.Plans()))
	assert.Len(t, svc.ListDeals(ctx), 3)
	assert.NotEmpty(t, svc.ListRoamingPacks(ctx))
	assert.NotEmpty(t, svc.Trending(ctx))

	refurbs := svc.ListRefurbs(ctx, recommend.RefurbFilter{Grade: entity.GradeA})
	require.NotEmpty(t, refurbs)
	for _, r := range refurbs {
		assert.Equal(t, entity.GradeA, r.Grade)
	}
}

func TestCatalogService_DeviceScores(t *testing.T) {
	svc := NewCatalogService(testCatalog(t))
	ctx := context.Background()

	scores, err := svc.DeviceScores(ctx, "rog-phone-8")
	require.NoError(t, err)
	assert.Equal(t, "rog-phone-8", scores.DeviceID)
	assert.GreaterOrEqual(t, scores.Gaming, 0)
	assert.LessOrEqual(t, scores.Gaming, 100)

	_, err = svc.DeviceScores(ctx, "unknown")
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestCatalogService_Tools(t *testing.T) {
	svc := NewCatalogService(testCatalog(t))
	ctx := context.Background()

	cost := svc.TrueCost(ctx, recommend.TrueCostInput{DeviceMonthly: 40, PlanMonthly: 49, Months: 24, Promo: 10})
	assert.Equal(t, 1896.0, cost.Total)
	assert.Equal(t, 79.0, cost.TrueMonthly)

	assert.False(t, svc.CheckBYO(ctx, "Nokia 3310").Compatible)
	assert.Equal(t, entity.SimESIM, svc.CheckBYO(ctx, "iPhone 15 Pro").SimType)
}

func TestCatalogService_CheckCoverage(t *testing.T) {
	svc := NewCatalogService(testCatalog(t))
	ctx := context.Background()

	result, err := svc.CheckCoverage(ctx, usecase.CoverageQuery{Latitude: 37.77, Longitude: -122.42})
	require.NoError(t, err)
	assert.Equal(t, entity.Coverage5G, result.Level)

	_, err = svc.CheckCoverage(ctx, usecase.CoverageQuery{Latitude: 91, Longitude: 0})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}
