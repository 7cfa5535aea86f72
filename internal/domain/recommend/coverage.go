package recommend

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInvalidCoordinates is returned for points outside the WGS84 range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// CheckCoverage returns the best network technology available at a point. 5G beats LTE;
// a point outside every zone has no coverage.
func CheckCoverage(zones []catalog.CoverageZone, lat, lng float64) (entity.CoverageResult, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return entity.CoverageResult{}, errors.Wrapf(ErrInvalidCoordinates, "lat %f lng %f", lat, lng)
	}

	result := entity.CoverageResult{Latitude: lat, Longitude: lng, Level: entity.CoverageNone}
	point := orb.Point{lng, lat}

	for _, zone := range zones {
		if !zoneContains(zone.Geometry, point) {
			continue
		}
		if rank(zone.Level) > rank(result.Level) {
			result.Level = zone.Level
			result.Zone = zone.Name
		}
	}

	return result, nil
}

func zoneContains(g orb.Geometry, p orb.Point) bool {
	switch geom := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(geom, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(geom, p)
	default:
		return false
	}
}

func rank(level entity.CoverageLevel) int {
	switch level {
	case entity.Coverage5G:
		return 2
	case entity.CoverageLTE:
		return 1
	default:
		return 0
	}
}
