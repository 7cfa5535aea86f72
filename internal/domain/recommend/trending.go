package recommend

import (
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
)

// TrendingBadge marks devices surfaced in the trending rail.
const TrendingBadge = "Trending"

// Trending returns the devices carrying the trending badge, in catalog order, each with an
// explanation of why shoppers pick it.
func Trending(devices []entity.Device) []entity.RankedDevice {
	out := make([]entity.RankedDevice, 0)
	for _, d := range devices {
		if !d.HasBadge(TrendingBadge) {
			continue
		}

		strength := Strongest(d)
		out = append(out, entity.RankedDevice{
			Device: d,
			Annotation: entity.Annotation{
				MatchScore: strength.Score,
				BestFor: fmt.Sprintf("Trending for %s: %s",
					strings.ToLower(strength.Label), Explain(d, strength.Dimension)),
			},
		})
	}

	return out
}
