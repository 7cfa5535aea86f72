package recommend

import (
	"slices"

	"storefront/internal/domain/entity"
)

// DayPassMaxDays separates day passes from monthly roaming packs.
const DayPassMaxDays = 7

// bucketDimensions maps a quiz outcome to the score used to rank devices.
var bucketDimensions = map[entity.Bucket]Dimension{
	entity.BucketValue:    DimensionValue,
	entity.BucketPrestige: DimensionPrestige,
	entity.BucketBalanced: DimensionWork,
}

// YoungProPicks returns the top MaxMatches devices whose 24-month price fits the budget,
// ranked by the dimension of the quiz recommendation. A zero budget means no ceiling.
func YoungProPicks(devices []entity.Device, results entity.ScorerResults, budget float64) []entity.RankedDevice {
	dim, ok := bucketDimensions[results.Recommendation]
	if !ok {
		dim = DimensionWork
	}

	ranked := make([]entity.RankedDevice, 0, len(devices))
	for _, d := range devices {
		if budget > 0 && d.Price24 > budget {
			continue
		}
		ranked = append(ranked, entity.RankedDevice{
			Device:     d,
			Annotation: entity.Annotation{MatchScore: scoreOf(d, dim), BestFor: dimensionLabels[dim]},
		})
	}

	slices.SortStableFunc(ranked, func(a, b entity.RankedDevice) int {
		return b.Annotation.MatchScore - a.Annotation.MatchScore
	})

	if len(ranked) > MaxMatches {
		ranked = ranked[:MaxMatches]
	}

	return ranked
}

// SuggestRoaming returns the roaming packs that fit how often the shopper travels, cheapest
// first. Shoppers who never travel get no suggestion.
func SuggestRoaming(packs []entity.RoamingPack, freq entity.TravelFrequency) []entity.RoamingPack {
	out := make([]entity.RoamingPack, 0)
	for _, p := range packs {
		switch freq {
		case entity.TravelOccasional:
			if p.Days <= DayPassMaxDays {
				out = append(out, p)
			}
		case entity.TravelFrequent:
			if p.Days > DayPassMaxDays {
				out = append(out, p)
			}
		}
	}

	slices.SortStableFunc(out, func(a, b entity.RoamingPack) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	})

	return out
}
