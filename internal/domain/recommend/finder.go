// Package recommend holds the recommendation aggregators of the storefront.
//
// Aggregators take catalog slices and shopper preferences and return annotated copies of the
// catalog entries. An empty result is a valid answer and never an error.
package recommend

import (
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/scoring"
)

// Finder tuning.
const (
	MaxMatches         = 3
	CameraPriorityMax  = 40 // Slider values below this rank by camera.
	GamingPriorityMin  = 60 // Slider values above this rank by gaming.
	DefaultPriority    = 50
	GamerCategory      = "gamer"
	budgetFitWeightPct = 30
)

// FinderQuery is the Gen Z AI finder input.
type FinderQuery struct {
	Style      string  `json:"style"`       // Category tag, empty for any.
	Budget     float64 `json:"budget"`      // Ceiling on the 36-month price, 0 for none.
	Priority   int     `json:"priority"`    // 0 camera ... 100 gaming.
	GamingMode bool    `json:"gaming_mode"` // Ranks by gaming score and requires the gamer tag.
}

// RequiredTags returns the categories a device must carry to match the query.
func (q FinderQuery) RequiredTags() []string {
	tags := make([]string, 0, 2)
	if q.Style != "" {
		tags = append(tags, q.Style)
	}
	if q.GamingMode && q.Style != GamerCategory {
		tags = append(tags, GamerCategory)
	}

	return tags
}

// Find runs the AI phone finder over devices and returns at most MaxMatches results.
func Find(devices []entity.Device, q FinderQuery) []entity.RankedDevice {
	ranked := make([]entity.RankedDevice, 0, len(devices))
	for _, d := range devices {
		ranked = append(ranked, entity.RankedDevice{Device: d})
	}

	if q.GamingMode {
		for i := range ranked {
			ranked[i].Annotation.GamingScore = scoring.Gaming(ranked[i].Device)
		}
		slices.SortStableFunc(ranked, func(a, b entity.RankedDevice) int {
			return b.Annotation.GamingScore - a.Annotation.GamingScore
		})
	}

	tags := q.RequiredTags()
	ranked = slices.DeleteFunc(ranked, func(r entity.RankedDevice) bool {
		for _, tag := range tags {
			if !r.HasCategory(tag) {
				return true
			}
		}

		return q.Budget > 0 && r.Price36 > q.Budget
	})

	switch {
	case q.Priority < CameraPriorityMax:
		slices.SortStableFunc(ranked, func(a, b entity.RankedDevice) int {
			return scoring.Megapixels(b.Camera) - scoring.Megapixels(a.Camera)
		})
	case q.Priority > GamingPriorityMin:
		slices.SortStableFunc(ranked, func(a, b entity.RankedDevice) int {
			return scoring.Gaming(b.Device) - scoring.Gaming(a.Device)
		})
	}

	if len(ranked) > MaxMatches {
		ranked = ranked[:MaxMatches]
	}

	for i := range ranked {
		ranked[i].Annotation.MatchScore = matchScore(ranked[i].Device, q)
		ranked[i].Annotation.BestFor = Strongest(ranked[i].Device).Label
	}

	return ranked
}

// matchScore blends the camera and gaming scores by the priority slider and mixes in how
// comfortably the device fits the budget.
func matchScore(d entity.Device, q FinderQuery) int {
	priority := max(0, min(100, q.Priority))
	gaming := scoring.Gaming(d)
	if q.GamingMode {
		priority = 100
	}
	fit := (priority*gaming + (100-priority)*scoring.Camera(d) + 50) / 100

	budgetFit := 100
	if q.Budget > 0 {
		budgetFit = 100 - int(d.Price36/q.Budget*50+0.5)
	}

	score := (fit*(100-budgetFitWeightPct) + budgetFit*budgetFitWeightPct + 50) / 100

	return max(0, min(100, score))
}
