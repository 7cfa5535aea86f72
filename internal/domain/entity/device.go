// Package entity contains the core business objects of the project.
package entity

import "slices"

// Device is a purchasable handset from the static catalog. Catalog entries are never mutated;
// aggregators attach an Annotation to a copy instead.
type Device struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Brand       string   `json:"brand" yaml:"brand"`
	Price24     float64  `json:"price24" yaml:"price24"`                     // Monthly price on a 24-month term.
	Price36     float64  `json:"price36" yaml:"price36"`                     // Monthly price on a 36-month term.
	Upfront     float64  `json:"upfront,omitempty" yaml:"upfront,omitempty"` // Optional one-off cost.
	Camera      string   `json:"camera" yaml:"camera"`
	Display     string   `json:"display" yaml:"display"`
	RefreshRate string   `json:"refresh_rate" yaml:"refreshRate"` // e.g. "120Hz".
	Battery     string   `json:"battery" yaml:"battery"`          // e.g. "5000mAh".
	Storage     string   `json:"storage" yaml:"storage"`
	Chipset     string   `json:"chipset" yaml:"chipset"`
	Categories  []string `json:"categories" yaml:"categories"`
	Badges      []string `json:"badges,omitempty" yaml:"badges,omitempty"`
}

// HasCategory reports whether the device is tagged with the given category.
func (d Device) HasCategory(category string) bool {
	return slices.Contains(d.Categories, category)
}

// MonthlyPrice returns the monthly device price for a contract term. Terms other than 36
// months use the 24-month price.
func (d Device) MonthlyPrice(termMonths int) float64 {
	if termMonths == 36 {
		return d.Price36
	}

	return d.Price24
}

// HasBadge reports whether the device carries the given marketing badge.
func (d Device) HasBadge(badge string) bool {
	return slices.Contains(d.Badges, badge)
}

// Annotation is the recommendation metadata an aggregator attaches to a device.
type Annotation struct {
	MatchScore  int    `json:"match_score"`
	GamingScore int    `json:"gaming_score,omitempty"`
	BestFor     string `json:"best_for,omitempty"`
}

// RankedDevice pairs a catalog device with the annotation computed for one query.
type RankedDevice struct {
	Device
	Annotation Annotation `json:"annotation"`
}

// DeviceScores is the full score card of a single device.
type DeviceScores struct {
	DeviceID   string `json:"device_id"`
	Gaming     int    `json:"gaming"`
	Battery    int    `json:"battery"`
	Camera     int    `json:"camera"`
	Work       int    `json:"work"`
	Prestige   int    `json:"prestige"`
	Value      int    `json:"value"`
	Durability int    `json:"durability"`
	KidSafety  int    `json:"kid_safety"`
}
