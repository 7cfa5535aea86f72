// Package catalog holds the static device, plan and promotion tables of the storefront.
//
// A Catalog is loaded once and never mutated afterwards. Every accessor returns copies so that
// callers can annotate or reorder the result freely.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed catalog.yaml
	embeddedCatalog []byte

	//go:embed coverage.geojson
	embeddedCoverage []byte
)

// Sentinel errors returned while loading a catalog.
var (
	ErrDuplicateID   = errors.New("duplicate catalog id")
	ErrUnknownDevice = errors.New("unknown device reference")
	ErrInvalidZone   = errors.New("invalid coverage zone")
)

// CoverageZone is a polygon in which the network offers the given technology.
type CoverageZone struct {
	Name     string
	Level    entity.CoverageLevel
	Geometry orb.Geometry
}

type catalogFile struct {
	Devices     []entity.Device         `yaml:"devices"`
	Plans       []entity.Plan           `yaml:"plans"`
	SharedPlans []entity.SharedPlanTier `yaml:"sharedPlans"`
	Roaming     []entity.RoamingPack    `yaml:"roaming"`
	Deals       []entity.Deal           `yaml:"deals"`
	Refurbs     []entity.RefurbDevice   `yaml:"refurbs"`
	PromoCodes  []entity.PromoCode      `yaml:"promoCodes"`
}

// Catalog is the immutable set of static storefront tables.
type Catalog struct {
	devices     []entity.Device
	deviceIndex map[string]int
	plans       []entity.Plan
	sharedPlans []entity.SharedPlanTier
	roaming     []entity.RoamingPack
	deals       []entity.Deal
	refurbs     []entity.RefurbDevice
	promos      map[string]entity.PromoCode
	zones       []CoverageZone
	version     string
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(embeddedCatalog, embeddedCoverage)
})

// Default returns the catalog compiled into the binary. It is parsed on first use.
func Default() (*Catalog, error) {
	return loadDefault()
}

// LoadFile reads a catalog YAML file from disk. The embedded coverage zones are used when
// coveragePath is empty.
func LoadFile(catalogPath, coveragePath string) (*Catalog, error) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}

	coverage := embeddedCoverage
	if coveragePath != "" {
		coverage, err = os.ReadFile(coveragePath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read coverage file")
		}
	}

	return Load(data, coverage)
}

// Load parses a catalog document and a GeoJSON coverage feature collection.
func Load(data, coverage []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}

	c := &Catalog{
		devices:     file.Devices,
		deviceIndex: make(map[string]int, len(file.Devices)),
		plans:       file.Plans,
		sharedPlans: file.SharedPlans,
		roaming:     file.Roaming,
		deals:       file.Deals,
		version:     util.Checksum(append(slices.Clone(data), coverage...))[:12],
	}

	for i, d := range c.devices {
		if _, exists := c.deviceIndex[d.ID]; exists {
			return nil, errors.Wrapf(ErrDuplicateID, "device %q", d.ID)
		}
		c.deviceIndex[d.ID] = i
	}

	if err := checkUniqueIDs("plan", c.plans, func(p entity.Plan) string { return p.ID }); err != nil {
		return nil, err
	}
	if err := checkUniqueIDs("shared plan", c.sharedPlans, func(p entity.SharedPlanTier) string { return p.ID }); err != nil {
		return nil, err
	}

	c.promos = make(map[string]entity.PromoCode, len(file.PromoCodes))
	for _, p := range file.PromoCodes {
		key := strings.ToUpper(strings.TrimSpace(p.Code))
		if _, exists := c.promos[key]; exists {
			return nil, errors.Wrapf(ErrDuplicateID, "promo code %q", p.Code)
		}
		p.Code = key
		c.promos[key] = p
	}

	// Tiers are matched against household size in order of capacity.
	slices.SortStableFunc(c.sharedPlans, func(a, b entity.SharedPlanTier) int {
		return a.MaxLines - b.MaxLines
	})

	c.refurbs = make([]entity.RefurbDevice, 0, len(file.Refurbs))
	for _, r := range file.Refurbs {
		device, ok := c.Device(r.DeviceID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownDevice, "refurb %q references %q", r.ID, r.DeviceID)
		}
		r.Price = util.RoundCents(device.Price24 * (1 - r.Grade.Discount()))
		c.refurbs = append(c.refurbs, r)
	}

	zones, err := parseZones(coverage)
	if err != nil {
		return nil, err
	}
	c.zones = zones

	return c, nil
}

func checkUniqueIDs[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := id(item)
		if _, exists := seen[key]; exists {
			return errors.Wrapf(ErrDuplicateID, "%s %q", kind, key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

func parseZones(data []byte) ([]CoverageZone, error) {
	if len(data) == 0 {
		return nil, nil
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode coverage zones")
	}

	zones := make([]CoverageZone, 0, len(fc.Features))
	for i, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			return nil, errors.Wrapf(ErrInvalidZone, "feature %d is not a polygon", i)
		}

		level := entity.CoverageLevel(f.Properties.MustString("level", ""))
		if level != entity.Coverage5G && level != entity.CoverageLTE {
			return nil, errors.Wrapf(ErrInvalidZone, "feature %d has level %q", i, level)
		}

		zones = append(zones, CoverageZone{
			Name:     f.Properties.MustString("name", fmt.Sprintf("zone-%d", i)),
			Level:    level,
			Geometry: f.Geometry,
		})
	}

	return zones, nil
}

// Version is a short digest of the catalog sources, used to tag responses and logs.
func (c *Catalog) Version() string {
	return c.version
}

// Devices returns every device in catalog order.
func (c *Catalog) Devices() []entity.Device {
	out := make([]entity.Device, len(c.devices))
	for i, d := range c.devices {
		out[i] = cloneDevice(d)
	}

	return out
}

// Device looks up a device by ID.
func (c *Catalog) Device(id string) (entity.Device, bool) {
	i, ok := c.deviceIndex[id]
	if !ok {
		return entity.Device{}, false
	}

	return cloneDevice(c.devices[i]), true
}

// Plans returns the single-line plans.
func (c *Catalog) Plans() []entity.Plan {
	out := make([]entity.Plan, len(c.plans))
	for i, p := range c.plans {
		p.Perks = slices.Clone(p.Perks)
		out[i] = p
	}

	return out
}

// Plan looks up a single-line plan by ID.
func (c *Catalog) Plan(id string) (entity.Plan, bool) {
	for _, p := range c.plans {
		if p.ID == id {
			p.Perks = slices.Clone(p.Perks)

			return p, true
		}
	}

	return entity.Plan{}, false
}

// SharedPlans returns the family tiers ordered by line capacity.
func (c *Catalog) SharedPlans() []entity.SharedPlanTier {
	return slices.Clone(c.sharedPlans)
}

// SharedPlan looks up a family tier by ID.
func (c *Catalog) SharedPlan(id string) (entity.SharedPlanTier, bool) {
	for _, p := range c.sharedPlans {
		if p.ID == id {
			return p, true
		}
	}

	return entity.SharedPlanTier{}, false
}

// RoamingPacks returns the travel add-ons.
func (c *Catalog) RoamingPacks() []entity.RoamingPack {
	return slices.Clone(c.roaming)
}

// Deals returns the switcher promotions.
func (c *Catalog) Deals() []entity.Deal {
	return slices.Clone(c.deals)
}

// Refurbs returns the refurbished units with their derived prices.
func (c *Catalog) Refurbs() []entity.RefurbDevice {
	return slices.Clone(c.refurbs)
}

// Promo looks up a promo code. Codes are matched case-insensitively.
func (c *Catalog) Promo(code string) (entity.PromoCode, bool) {
	p, ok := c.promos[strings.ToUpper(strings.TrimSpace(code))]

	return p, ok
}

// CoverageZones returns the network coverage polygons.
func (c *Catalog) CoverageZones() []CoverageZone {
	return slices.Clone(c.zones)
}

func cloneDevice(d entity.Device) entity.Device {
	d.Categories = slices.Clone(d.Categories)
	d.Badges = slices.Clone(d.Badges)

	return d
}
