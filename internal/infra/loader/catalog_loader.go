// Package loader provides the catalog the storefront serves.
package loader

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/catalog"

	"github.com/pkg/errors"
)

// NewCatalog loads the catalog from catalog.path when configured, otherwise the embedded one.
// Lint warnings are logged and never fail startup.
func NewCatalog(cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	var (
		c      *catalog.Catalog
		err    error
		source = "embedded"
	)

	if cfg.Catalog != nil && cfg.Catalog.Path != "" {
		source = cfg.Catalog.Path
		c, err = catalog.LoadFile(cfg.Catalog.Path, cfg.Catalog.CoveragePath)
	} else {
		c, err = catalog.Default()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog from %s", source)
	}

	for _, warning := range c.Lint() {
		logger.Warn("Catalog lint warning",
			slog.String("table", warning.Table),
			slog.String("id", warning.ID),
			slog.String("message", warning.Message),
		)
	}

	logger.Info("Catalog loaded",
		slog.String("source", source),
		slog.String("version", c.Version()),
		slog.Int("devices", len(c.Devices())),
		slog.Int("plans", len(c.Plans())),
		slog.Int("coverage_zones", len(c.CoverageZones())),
	)

	return c, nil
}
