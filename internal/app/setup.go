package app

import (
	"fmt"
	"log/slog"

	"conway-life/internal/driver"
	"conway-life/internal/presets"
)

// NewDriver loads the preset catalog and builds a driver from cfg, applying
// cfg.Preset when set.
func NewDriver(cfg *Config, logger *slog.Logger) (*driver.Driver, error) {
	dcfg, err := cfg.DriverConfig()
	if err != nil {
		return nil, err
	}
	catalog, err := presets.Load()
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	drv, err := driver.New(dcfg, catalog, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Preset != "" {
		if err := drv.SelectPreset(cfg.Preset); err != nil {
			return nil, err
		}
		drv.SetSpeed(cfg.Speed)
	}
	logger.Debug("Driver ready.", "preset", drv.Preset(), "rows", drv.Engine().Rows(), "cols", drv.Engine().Cols(), "seed", drv.Seed())
	return drv, nil
}
