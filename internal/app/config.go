package app

import (
	"flag"
	"fmt"
	"time"

	"conway-life/internal/driver"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Preset    string
	Rows      int
	Cols      int
	Seed      int64
	Speed     int
	Alive     string
	Dead      string
	TPS       int
	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:      driver.DefaultGridSize,
		Cols:      driver.DefaultGridSize,
		Alive:     driver.FormatHex(driver.DefaultAliveColor),
		Dead:      driver.FormatHex(driver.DefaultDeadColor),
		TPS:       60,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "starting preset (pulsar, penta, gosper, glider); empty for a random grid")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of the random grid")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of the random grid")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random grid; 0 picks one from the clock")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed slider position (-10..10)")
	fs.StringVar(&c.Alive, "alive", c.Alive, "colour of live cells (#rrggbb)")
	fs.StringVar(&c.Dead, "dead", c.Dead, "colour of dead cells (#rrggbb)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "event loop ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text, json)")
}

// DriverConfig validates c and converts it into a driver.Config.
func (c *Config) DriverConfig() (driver.Config, error) {
	if c.Rows <= 0 || c.Cols <= 0 {
		return driver.Config{}, fmt.Errorf("grid size %dx%d must be positive", c.Rows, c.Cols)
	}
	alive, err := driver.ParseHex(c.Alive)
	if err != nil {
		return driver.Config{}, fmt.Errorf("-alive: %w", err)
	}
	dead, err := driver.ParseHex(c.Dead)
	if err != nil {
		return driver.Config{}, fmt.Errorf("-dead: %w", err)
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return driver.Config{
		Rows:       c.Rows,
		Cols:       c.Cols,
		Seed:       seed,
		Speed:      c.Speed,
		AliveColor: alive,
		DeadColor:  dead,
	}, nil
}
