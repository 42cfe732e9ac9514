// Package driver holds the run/pause and presentation state that sits between
// an event loop and the life engine. It never blocks: the loop reports
// elapsed time and the driver steps the engine once per elapsed interval.
package driver

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"conway-life/internal/core"
	"conway-life/internal/presets"
	"conway-life/pkg/sims/life"
)

const (
	// MinSpeed and MaxSpeed bound the speed slider.
	MinSpeed = -10
	MaxSpeed = 10

	// DefaultBaseInterval is the tick interval of a random grid at speed 0.
	DefaultBaseInterval = 101 * time.Millisecond
	// DefaultGridSize is the side length of a random grid.
	DefaultGridSize = 20
	// DefaultCellSize is the on-screen size of a cell for 20x20 grids.
	DefaultCellSize = 50
	// ViewSize is the target edge length in pixels of the rendered grid when
	// the cell size is derived from the grid dimensions.
	ViewSize = DefaultGridSize * DefaultCellSize

	maxCatchUpSteps = 4
)

var (
	// DefaultAliveColor paints live cells.
	DefaultAliveColor = color.RGBA{B: 255, A: 255}
	// DefaultDeadColor paints dead cells.
	DefaultDeadColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Config seeds a Driver.
type Config struct {
	Rows       int
	Cols       int
	Seed       int64
	Speed      int
	AliveColor color.RGBA
	DeadColor  color.RGBA
}

// DefaultConfig returns the standard random 20x20 setup.
func DefaultConfig() Config {
	return Config{
		Rows:       DefaultGridSize,
		Cols:       DefaultGridSize,
		Seed:       time.Now().UnixNano(),
		AliveColor: DefaultAliveColor,
		DeadColor:  DefaultDeadColor,
	}
}

// Driver owns the engine plus everything the UI needs that is not simulation
// state: run flag, speed, colours, cell size and the active preset.
type Driver struct {
	cfg     Config
	engine  *life.Engine
	catalog *presets.Catalog
	clock   *core.FixedStep
	logger  *slog.Logger

	running  bool
	speed    int
	base     time.Duration
	cellSize int
	alive    color.RGBA
	dead     color.RGBA
	preset   string
	seed     int64
}

// New builds a paused driver showing a random grid. catalog may be nil when
// presets are not offered.
func New(cfg Config, catalog *presets.Catalog, logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AliveColor == (color.RGBA{}) {
		cfg.AliveColor = DefaultAliveColor
	}
	if cfg.DeadColor == (color.RGBA{}) {
		cfg.DeadColor = DefaultDeadColor
	}
	engine, err := life.New(cfg.Rows, cfg.Cols, cfg.Seed)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		cfg:     cfg,
		engine:  engine,
		catalog: catalog,
		clock:   core.NewFixedStep(DefaultBaseInterval, maxCatchUpSteps),
		logger:  logger,
	}
	d.applyDefaults(cfg.Seed)
	d.SetSpeed(cfg.Speed)
	return d, nil
}

func (d *Driver) applyDefaults(seed int64) {
	d.running = false
	d.seed = seed
	d.preset = ""
	d.base = DefaultBaseInterval
	d.speed = 0
	d.cellSize = FitCellSize(d.cfg.Rows, d.cfg.Cols)
	d.alive = d.cfg.AliveColor
	d.dead = d.cfg.DeadColor
	d.clock.Reset()
	d.clock.SetInterval(d.Interval())
}

// Engine exposes the simulation for read-only use by renderers.
func (d *Driver) Engine() *life.Engine { return d.engine }

// Catalog returns the preset catalog, which may be nil.
func (d *Driver) Catalog() *presets.Catalog { return d.catalog }

// Running reports whether Advance steps the engine.
func (d *Driver) Running() bool { return d.running }

// Start resumes automatic stepping.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.clock.Reset()
	d.logger.Debug("Simulation started.", "generation", d.engine.Generation())
}

// Pause stops automatic stepping.
func (d *Driver) Pause() {
	if !d.running {
		return
	}
	d.running = false
	d.logger.Debug("Simulation paused.", "generation", d.engine.Generation())
}

// Toggle flips between running and paused.
func (d *Driver) Toggle() {
	if d.running {
		d.Pause()
		return
	}
	d.Start()
}

// StepOnce advances exactly one generation regardless of the run flag.
func (d *Driver) StepOnce() error {
	return d.engine.Step()
}

// Speed returns the slider position in [MinSpeed, MaxSpeed].
func (d *Driver) Speed() int { return d.speed }

// SetSpeed moves the slider, clamping to its range, and updates the interval.
func (d *Driver) SetSpeed(v int) {
	d.speed = min(max(v, MinSpeed), MaxSpeed)
	d.clock.SetInterval(d.Interval())
}

// BaseInterval returns the interval used at speed 0.
func (d *Driver) BaseInterval() time.Duration { return d.base }

// Interval returns the time between generations: each slider notch away from
// zero shortens (positive) or lengthens (negative) it by a tenth of the base.
// The result never drops below one millisecond.
func (d *Driver) Interval() time.Duration {
	iv := time.Duration(float64(d.base) * (1 - float64(d.speed)/10))
	if iv < time.Millisecond {
		iv = time.Millisecond
	}
	return iv
}

// Advance feeds elapsed time to the tick clock and steps the engine once per
// full interval while running. It returns the number of steps taken.
func (d *Driver) Advance(elapsed time.Duration) (int, error) {
	if !d.running {
		return 0, nil
	}
	return d.steps(d.clock.Advance(elapsed))
}

// Tick is Advance driven by wall-clock timestamps from an event loop.
func (d *Driver) Tick(now time.Time) (int, error) {
	if !d.running {
		return 0, nil
	}
	return d.steps(d.clock.Tick(now))
}

func (d *Driver) steps(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := d.engine.Step(); err != nil {
			d.running = false
			return i, err
		}
	}
	return n, nil
}

// Reset pauses and starts over from a fresh random grid with default colours,
// base interval and slider position.
func (d *Driver) Reset(seed int64) error {
	if err := d.engine.Reset(d.cfg.Rows, d.cfg.Cols, seed); err != nil {
		return err
	}
	d.applyDefaults(seed)
	d.logger.Info("Grid reset.", "rows", d.cfg.Rows, "cols", d.cfg.Cols, "seed", seed)
	return nil
}

// SelectPreset pauses and loads the named preset along with its base interval
// and cell size. On error nothing changes.
func (d *Driver) SelectPreset(name string) error {
	if d.catalog == nil {
		return fmt.Errorf("%w %q: no catalog loaded", presets.ErrUnknownPreset, name)
	}
	p, err := d.catalog.Get(name)
	if err != nil {
		return err
	}
	return d.LoadPreset(p)
}

// LoadPreset pauses and applies p. On error nothing changes.
func (d *Driver) LoadPreset(p *presets.Preset) error {
	if err := d.engine.LoadPreset(p.Matrix, p.Boundary); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	d.running = false
	d.preset = p.Name
	d.base = p.BaseInterval
	d.speed = 0
	d.cellSize = FitCellSize(p.Rows(), p.Cols())
	if p.CellSize > 0 {
		d.cellSize = p.CellSize
	}
	d.clock.Reset()
	d.clock.SetInterval(d.Interval())
	d.logger.Info("Preset loaded.", "preset", p.Name, "rows", p.Rows(), "cols", p.Cols(), "boundary", p.Boundary)
	return nil
}

// FitCellSize returns the largest cell size that keeps a rows×cols grid
// within ViewSize pixels, never less than one.
func FitCellSize(rows, cols int) int {
	side := max(rows, cols)
	if side <= 0 {
		return DefaultCellSize
	}
	return max(ViewSize/side, 1)
}

// Preset returns the active preset name, or "" for a random grid.
func (d *Driver) Preset() string { return d.preset }

// Seed returns the seed of the last random fill.
func (d *Driver) Seed() int64 { return d.seed }

// CellSize returns the on-screen size of one cell in pixels.
func (d *Driver) CellSize() int { return d.cellSize }

// Colors returns the alive and dead cell colours.
func (d *Driver) Colors() (alive, dead color.RGBA) { return d.alive, d.dead }

// SetAliveColor pauses and changes the colour of live cells.
func (d *Driver) SetAliveColor(c color.RGBA) {
	d.Pause()
	d.alive = c
}

// SetDeadColor pauses and changes the colour of dead cells.
func (d *Driver) SetDeadColor(c color.RGBA) {
	d.Pause()
	d.dead = c
}

// Name identifies the simulation on the HUD.
func (d *Driver) Name() string { return d.engine.Name() }

// Size reports the engine dimensions.
func (d *Driver) Size() core.Size { return d.engine.Size() }

// Mode reports the engine boundary mode.
func (d *Driver) Mode() life.BoundaryMode { return d.engine.Mode() }

// Cells exposes the engine grid.
func (d *Driver) Cells() []uint8 { return d.engine.Cells() }

// Parameters reports the values shown on the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	preset := d.preset
	if preset == "" {
		preset = "random"
	}
	state := "paused"
	if d.running {
		state = "running"
	}
	e := d.engine
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				stringParam("preset", "Preset", preset),
				stringParam("boundary", "Boundary", e.Mode().String()),
				stringParam("size", "Size", fmt.Sprintf("%dx%d", e.Rows(), e.Cols())),
				intParam("generation", "Generation", e.Generation()),
				intParam("population", "Population", e.Population()),
			},
		},
		{
			Name: "Playback",
			Params: []core.Parameter{
				stringParam("state", "State", state),
				intParam("speed", "Speed", d.speed),
				stringParam("interval", "Interval", d.Interval().Round(time.Millisecond).String()),
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				stringParam("alive", "Alive", FormatHex(d.alive)),
				stringParam("dead", "Dead", FormatHex(d.dead)),
			},
		},
	}}
}

// ParameterControls exposes the speed slider to the HUD.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "speed", Label: "Speed", Step: 1, Min: MinSpeed, Max: MaxSpeed}}
}

// SetIntParameter implements core.IntParameterSetter for the speed slider.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if key != "speed" {
		return false
	}
	d.SetSpeed(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
