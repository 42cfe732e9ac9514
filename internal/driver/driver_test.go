package driver

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"conway-life/internal/presets"
	"conway-life/pkg/sims/life"
)

func newDriver(t *testing.T) *Driver {
	t.Helper()
	catalog, err := presets.Load()
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Seed = 42
	d, err := New(cfg, catalog, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	return d
}

func TestNewStartsPausedWithRandomGrid(t *testing.T) {
	d := newDriver(t)
	require.False(t, d.Running())
	require.Equal(t, 20, d.Engine().Rows())
	require.Equal(t, 20, d.Engine().Cols())
	require.Equal(t, life.Wrapped, d.Engine().Mode())
	require.Equal(t, DefaultBaseInterval, d.Interval())
	require.Equal(t, DefaultCellSize, d.CellSize())
	require.Empty(t, d.Preset())

	alive, dead := d.Colors()
	require.Equal(t, DefaultAliveColor, alive)
	require.Equal(t, DefaultDeadColor, dead)
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	_, err := New(Config{Rows: 0, Cols: 5}, nil, nil)
	require.ErrorIs(t, err, life.ErrInvalidDimensions)
}

func TestIntervalFollowsSlider(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SelectPreset("pulsar"))

	cases := []struct {
		speed int
		want  time.Duration
	}{
		{0, 801 * time.Millisecond},
		{-10, 1602 * time.Millisecond},
		{5, 400500 * time.Microsecond},
		{10, time.Millisecond},
		{99, time.Millisecond},
		{-99, 1602 * time.Millisecond},
	}
	for _, tc := range cases {
		d.SetSpeed(tc.speed)
		require.Equal(t, tc.want, d.Interval(), "speed %d", tc.speed)
	}
	d.SetSpeed(-42)
	require.Equal(t, MinSpeed, d.Speed())
}

func TestAdvanceOnlyStepsWhileRunning(t *testing.T) {
	d := newDriver(t)
	n, err := d.Advance(time.Second)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, d.Engine().Generation())

	d.Start()
	n, err = d.Advance(250 * time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2, d.Engine().Generation())

	n, err = d.Advance(10 * time.Second)
	require.NoError(t, err)
	require.Equal(t, maxCatchUpSteps, n)

	d.Toggle()
	require.False(t, d.Running())
	gen := d.Engine().Generation()
	_, err = d.Advance(time.Second)
	require.NoError(t, err)
	require.Equal(t, gen, d.Engine().Generation())

	require.NoError(t, d.StepOnce())
	require.Equal(t, gen+1, d.Engine().Generation())
}

func TestTickUsesWallClock(t *testing.T) {
	d := newDriver(t)
	d.Start()
	start := time.Unix(500, 0)
	n, err := d.Tick(start)
	require.NoError(t, err)
	require.Zero(t, n)
	n, err = d.Tick(start.Add(110 * time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSelectPresetAppliesDefaults(t *testing.T) {
	d := newDriver(t)
	d.SetSpeed(4)
	d.Start()

	require.NoError(t, d.SelectPreset("gosper"))
	require.False(t, d.Running())
	require.Equal(t, "gosper glider gun", d.Preset())
	require.Equal(t, life.Bounded, d.Engine().Mode())
	require.Equal(t, 50, d.Engine().Rows())
	require.Equal(t, 0, d.Speed())
	require.Equal(t, 101*time.Millisecond, d.Interval())
	require.Equal(t, 20, d.CellSize())

	require.NoError(t, d.SelectPreset("penta"))
	require.Equal(t, life.Wrapped, d.Engine().Mode())
	require.Equal(t, 801*time.Millisecond, d.BaseInterval())
	require.Equal(t, 50, d.CellSize())
}

func TestSelectPresetUnknownLeavesState(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SelectPreset("pulsar"))
	before := d.Engine().Snapshot()

	err := d.SelectPreset("nope")
	require.ErrorIs(t, err, presets.ErrUnknownPreset)
	require.Equal(t, "pulsar", d.Preset())
	require.Equal(t, before, d.Engine().Snapshot())

	bad := &presets.Preset{Name: "bad", Matrix: [][]uint8{{1, 0}, {1}}}
	err = d.LoadPreset(bad)
	require.ErrorIs(t, err, life.ErrMalformedPreset)
	require.Equal(t, "pulsar", d.Preset())
}

func TestSelectPresetWithoutCatalog(t *testing.T) {
	d, err := New(Config{Rows: 5, Cols: 5, Seed: 1}, nil, nil)
	require.NoError(t, err)
	require.True(t, errors.Is(d.SelectPreset("pulsar"), presets.ErrUnknownPreset))
}

func TestResetRestoresDefaults(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SelectPreset("gosper"))
	d.SetSpeed(3)
	d.SetAliveColor(color.RGBA{R: 1, A: 255})
	d.Start()

	require.NoError(t, d.Reset(7))
	require.False(t, d.Running())
	require.Empty(t, d.Preset())
	require.Equal(t, int64(7), d.Seed())
	require.Equal(t, 20, d.Engine().Rows())
	require.Equal(t, life.Wrapped, d.Engine().Mode())
	require.Zero(t, d.Speed())
	require.Equal(t, DefaultBaseInterval, d.Interval())
	alive, _ := d.Colors()
	require.Equal(t, DefaultAliveColor, alive)
}

func TestColorChangesPause(t *testing.T) {
	d := newDriver(t)
	d.Start()
	d.SetDeadColor(color.RGBA{A: 255})
	require.False(t, d.Running())
	_, dead := d.Colors()
	require.Equal(t, color.RGBA{A: 255}, dead)
}

func TestParametersAndSpeedSetter(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SelectPreset("pulsar"))

	snap := d.Parameters()
	p, ok := snap.Lookup("preset")
	require.True(t, ok)
	require.Equal(t, "pulsar", p.Value)
	p, ok = snap.Lookup("boundary")
	require.True(t, ok)
	require.Equal(t, "wrapped", p.Value)
	p, ok = snap.Lookup("population")
	require.True(t, ok)
	require.Equal(t, "48", p.Value)

	require.True(t, d.SetIntParameter("speed", 20))
	require.Equal(t, MaxSpeed, d.Speed())
	require.False(t, d.SetIntParameter("generation", 3))

	ctrls := d.ParameterControls()
	require.Len(t, ctrls, 1)
	require.Equal(t, "speed", ctrls[0].Key)
}

func TestFitCellSize(t *testing.T) {
	require.Equal(t, DefaultCellSize, FitCellSize(20, 20))
	require.Equal(t, 20, FitCellSize(50, 50))
	require.Equal(t, 10, FitCellSize(30, 100))
	require.Equal(t, 1, FitCellSize(5000, 10))
}
