package presets

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"conway-life/pkg/sims/life"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"pulsar", "penta-decathalon", "gosper glider gun", "glider"}, c.Names())

	cases := []struct {
		name     string
		mode     life.BoundaryMode
		rows     int
		interval time.Duration
		cellSize int
	}{
		{"pulsar", life.Wrapped, 20, 801 * time.Millisecond, 50},
		{"penta-decathalon", life.Wrapped, 20, 801 * time.Millisecond, 50},
		{"gosper glider gun", life.Bounded, 50, 101 * time.Millisecond, 20},
		{"glider", life.Wrapped, 20, 101 * time.Millisecond, 50},
	}
	for _, tc := range cases {
		p, err := c.Get(tc.name)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.mode, p.Boundary, tc.name)
		require.Equal(t, tc.rows, p.Rows(), tc.name)
		require.Equal(t, tc.rows, p.Cols(), tc.name)
		require.Equal(t, tc.interval, p.BaseInterval, tc.name)
		require.Equal(t, tc.cellSize, p.CellSize, tc.name)
	}
}

func TestGetResolvesAliases(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"gosper", "Gosper Glider Gun", "gosper_glider_gun", "GUN"} {
		p, err := c.Get(name)
		require.NoError(t, err, name)
		require.Equal(t, "gosper glider gun", p.Name)
	}
	p, err := c.Get("penta")
	require.NoError(t, err)
	require.Equal(t, "penta-decathalon", p.Name)

	_, err = c.Get("spaceship")
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func period(t *testing.T, p *Preset, limit int) int {
	t.Helper()
	e := &life.Engine{}
	require.NoError(t, e.LoadPreset(p.Matrix, p.Boundary))
	for i := 1; i <= limit; i++ {
		require.NoError(t, e.Step())
		if cmp.Equal(p.Matrix, e.Snapshot()) {
			return i
		}
	}
	return 0
}

func TestOscillatorPeriods(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	pulsar, err := c.Get("pulsar")
	require.NoError(t, err)
	require.Equal(t, 3, period(t, pulsar, 30))

	penta, err := c.Get("penta")
	require.NoError(t, err)
	require.Equal(t, 15, period(t, penta, 30))
}

func TestGliderGunEmitsGliders(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	gun, err := c.Get("gosper")
	require.NoError(t, err)

	e := &life.Engine{}
	require.NoError(t, e.LoadPreset(gun.Matrix, gun.Boundary))
	start := e.Population()
	require.Equal(t, 36, start)
	for i := 0; i < 120; i++ {
		require.NoError(t, e.Step())
	}
	require.Greater(t, e.Population(), start)
}

func TestInlineGliderIsCentered(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	p, err := c.Get("glider")
	require.NoError(t, err)

	require.Equal(t, uint8(1), p.Matrix[8][9])
	require.Equal(t, uint8(1), p.Matrix[9][10])
	require.Equal(t, uint8(1), p.Matrix[10][8])
	require.Equal(t, uint8(1), p.Matrix[10][9])
	require.Equal(t, uint8(1), p.Matrix[10][10])
}

func TestLoadFSRejectsBadCatalogs(t *testing.T) {
	cases := map[string]string{
		"both sources": `preset "x" {
  base_interval_ms = 10
  file = "x.csv"
  cells = [[1]]
}`,
		"no source": `preset "x" {
  base_interval_ms = 10
}`,
		"bad boundary": `preset "x" {
  boundary = "spherical"
  base_interval_ms = 10
  cells = [[1]]
}`,
		"jagged cells": `preset "x" {
  base_interval_ms = 10
  cells = [[1, 0], [1]]
}`,
		"cell value": `preset "x" {
  base_interval_ms = 10
  cells = [[1, 3]]
}`,
		"duplicate name": `preset "x" {
  base_interval_ms = 10
  cells = [[1]]
}
preset "y" {
  aliases = ["X"]
  base_interval_ms = 10
  cells = [[1]]
}`,
		"missing interval": `preset "x" {
  cells = [[1]]
}`,
		"syntax": `preset "x" {`,
	}
	for name, src := range cases {
		fsys := fstest.MapFS{
			"c/catalog.hcl": {Data: []byte(src)},
			"c/x.csv":       {Data: []byte("1,0\n0,1\n")},
		}
		_, err := LoadFS(fsys, "c/catalog.hcl")
		require.Error(t, err, name)
	}
}

func TestLoadFSReadsRelativeFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"c/catalog.hcl": {Data: []byte(`preset "diag" {
  boundary = "bounded"
  base_interval_ms = 250
  file = "diag.csv"
}`)},
		"c/diag.csv": {Data: []byte("1,0,0\n0,1,0\n")},
	}
	c, err := LoadFS(fsys, "c/catalog.hcl")
	require.NoError(t, err)
	p, err := c.Get("diag")
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{1, 0, 0}, {0, 1, 0}}, p.Matrix)
	require.Equal(t, life.Bounded, p.Boundary)
	require.Zero(t, p.CellSize)
}

func TestParseMatrix(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader("# blinker\n0, 1, 0\n\n0,1,0\n0,1,0\n"))
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}}, m)

	for name, src := range map[string]string{
		"empty":  "",
		"jagged": "0,1,0\n1,1\n",
		"value":  "0,2\n1,1\n",
		"float":  "0.5,1\n",
	} {
		_, err := ParseMatrix(strings.NewReader(src))
		require.ErrorIs(t, err, life.ErrMalformedPreset, name)
	}
}

func TestFormatMatrixRoundTrip(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	p, err := c.Get("pulsar")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatMatrix(&buf, p.Matrix))
	m, err := ParseMatrix(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Matrix, m)
}

func TestCenter(t *testing.T) {
	out, err := Center([][]uint8{{1, 1}}, 3, 4)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}}, out)

	_, err = Center([][]uint8{{1, 1, 1}}, 3, 2)
	require.ErrorIs(t, err, life.ErrInvalidDimensions)
}
