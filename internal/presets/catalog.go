// Package presets loads the named starting grids offered to the driver.
package presets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"conway-life/pkg/sims/life"
)

//go:embed data
var embedded embed.FS

// CatalogFile is the catalog path inside the embedded data directory.
const CatalogFile = "data/catalog.hcl"

// ErrUnknownPreset is returned by Get when no preset matches the name.
var ErrUnknownPreset = errors.New("presets: unknown preset")

// Preset is a named starting grid together with the presentation defaults the
// driver applies when it is selected.
type Preset struct {
	Name         string
	Aliases      []string
	Boundary     life.BoundaryMode
	BaseInterval time.Duration
	CellSize     int
	Matrix       [][]uint8
}

// Rows returns the preset grid height.
func (p *Preset) Rows() int { return len(p.Matrix) }

// Cols returns the preset grid width.
func (p *Preset) Cols() int {
	if len(p.Matrix) == 0 {
		return 0
	}
	return len(p.Matrix[0])
}

// Catalog holds presets in declaration order.
type Catalog struct {
	presets []*Preset
	byName  map[string]*Preset
}

type hclCatalog struct {
	Presets []*hclPreset `hcl:"preset,block"`
}

type hclPreset struct {
	Name           string         `hcl:"name,label"`
	Aliases        []string       `hcl:"aliases,optional"`
	Boundary       string         `hcl:"boundary,optional"`
	BaseIntervalMS int            `hcl:"base_interval_ms"`
	CellSize       int            `hcl:"cell_size,optional"`
	File           string         `hcl:"file,optional"`
	Rows           int            `hcl:"rows,optional"`
	Cols           int            `hcl:"cols,optional"`
	Cells          hcl.Expression `hcl:"cells,optional"`
}

// Load decodes the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return LoadFS(embedded, CatalogFile)
}

// LoadFS decodes the HCL catalog at name inside fsys. Pattern files are
// resolved relative to the catalog.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	file, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", name, diags)
	}
	var parsed hclCatalog
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", name, diags)
	}

	c := &Catalog{byName: make(map[string]*Preset)}
	dir := path.Dir(name)
	for _, hp := range parsed.Presets {
		p, err := hp.build(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", hp.Name, err)
		}
		for _, key := range append([]string{p.Name}, p.Aliases...) {
			key = normalize(key)
			if _, dup := c.byName[key]; dup {
				return nil, fmt.Errorf("preset %q: name %q already in use", p.Name, key)
			}
			c.byName[key] = p
		}
		c.presets = append(c.presets, p)
	}
	return c, nil
}

func (hp *hclPreset) build(fsys fs.FS, dir string) (*Preset, error) {
	mode, err := life.ParseBoundaryMode(hp.Boundary)
	if err != nil {
		return nil, err
	}
	if hp.BaseIntervalMS <= 0 {
		return nil, fmt.Errorf("base_interval_ms must be positive, got %d", hp.BaseIntervalMS)
	}
	p := &Preset{
		Name:         hp.Name,
		Aliases:      hp.Aliases,
		Boundary:     mode,
		BaseInterval: time.Duration(hp.BaseIntervalMS) * time.Millisecond,
		CellSize:     hp.CellSize,
	}

	inline, err := hp.inlineCells()
	if err != nil {
		return nil, err
	}
	switch {
	case hp.File != "" && inline != nil:
		return nil, errors.New("file and cells are mutually exclusive")
	case hp.File != "":
		f, err := fsys.Open(path.Join(dir, hp.File))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if p.Matrix, err = ParseMatrix(f); err != nil {
			return nil, fmt.Errorf("%s: %w", hp.File, err)
		}
	case inline != nil:
		if p.Matrix, err = Center(inline, hp.Rows, hp.Cols); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("one of file or cells is required")
	}
	return p, nil
}

// inlineCells evaluates the optional cells attribute. A missing attribute
// yields a nil matrix.
func (hp *hclPreset) inlineCells() ([][]uint8, error) {
	if hp.Cells == nil {
		return nil, nil
	}
	v, diags := hp.Cells.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if v.IsNull() {
		return nil, nil
	}
	v, err := convert.Convert(v, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, fmt.Errorf("%w: cells: %v", life.ErrMalformedPreset, err)
	}
	var raw [][]int
	if err := gocty.FromCtyValue(v, &raw); err != nil {
		return nil, fmt.Errorf("%w: cells: %v", life.ErrMalformedPreset, err)
	}
	matrix := make([][]uint8, len(raw))
	for r, row := range raw {
		matrix[r] = make([]uint8, len(row))
		for c, val := range row {
			if val != 0 && val != 1 {
				return nil, fmt.Errorf("%w: cells[%d][%d] = %d", life.ErrMalformedPreset, r, c, val)
			}
			matrix[r][c] = uint8(val)
		}
	}
	if err := life.ValidateMatrix(matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}

// Center places pattern in the middle of a rows×cols grid. Zero rows or cols
// keep the pattern's own size in that dimension.
func Center(pattern [][]uint8, rows, cols int) ([][]uint8, error) {
	if err := life.ValidateMatrix(pattern); err != nil {
		return nil, err
	}
	ph, pw := len(pattern), len(pattern[0])
	if rows == 0 {
		rows = ph
	}
	if cols == 0 {
		cols = pw
	}
	if rows < ph || cols < pw {
		return nil, fmt.Errorf("%w: %dx%d pattern does not fit %dx%d grid", life.ErrInvalidDimensions, ph, pw, rows, cols)
	}
	r0, c0 := (rows-ph)/2, (cols-pw)/2
	out := make([][]uint8, rows)
	for r := range out {
		out[r] = make([]uint8, cols)
	}
	for r, row := range pattern {
		copy(out[r0+r][c0:], row)
	}
	return out, nil
}

// Names returns the canonical preset names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.presets))
	for i, p := range c.presets {
		names[i] = p.Name
	}
	return names
}

// Presets returns the presets in declaration order.
func (c *Catalog) Presets() []*Preset { return c.presets }

// Get looks a preset up by name or alias, ignoring case and separators.
func (c *Catalog) Get(name string) (*Preset, error) {
	if p, ok := c.byName[normalize(name)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
}
