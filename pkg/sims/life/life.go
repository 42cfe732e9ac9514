// Package life implements Conway's Game of Life on a finite grid that is
// either toroidal or edge-terminated.
package life

import (
	"errors"
	"fmt"

	"conway-life/internal/core"
	pcore "conway-life/pkg/core"
)

var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrMalformedPreset is returned when a preset matrix is empty, jagged or
	// holds values other than 0 and 1.
	ErrMalformedPreset = errors.New("life: malformed preset")
)

// Coord addresses a single cell.
type Coord struct {
	Row, Col int
}

var offsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Engine owns the grid and advances it one generation at a time. It holds no
// run state; callers decide when to call Step and must not call it
// concurrently or mutate the grid between steps.
type Engine struct {
	cur, nxt   *core.Grid
	mode       BoundaryMode
	generation int
	scratch    []Coord
}

// New returns an engine with a random wrapped grid of the given size.
func New(rows, cols int, seed int64) (*Engine, error) {
	e := &Engine{}
	if err := e.Reset(rows, cols, seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Rows returns the number of grid rows.
func (e *Engine) Rows() int {
	if e.cur == nil {
		return 0
	}
	return e.cur.Rows
}

// Cols returns the number of grid columns.
func (e *Engine) Cols() int {
	if e.cur == nil {
		return 0
	}
	return e.cur.Cols
}

// Size returns the grid dimensions with W as columns and H as rows.
func (e *Engine) Size() core.Size { return core.Size{W: e.Cols(), H: e.Rows()} }

// Mode returns the active boundary mode.
func (e *Engine) Mode() BoundaryMode { return e.mode }

// Generation returns the number of steps since the last reset or preset load.
func (e *Engine) Generation() int { return e.generation }

// Cells exposes the current row-major grid. The slice is replaced by the next
// Step and must be treated as read-only.
func (e *Engine) Cells() []uint8 {
	if e.cur == nil {
		return nil
	}
	return e.cur.Cells()
}

// Alive reports whether (row, col) is alive. Out-of-range cells are dead.
func (e *Engine) Alive(row, col int) bool {
	if e.cur == nil || !e.cur.Contains(row, col) {
		return false
	}
	return e.cur.At(row, col) == 1
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	n := 0
	for _, v := range e.Cells() {
		n += int(v)
	}
	return n
}

// Snapshot returns a copy of the grid as a rows×cols matrix.
func (e *Engine) Snapshot() [][]uint8 {
	rows, cols := e.Rows(), e.Cols()
	out := make([][]uint8, rows)
	for r := range out {
		out[r] = append([]uint8(nil), e.cur.Cells()[r*cols:(r+1)*cols]...)
	}
	return out
}

// NeighborsOf returns the distinct neighbours of (row, col) under the current
// boundary mode. The cell itself is never included. On wrapped grids with
// fewer than three rows or columns several offsets land on the same cell;
// those collapse into a single entry. Out-of-range input returns nil.
func (e *Engine) NeighborsOf(row, col int) []Coord {
	if e.cur == nil || !e.cur.Contains(row, col) {
		return nil
	}
	return e.appendNeighbors(make([]Coord, 0, len(offsets)), row, col)
}

func (e *Engine) appendNeighbors(dst []Coord, row, col int) []Coord {
	g := e.cur
	degenerate := g.Rows < 3 || g.Cols < 3
	for _, off := range offsets {
		r, c := row+off.Row, col+off.Col
		switch e.mode {
		case Bounded:
			if !g.Contains(r, c) {
				continue
			}
		default:
			r, c = g.Wrap(r, c)
			if degenerate && (r == row && c == col || containsCoord(dst, Coord{r, c})) {
				continue
			}
		}
		dst = append(dst, Coord{r, c})
	}
	return dst
}

func containsCoord(list []Coord, c Coord) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

// Step advances the grid by one generation. Every cell of the new grid is
// derived from the old grid only: three live neighbours make a cell alive,
// two keep its current state, anything else kills it.
func (e *Engine) Step() error {
	if e.cur == nil || e.cur.Empty() {
		return fmt.Errorf("step: %w", ErrInvalidDimensions)
	}
	cur, nxt := e.cur, e.nxt
	for r := 0; r < cur.Rows; r++ {
		for c := 0; c < cur.Cols; c++ {
			e.scratch = e.appendNeighbors(e.scratch[:0], r, c)
			live := 0
			for _, n := range e.scratch {
				live += int(cur.At(n.Row, n.Col))
			}
			switch live {
			case 3:
				nxt.Set(r, c, 1)
			case 2:
				nxt.Set(r, c, cur.At(r, c))
			default:
				nxt.Set(r, c, 0)
			}
		}
	}
	e.cur, e.nxt = nxt, cur
	e.generation++
	return nil
}

// Reset replaces the grid with an independent 50/50 random fill seeded by seed
// and switches to wrapped mode. On error the engine is left untouched.
func (e *Engine) Reset(rows, cols int, seed int64) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("reset %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	cur := core.NewGrid(rows, cols)
	pcore.NewRNG(seed).FillBinary(cur.Cells())
	e.replace(cur, Wrapped)
	return nil
}

// LoadPreset replaces the grid with matrix and sets the boundary mode. The
// matrix must be non-empty, rectangular and contain only 0 and 1. On error
// the engine is left untouched.
func (e *Engine) LoadPreset(matrix [][]uint8, mode BoundaryMode) error {
	if err := ValidateMatrix(matrix); err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", ErrMalformedPreset, mode)
	}
	rows, cols := len(matrix), len(matrix[0])
	cur := core.NewGrid(rows, cols)
	for r, row := range matrix {
		copy(cur.Cells()[r*cols:], row)
	}
	e.replace(cur, mode)
	return nil
}

func (e *Engine) replace(cur *core.Grid, mode BoundaryMode) {
	e.cur = cur
	e.nxt = core.NewGrid(cur.Rows, cur.Cols)
	e.mode = mode
	e.generation = 0
}

// ValidateMatrix checks that matrix is a non-empty rectangular table of 0/1
// values.
func ValidateMatrix(matrix [][]uint8) error {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return fmt.Errorf("%w: empty matrix (%w)", ErrMalformedPreset, ErrInvalidDimensions)
	}
	cols := len(matrix[0])
	for r, row := range matrix {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedPreset, r, len(row), cols)
		}
		for c, v := range row {
			if v > 1 {
				return fmt.Errorf("%w: value %d at (%d,%d)", ErrMalformedPreset, v, r, c)
			}
		}
	}
	return nil
}
