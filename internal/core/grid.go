package core

// Grid stores a 2D grid of binary cell values in row-major order.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions. Callers validate
// dimensions; non-positive values produce an empty grid.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the value stored at (row, col).
func (g *Grid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v uint8) { g.data[g.Index(row, col)] = v }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.Rows == 0 || g.Cols == 0 }

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
