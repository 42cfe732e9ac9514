package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the read side of a simulation consumed by renderers and overlays.
// Cells are row-major with Size().W columns.
type Sim interface {
	Name() string
	Size() Size
	Cells() []uint8
}
