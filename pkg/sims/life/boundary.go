package life

import (
	"fmt"
	"strings"
)

// BoundaryMode selects how the grid edges behave when computing neighbours.
type BoundaryMode uint8

const (
	// Wrapped joins opposite edges so every cell has eight neighbours.
	Wrapped BoundaryMode = iota
	// Bounded treats the edges as walls; edge and corner cells have fewer
	// neighbours and patterns never loop back across the grid.
	Bounded
)

// String returns the lowercase mode name.
func (m BoundaryMode) String() string {
	switch m {
	case Wrapped:
		return "wrapped"
	case Bounded:
		return "bounded"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m BoundaryMode) Valid() bool { return m == Wrapped || m == Bounded }

// ParseBoundaryMode converts "wrapped"/"toroidal" or "bounded" into a mode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrapped", "toroidal", "":
		return Wrapped, nil
	case "bounded":
		return Bounded, nil
	default:
		return Wrapped, fmt.Errorf("unknown boundary mode %q", s)
	}
}
