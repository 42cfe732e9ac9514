//go:build !ebiten

package ui

import "conway-life/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim) *Overlay { return &Overlay{} }

// ToggleGrid is a no-op in headless builds.
func (o *Overlay) ToggleGrid() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int) {}
