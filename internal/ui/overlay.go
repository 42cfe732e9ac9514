//go:build ebiten

package ui

import (
	"image/color"

	"conway-life/internal/core"
	"conway-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

type modeProvider interface {
	Mode() life.BoundaryMode
}

// Overlay draws cell outlines and, for bounded grids, a frame marking the
// hard edges of the world.
type Overlay struct {
	sim       core.Sim
	showGrid  bool
	pixel     *ebiten.Image
	lineColor color.RGBA
	edgeColor color.RGBA
}

// NewOverlay constructs a new overlay instance with grid lines enabled.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{
		sim:       sim,
		showGrid:  true,
		lineColor: color.RGBA{A: 255},
		edgeColor: color.RGBA{R: 220, G: 40, B: 40, A: 255},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// ToggleGrid flips grid line rendering.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	width, height := size.W*scale, size.H*scale

	// Lines thinner than the cells they separate only make sense from 4px up.
	if o.showGrid && scale >= 4 {
		for x := 0; x <= size.W; x++ {
			o.fillRect(screen, x*scale, 0, 1, height, o.lineColor)
		}
		for y := 0; y <= size.H; y++ {
			o.fillRect(screen, 0, y*scale, width, 1, o.lineColor)
		}
	}

	if provider, ok := o.sim.(modeProvider); ok && provider.Mode() == life.Bounded {
		const edge = 2
		o.fillRect(screen, 0, 0, width, edge, o.edgeColor)
		o.fillRect(screen, 0, height-edge, width, edge, o.edgeColor)
		o.fillRect(screen, 0, 0, edge, height, o.edgeColor)
		o.fillRect(screen, width-edge, 0, edge, height, o.edgeColor)
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
