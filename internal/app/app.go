//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"conway-life/internal/driver"
	"conway-life/internal/render"
	"conway-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a driver to the ebiten.Game interface. ebiten calls Update at a
// fixed TPS; the driver decides whether that tick advances a generation.
type Game struct {
	drv     *driver.Driver
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *slog.Logger
}

var presetKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// New constructs a Game for the provided driver.
func New(drv *driver.Driver, logger *slog.Logger) *Game {
	size := drv.Size()
	return &Game{
		drv:     drv,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(drv),
		hud:     ui.NewHUD(drv, ui.PanelWidth),
		logger:  logger,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.drv.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.drv.StepOnce(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.drv.Reset(time.Now().UnixNano()); err != nil {
			g.logger.Warn("Reset failed.", "error", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.drv.SetSpeed(g.drv.Speed() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.drv.SetSpeed(g.drv.Speed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		alive, _ := g.drv.Colors()
		g.drv.SetAliveColor(driver.NextColor(alive))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		_, dead := g.drv.Colors()
		g.drv.SetDeadColor(driver.NextColor(dead))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ToggleGrid()
	}
	if catalog := g.drv.Catalog(); catalog != nil {
		names := catalog.Names()
		for i, key := range presetKeys {
			if i < len(names) && inpututil.IsKeyJustPressed(key) {
				if err := g.drv.SelectPreset(names[i]); err != nil {
					g.logger.Warn("Preset failed to load.", "preset", names[i], "error", err)
				}
			}
		}
	}

	g.hud.Update(g.gridWidth())

	if _, err := g.drv.Tick(time.Now()); err != nil {
		return err
	}
	return nil
}

// Draw renders the current grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.drv.Size()
	scale := g.drv.CellSize()
	alive, dead := g.drv.Colors()
	g.painter.Blit(screen, size.W, size.H, g.drv.Cells(), alive, dead, scale)
	g.overlay.Draw(screen, scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.gridWidth(), h)
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.drv.Size()
	return g.gridWidth() + ui.PanelWidth, max(size.H*g.drv.CellSize(), minHeight)
}

func (g *Game) gridWidth() int { return g.drv.Size().W * g.drv.CellSize() }

const minHeight = 480
