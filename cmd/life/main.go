//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"conway-life/internal/app"
	"conway-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	drv, err := app.NewDriver(cfg, logger)
	if err != nil {
		logger.Error("Failed to start.", "error", err)
		os.Exit(1)
	}

	game := app.New(drv, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("Window open.", "width", w, "height", h, "panel", ui.PanelWidth)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game loop stopped.", "error", err)
		os.Exit(1)
	}
}
