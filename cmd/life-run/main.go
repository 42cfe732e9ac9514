// Command life-run advances a grid headlessly and prints it as text, CSV or
// PNG. It uses the same driver as the GUI, fed with simulated time.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"conway-life/internal/app"
	"conway-life/internal/driver"
	"conway-life/internal/presets"
	"conway-life/internal/render"
	"conway-life/pkg/sims/life"
)

type options struct {
	generations int
	printEvery  int
	file        string
	boundary    string
	csvOut      string
	pngOut      string
	list        bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var opts options
	flag.IntVar(&opts.generations, "generations", 30, "generations to advance")
	flag.IntVar(&opts.printEvery, "print-every", 0, "print the grid every n generations (0 prints only the final grid)")
	flag.StringVar(&opts.file, "file", "", "load the starting grid from a 0/1 CSV file instead of a preset")
	flag.StringVar(&opts.boundary, "boundary", "wrapped", "boundary mode for -file (wrapped, bounded)")
	flag.StringVar(&opts.csvOut, "csv", "", "write the final grid as CSV to this path")
	flag.StringVar(&opts.pngOut, "png", "", "write the final grid as PNG to this path")
	flag.BoolVar(&opts.list, "list", false, "list presets and exit")
	flag.Parse()

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err := run(cfg, opts, os.Stdout, logger); err != nil {
		logger.Error("Run failed.", "error", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, opts options, stdout io.Writer, logger *slog.Logger) error {
	drv, err := app.NewDriver(cfg, logger)
	if err != nil {
		return err
	}
	if opts.list {
		for _, p := range drv.Catalog().Presets() {
			fmt.Fprintf(stdout, "%-20s %dx%d %-8s %v\n", p.Name, p.Rows(), p.Cols(), p.Boundary, p.BaseInterval)
		}
		return nil
	}
	if opts.file != "" {
		if err := loadFile(drv, opts.file, opts.boundary); err != nil {
			return err
		}
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	engine := drv.Engine()
	drv.Start()
	for engine.Generation() < opts.generations {
		if opts.printEvery > 0 && engine.Generation()%opts.printEvery == 0 {
			printGrid(out, engine)
		}
		if _, err := drv.Advance(drv.Interval()); err != nil {
			return err
		}
	}
	drv.Pause()
	printGrid(out, engine)
	logger.Info("Run complete.", "generations", engine.Generation(), "population", engine.Population(), "boundary", engine.Mode())

	if opts.csvOut != "" {
		if err := writeFile(opts.csvOut, func(w io.Writer) error {
			return presets.FormatMatrix(w, engine.Snapshot())
		}); err != nil {
			return err
		}
	}
	if opts.pngOut != "" {
		alive, dead := drv.Colors()
		img := render.Image(engine.Cells(), engine.Cols(), engine.Rows(), drv.CellSize(), alive, dead, color.Black)
		if err := writeFile(opts.pngOut, func(w io.Writer) error { return png.Encode(w, img) }); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(drv *driver.Driver, path, boundary string) error {
	mode, err := life.ParseBoundaryMode(boundary)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	matrix, err := presets.ParseMatrix(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return drv.LoadPreset(&presets.Preset{
		Name:         path,
		Boundary:     mode,
		BaseInterval: driver.DefaultBaseInterval,
		Matrix:       matrix,
	})
}

func printGrid(w io.Writer, e *life.Engine) {
	fmt.Fprintf(w, "generation %d population %d\n", e.Generation(), e.Population())
	var sb strings.Builder
	for _, row := range e.Snapshot() {
		sb.Reset()
		for _, v := range row {
			if v == 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
