// Command linedemo paints the classic three-line scene and logs the
// lifecycle of every line it creates.
//
// Settings come from GGLINE_* environment variables, optionally read from a
// .env file, and can be overridden with flags.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggline"
	"github.com/gogpu/ggline/integration/ebitenview"
	"github.com/gogpu/ggline/internal/config"
	"github.com/gogpu/ggline/view"
)

func main() {
	var (
		width   = flag.Int("width", 0, "canvas width (default from config)")
		height  = flag.Int("height", 0, "canvas height (default from config)")
		output  = flag.String("output", "", "output file (default from config)")
		format  = flag.String("format", "", "output format: png or pdf")
		live    = flag.Bool("live", false, "show the scene in a window instead of writing a file")
		envFile = flag.String("env", "", "path to a .env file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "live":
			cfg.Live = *live
		case "v":
			if *verbose {
				cfg.LogLevel = slog.LevelDebug
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	ggline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	if err := run(cfg); err != nil {
		log.Fatalf("linedemo: %v", err)
	}
}

func run(cfg config.Config) error {
	v, comparisons := view.DemoScene()
	defer v.Close()

	for _, c := range comparisons {
		ggline.Logger().Info("comparison", "expr", c.Expr, "result", c.Result)
	}

	if cfg.Live {
		return ebitenview.Run(v, cfg.Width, cfg.Height, "Lines")
	}

	var err error
	switch cfg.Format {
	case config.FormatPDF:
		err = v.SavePDF(cfg.Output, cfg.Width, cfg.Height)
	default:
		err = v.SavePNG(cfg.Output, cfg.Width, cfg.Height)
	}
	if err != nil {
		return err
	}
	log.Printf("Scene saved to %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
	return nil
}
