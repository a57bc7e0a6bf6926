// Command numpty runs the drawing demo, either in a desktop window or
// headless with the output written to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"numpty/internal/backend/ebitenrender"
	"numpty/internal/backend/softrender"
	"numpty/internal/canvas"
	"numpty/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "numpty.toml", "config file")
		headless   = flag.Bool("headless", false, "render with the software backend")
		frames     = flag.Int("frames", 60, "frames to render when headless")
		output     = flag.String("output", "frame.png", "output file when headless")
		write      = flag.Bool("write-config", false, "write the effective config to -config and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *write {
		if err := writeConfig(*configPath, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *headless {
		cfg.Renderer.Backend = config.BackendSoft
	}

	switch cfg.Renderer.Backend {
	case config.BackendSoft:
		err = runHeadless(cfg, *frames, *output)
	default:
		err = runWindow(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// writeConfig saves cfg, defaults filled in, for editing.
func writeConfig(path string, cfg config.Config) error {
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	log.Printf("Wrote config to %s\n", path)
	return nil
}

func runWindow(cfg config.Config) error {
	clearColour, err := cfg.ClearColour()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	r := ebitenrender.New(
		ebitenrender.WithClearColour(clearColour),
		ebitenrender.WithLineWidth(float32(cfg.Renderer.LineWidth)),
		ebitenrender.WithScale(cfg.Window.Scale),
	)
	game, err := NewGame(r, cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	return ebitenrender.Run(r, game.Frame)
}

func runHeadless(cfg config.Config, frames int, output string) error {
	clearColour, err := cfg.ClearColour()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	r := softrender.New(
		softrender.WithClearColour(clearColour),
		softrender.WithLineWidth(cfg.Renderer.LineWidth),
		softrender.WithMaxSize(cfg.Renderer.MaxWidth, cfg.Renderer.MaxHeight),
	)
	game, err := NewGame(r, cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	for i := 0; i < frames; i++ {
		if err := game.Frame(); err != nil {
			return err
		}
	}
	if err := r.SavePNG(output); err != nil {
		return err
	}
	log.Printf("Rendered %d frames to %s (%dx%d)\n", r.Frames(), output, game.win.Width(), game.win.Height())
	return nil
}
