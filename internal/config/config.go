// Package config loads the game's TOML settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Backend names.
const (
	BackendEbiten = "ebiten"
	BackendSoft   = "soft"
)

type Config struct {
	Window   Window   `toml:"window"`
	Renderer Renderer `toml:"renderer"`
	Assets   Assets   `toml:"assets"`
	LogLevel string   `toml:"log_level"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Scale  int    `toml:"scale"`
}

type Renderer struct {
	Backend     string  `toml:"backend"`
	ClearColour string  `toml:"clear_colour"`
	LineWidth   float64 `toml:"line_width"`
	// MaxWidth and MaxHeight cap the window of the soft backend.
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

type Assets struct {
	Dir      string  `toml:"dir"`
	Font     string  `toml:"font"`
	FontSize float64 `toml:"font_size"`
	// PandaFrames are sprite images under Dir; PandaDelays holds the ticks
	// each one is shown. With no frames the panda is drawn with vectors.
	PandaFrames []string `toml:"panda_frames"`
	PandaDelays []int    `toml:"panda_delays"`
}

// Default returns the built-in settings: a 320x240 window at 3x scale.
func Default() Config {
	return Config{
		Window: Window{
			Width:  320,
			Height: 240,
			Title:  "Numpty Physics",
			Scale:  3,
		},
		Renderer: Renderer{
			Backend:     BackendEbiten,
			ClearColour: "#2b2b2b",
			LineWidth:   2,
		},
		Assets: Assets{
			Dir:      "assets",
			FontSize: 12,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %q: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale %d must be positive", c.Window.Scale)
	}
	switch c.Renderer.Backend {
	case BackendEbiten, BackendSoft:
	default:
		return fmt.Errorf("unknown renderer backend %q", c.Renderer.Backend)
	}
	if n := len(c.Assets.PandaDelays); n > 0 && n != len(c.Assets.PandaFrames) {
		return fmt.Errorf("%d panda delays for %d frames", n, len(c.Assets.PandaFrames))
	}
	for _, d := range c.Assets.PandaDelays {
		if d <= 0 {
			return fmt.Errorf("panda delay %d must be positive", d)
		}
	}
	if _, err := c.ClearColour(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ClearColour parses Renderer.ClearColour, written as #rrggbb.
func (c Config) ClearColour() (color.NRGBA, error) {
	s := strings.TrimPrefix(c.Renderer.ClearColour, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("clear colour %q: want #rrggbb", c.Renderer.ClearColour)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("clear colour %q: %w", c.Renderer.ClearColour, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
