package main

import (
	"errors"
	"fmt"
	"image"
	"math"

	"numpty/internal/assets"
	"numpty/internal/canvas"
	"numpty/internal/config"
	"numpty/internal/entity"
)

// --- Colors ---
var (
	colSky    = canvas.MakeColour(0x4e, 0xcd, 0xc4)
	colGround = canvas.MakeColour(0x6b, 0x8c, 0x42)
	colDesk   = canvas.MakeColour(0x8b, 0x5a, 0x2b) // Wood color
	colLabel  = canvas.MakeColour(0xff, 0xff, 0xff)
)

const labelText = "NUMPTY PHYSICS"

// Game holds the scene drawn each frame
type Game struct {
	win    *canvas.Window
	assets *assets.Manager
	panda  *entity.Panda
	label  *canvas.Image

	Tick          int
	backdropDrawn bool
}

// NewGame opens the window on r and prepares the scene. The caller closes
// the returned Game.
func NewGame(r canvas.Renderer, cfg config.Config) (*Game, error) {
	win, err := canvas.NewWindow(r, cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return nil, err
	}
	g := &Game{
		win:    win,
		assets: assets.New(r, cfg.Assets.Dir),
	}

	frames, err := g.loadFrames(cfg.Assets.PandaFrames)
	if err != nil {
		if !errors.Is(err, canvas.ErrResourceLoad) {
			return nil, errors.Join(err, g.Close())
		}
		canvas.Logger().Warn("game: panda sprite unavailable, drawing vectors", "err", err)
		frames = nil
	}
	delays := cfg.Assets.PandaDelays
	if frames == nil {
		delays = nil
	}
	g.panda = entity.NewPanda(win.Width()/2, win.Height()/2, frames, delays)

	if cfg.Assets.Font != "" {
		font, err := g.assets.Font(cfg.Assets.Font, cfg.Assets.FontSize)
		if err == nil {
			g.label, err = canvas.NewTextImage(r, font, labelText, colLabel)
		}
		if err != nil {
			// The label is decoration; play on without it.
			canvas.Logger().Warn("game: no title label", "err", err)
		}
	}
	return g, nil
}

// loadFrames loads the sprite frames through the asset cache, which owns
// the images.
func (g *Game) loadFrames(names []string) ([]*canvas.Image, error) {
	var frames []*canvas.Image
	for _, name := range names {
		img, err := g.assets.Image(name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// Frame draws and presents one frame.
func (g *Game) Frame() error {
	g.Tick++

	// The backdrop never changes, so it is rendered offscreen once
	if !g.backdropDrawn {
		if err := g.win.RenderOffscreen(g.drawBackdrop); err != nil {
			return fmt.Errorf("game: backdrop: %w", err)
		}
		g.backdropDrawn = true
	}

	g.win.Clear()
	g.win.DrawImage(g.win.Offscreen(), 0, 0)

	g.panda.Y = g.win.Height()/2 + int(math.Round(math.Sin(float64(g.Tick)*0.05)*2))
	g.panda.Update()
	g.panda.Draw(g.win)

	if g.label != nil {
		x := (g.win.Width() - g.label.Width()) / 2
		y := 8
		src := image.Rect(0, 0, g.label.Width(), g.label.Height())
		g.win.DrawBlur(g.label, src, src.Add(image.Pt(x+2, y+2)), 2, 2)
		g.win.DrawImage(g.label, x, y)
	}

	g.win.Update()
	return nil
}

func (g *Game) drawBackdrop(c canvas.Canvas) error {
	w, h := c.Width(), c.Height()
	ground := h * 3 / 4

	c.DrawRectXYWH(0, 0, w, ground, colSky, true, 0xff)
	c.DrawRectXYWH(0, ground, w, h-ground, colGround, true, 0xff)

	// Desk with a ramp leaning on it
	c.DrawRectXYWH(w/8, ground-20, w/4, 20, colDesk, true, 0xff)
	c.DrawPath(canvas.Path{
		{X: float32(w / 8), Y: float32(ground - 20)},
		{X: 0, Y: float32(ground)},
	}, colDesk, 0xff)
	return nil
}

func (g *Game) Close() error {
	var labelErr error
	if g.label != nil {
		labelErr = g.label.Close()
	}
	return errors.Join(labelErr, g.assets.Close(), g.win.Close())
}
