package entity

import (
	"math"

	"numpty/internal/canvas"
)

var (
	colPandaWhite = canvas.MakeColour(0xff, 0xff, 0xff)
	colPandaBlack = canvas.MakeColour(0x10, 0x10, 0x10)
	colAccent     = canvas.MakeColour(0xff, 0x6b, 0x6b)
)

type Panda struct {
	X, Y int

	// Sprite animation; when empty the panda is drawn with vector shapes
	frames       []*canvas.Image
	delays       []int
	currentFrame int
	tickCounter  int // Accumulates ticks
}

// NewPanda builds a panda animated by frames, each shown for the matching
// number of ticks in delays. Frames and delays may both be nil.
func NewPanda(x, y int, frames []*canvas.Image, delays []int) *Panda {
	return &Panda{
		X:      x,
		Y:      y,
		frames: frames,
		delays: delays,
	}
}

func (p *Panda) Frame() int {
	return p.currentFrame
}

func (p *Panda) Update() {
	if len(p.frames) == 0 {
		return
	}

	p.tickCounter++

	// Check if we passed the delay for the CURRENT frame
	targetDelay := 1
	if p.currentFrame < len(p.delays) {
		targetDelay = p.delays[p.currentFrame]
	}

	if p.tickCounter >= targetDelay {
		p.tickCounter = 0
		p.currentFrame++

		// Loop back to start
		if p.currentFrame >= len(p.frames) {
			p.currentFrame = 0
		}
	}
}

func (p *Panda) Draw(c canvas.Canvas) {
	if len(p.frames) > 0 {
		c.DrawImage(p.frames[p.currentFrame], p.X, p.Y)
		return
	}
	p.drawVector(c)
}

func (p *Panda) drawVector(c canvas.Canvas) {
	x, y := float32(p.X), float32(p.Y)

	// Ears
	c.DrawPath(circle(x-12, y-15, 8), colPandaBlack, 0xff)
	c.DrawPath(circle(x+12, y-15, 8), colPandaBlack, 0xff)

	// Head
	c.DrawPath(circle(x, y, 20), colPandaWhite, 0xff)

	// Eyes and nose
	c.DrawPath(circle(x-8, y-2, 6), colPandaBlack, 0xff)
	c.DrawPath(circle(x+8, y-2, 6), colPandaBlack, 0xff)
	c.DrawPath(circle(x, y+5, 3), colAccent, 0xff)

	// Body
	c.DrawRectXYWH(p.X-15, p.Y+15, 30, 25, colPandaWhite, true, 0xff)
	c.DrawRectXYWH(p.X-15, p.Y+15, 30, 25, colPandaBlack, false, 0xff)

	// Feet
	c.DrawPath(circle(x-12, y+40, 7), colPandaBlack, 0xff)
	c.DrawPath(circle(x+12, y+40, 7), colPandaBlack, 0xff)
}

// circle returns a closed polyline approximating a circle.
func circle(cx, cy, r float32) canvas.Path {
	const segments = 16
	p := make(canvas.Path, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		p = append(p, canvas.Point{
			X: cx + r*float32(math.Cos(a)),
			Y: cy + r*float32(math.Sin(a)),
		})
	}
	return p
}
