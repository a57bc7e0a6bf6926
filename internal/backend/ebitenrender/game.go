package ebitenrender

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"numpty/internal/canvas"
)

// Game hosts a frame function in ebiten's loop. frame runs once per tick
// and is expected to draw and call Window.Update.
type Game struct {
	r     *Renderer
	frame func() error
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(r *Renderer, frame func() error) *Game {
	return &Game{r: r, frame: frame}
}

// Update: logic and drawing (60 TPS)
func (g *Game) Update() error {
	return g.frame()
}

// Draw: present the last swapped frame
func (g *Game) Draw(screen *ebiten.Image) {
	if g.r.front != nil {
		screen.DrawImage(g.r.front, nil)
	}
}

// Layout: always the logical window size, ebiten scales it up
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.r.Size()
}

// Run blocks until frame returns an error or the window is closed.
// ebiten.Termination from frame ends the loop without an error.
func Run(r *Renderer, frame func() error) error {
	if r.back == nil {
		return fmt.Errorf("ebitenrender: run: %w: no window opened", canvas.ErrInvalidState)
	}
	if err := ebiten.RunGame(NewGame(r, frame)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
