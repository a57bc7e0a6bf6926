package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type framebuffer struct {
	img *ebiten.Image
}

func (f *framebuffer) Width() int  { return f.img.Bounds().Dx() }
func (f *framebuffer) Height() int { return f.img.Bounds().Dy() }

// texture wraps a GPU image. Views share their framebuffer's image.
type texture struct {
	img      *ebiten.Image
	view     bool
	released bool
}

func (t *texture) Width() int  { return t.img.Bounds().Dx() }
func (t *texture) Height() int { return t.img.Bounds().Dy() }

type font struct {
	face *text.GoTextFace
}

func (f *font) Size() float64 { return f.face.Size }
