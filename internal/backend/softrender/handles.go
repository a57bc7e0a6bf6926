package softrender

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

type framebuffer struct {
	dc *gg.Context
}

func (f *framebuffer) Width() int  { return f.dc.Width() }
func (f *framebuffer) Height() int { return f.dc.Height() }

// texture is either owned pixels or a live view of a framebuffer.
type texture struct {
	img      image.Image
	fb       *framebuffer
	w, h     int
	released bool
}

func newTexture(img image.Image) *texture {
	b := img.Bounds()
	return &texture{img: img, w: b.Dx(), h: b.Dy()}
}

func viewTexture(fb *framebuffer) *texture {
	return &texture{fb: fb, w: fb.Width(), h: fb.Height()}
}

func (t *texture) Width() int  { return t.w }
func (t *texture) Height() int { return t.h }

func (t *texture) pixels() image.Image {
	if t.fb != nil {
		return t.fb.dc.Image()
	}
	return t.img
}

type font struct {
	source *text.FontSource
	face   text.Face
	size   float64
}

func (f *font) Size() float64 { return f.size }
