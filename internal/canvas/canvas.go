// Package canvas provides the drawing surfaces of the game: the on-screen
// Window, offscreen RenderTargets and the Images drawn onto them. Every
// surface forwards its drawing calls to the Renderer it was built with.
package canvas

import (
	"fmt"
	"image"
)

// Canvas is a 2D drawing surface with fixed pixel dimensions.
type Canvas interface {
	Width() int
	Height() int

	// Clear fills the surface with the backend clear colour.
	Clear()
	// DrawImage blits the whole image with its top-left corner at (x, y).
	// Clipping is the backend's concern.
	DrawImage(img *Image, x, y int)
	// DrawBlur samples src of img and writes a blurred copy into dst.
	DrawBlur(img *Image, src, dst Rect, rx, ry float32)
	// DrawPath strokes p. alpha is merged into the high byte of colour.
	DrawPath(p Path, colour, alpha int)
	// DrawRect draws r filled, or only its outline when fill is false.
	DrawRect(r Rect, colour int, fill bool, alpha int)
	// DrawRectXYWH is DrawRect for the rectangle (x, y)-(x+w, y+h).
	DrawRectXYWH(x, y, w, h, colour int, fill bool, alpha int)

	// WriteBMP always fails with ErrNotImplemented.
	WriteBMP(filename string) error
}

// surface is the drawing state shared by Window and RenderTarget.
type surface struct {
	r      Renderer
	width  int
	height int
}

func (s *surface) Width() int {
	return s.width
}

func (s *surface) Height() int {
	return s.height
}

func (s *surface) Clear() {
	s.r.Clear()
}

func (s *surface) DrawImage(img *Image, x, y int) {
	s.r.Image(img.Texture(), x, y, img.Width(), img.Height())
}

func (s *surface) DrawBlur(img *Image, src, dst Rect, rx, ry float32) {
	s.r.Blur(img.Texture(), src, dst, rx, ry)
}

func (s *surface) DrawPath(p Path, colour, alpha int) {
	s.r.Path(p, colour|(alpha&0xff)<<24)
}

func (s *surface) DrawRectXYWH(x, y, w, h, colour int, fill bool, alpha int) {
	s.DrawRect(Rect{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}, colour, fill, alpha)
}

func (s *surface) DrawRect(r Rect, colour int, fill bool, alpha int) {
	s.r.Rectangle(r, colour|alpha<<24, fill)
}

// WriteBMP used to dump the surface as a 24-bit bottom-up bitmap. Reading
// pixels back was never wired up, so it reports ErrNotImplemented for every
// filename.
func (s *surface) WriteBMP(filename string) error {
	return fmt.Errorf("canvas: write bmp %q: %w", filename, ErrNotImplemented)
}
