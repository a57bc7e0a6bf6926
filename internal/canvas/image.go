package canvas

import "fmt"

// Image owns a backend texture. Its dimensions are taken from the texture
// when the Image is created and never change.
type Image struct {
	r      Renderer
	tex    Texture
	width  int
	height int
	closed bool
}

// NewImage wraps tex. The Image takes ownership of the handle.
func NewImage(r Renderer, tex Texture) *Image {
	return &Image{
		r:      r,
		tex:    tex,
		width:  tex.Width(),
		height: tex.Height(),
	}
}

// LoadImage loads an image file through the renderer.
func LoadImage(r Renderer, path string) (*Image, error) {
	tex, err := r.Load(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: load image %q: %w: %w", path, ErrResourceLoad, err)
	}
	return NewImage(r, tex), nil
}

// NewTextImage renders s with font in the 24-bit colour rgb.
func NewTextImage(r Renderer, font Font, s string, rgb int) (*Image, error) {
	if font == nil {
		return nil, fmt.Errorf("canvas: render text %q: %w: nil font", s, ErrResourceLoad)
	}
	tex, err := r.Text(font, s, rgb)
	if err != nil {
		return nil, fmt.Errorf("canvas: render text %q: %w: %w", s, ErrResourceLoad, err)
	}
	return NewImage(r, tex), nil
}

func (i *Image) Width() int {
	return i.width
}

func (i *Image) Height() int {
	return i.height
}

func (i *Image) Texture() Texture {
	return i.tex
}

// Close releases the texture. Further calls are no-ops.
func (i *Image) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	i.r.ReleaseTexture(i.tex)
	return nil
}
