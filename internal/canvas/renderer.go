package canvas

import "image"

// Rect is a rectangle in surface pixel coordinates. Min is the top-left
// corner and Max the bottom-right.
type Rect = image.Rectangle

// Point is a path vertex.
type Point struct {
	X, Y float32
}

// Path is an open polyline. Backends stroke consecutive vertices.
type Path []Point

// Texture is an opaque backend handle for pixel data.
type Texture interface {
	Width() int
	Height() int
}

// Framebuffer is an opaque backend handle for an offscreen draw destination.
type Framebuffer interface {
	Width() int
	Height() int
}

// Font is an opaque backend handle for a sized font face.
type Font interface {
	Size() float64
}

// Renderer is the drawing backend every surface forwards to.
//
// Draw operations go to the most recently bound framebuffer, or to the
// window back buffer when none is bound. Colours for Path and Rectangle are
// packed 0xAARRGGBB values; Text takes a 24-bit RGB value and is opaque.
type Renderer interface {
	OpenWindow(w, h int, title string) error
	Size() (w, h int)

	Clear()
	Image(tex Texture, x, y, w, h int)
	Blur(tex Texture, src, dst Rect, rx, ry float32)
	Path(p Path, colour int)
	Rectangle(r Rect, colour int, fill bool)

	Flush()
	Swap()

	Framebuffer(w, h int) (Framebuffer, error)
	Begin(fb Framebuffer)
	End(fb Framebuffer)
	// Bound returns the framebuffer draws currently go to, or nil when they
	// go to the window.
	Bound() Framebuffer
	Retrieve(fb Framebuffer) Texture

	Load(path string) (Texture, error)
	Text(font Font, s string, rgb int) (Texture, error)
	LoadFont(path string, size float64) (Font, error)

	ReleaseTexture(tex Texture)
	ReleaseFramebuffer(fb Framebuffer)
}
