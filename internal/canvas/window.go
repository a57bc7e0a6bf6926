package canvas

import (
	"errors"
	"fmt"
)

// Window is the on-screen surface. It owns a persistent offscreen buffer
// and an Image wrapping that buffer's contents.
type Window struct {
	surface
	title     string
	target    *RenderTarget
	offscreen *Image
	closed    bool
}

var _ Canvas = (*Window)(nil)

// NewWindow asks the platform for a w by h window. The platform may grant
// a different size; Width and Height report the granted one. The offscreen
// buffer keeps the requested size.
func NewWindow(r Renderer, w, h int, title string) (*Window, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: window %dx%d: %w", w, h, ErrInvalidSize)
	}
	if err := r.OpenWindow(w, h, title); err != nil {
		return nil, fmt.Errorf("canvas: open window: %w", err)
	}
	gw, gh := r.Size()
	if gw != w || gh != h {
		Logger().Info("canvas: window size differs from request",
			"requested_width", w, "requested_height", h, "width", gw, "height", gh)
	}

	// Renderer has no call to close the platform window, so a failure here
	// leaves it open until the process exits.
	target, err := NewRenderTarget(r, w, h)
	if err != nil {
		Logger().Error("canvas: window opened without offscreen buffer", "title", title, "err", err)
		return nil, err
	}
	return &Window{
		surface:   surface{r: r, width: gw, height: gh},
		title:     title,
		target:    target,
		offscreen: NewImage(r, target.Contents()),
	}, nil
}

func (w *Window) Title() string {
	return w.title
}

// Update flushes pending draws and presents the frame.
func (w *Window) Update() {
	w.r.Flush()
	w.r.Swap()
}

// BeginOffscreen directs subsequent draws, including those issued on the
// Window, to the offscreen buffer.
func (w *Window) BeginOffscreen() error {
	return w.target.Begin()
}

func (w *Window) EndOffscreen() error {
	return w.target.End()
}

// RenderOffscreen draws fn into the offscreen buffer, ending the session on
// every exit path.
func (w *Window) RenderOffscreen(fn func(c Canvas) error) error {
	return w.target.Render(fn)
}

// Offscreen returns the image wrapping the offscreen buffer. It is fetched
// once at construction and not refreshed; backends hand out live views of
// the framebuffer so later offscreen draws show through it.
func (w *Window) Offscreen() *Image {
	return w.offscreen
}

// Close releases the offscreen image, then the offscreen target.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return errors.Join(w.offscreen.Close(), w.target.Close())
}
