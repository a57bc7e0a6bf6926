package canvas

import (
	"errors"
	"fmt"
)

// RenderTarget is an offscreen framebuffer. Drawing on it is only valid
// between Begin and End.
type RenderTarget struct {
	surface
	fb     Framebuffer
	active bool
	err    error
	closed bool
}

var _ Canvas = (*RenderTarget)(nil)

// NewRenderTarget allocates a w by h framebuffer.
func NewRenderTarget(r Renderer, w, h int) (*RenderTarget, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: render target %dx%d: %w", w, h, ErrInvalidSize)
	}
	fb, err := r.Framebuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("canvas: render target %dx%d: %w", w, h, err)
	}
	Logger().Debug("canvas: render target allocated", "width", w, "height", h)
	return &RenderTarget{
		surface: surface{r: r, width: w, height: h},
		fb:      fb,
	}, nil
}

// Begin binds the framebuffer as the draw destination and clears it.
func (t *RenderTarget) Begin() error {
	if t.closed {
		return fmt.Errorf("canvas: begin: %w: target closed", ErrInvalidState)
	}
	if t.active {
		return fmt.Errorf("canvas: begin: %w: already active", ErrInvalidState)
	}
	t.active = true
	t.r.Begin(t.fb)
	t.surface.Clear()
	return nil
}

// End flushes pending draws and unbinds the framebuffer.
func (t *RenderTarget) End() error {
	if !t.active {
		return fmt.Errorf("canvas: end: %w: not active", ErrInvalidState)
	}
	t.r.Flush()
	t.r.End(t.fb)
	t.active = false
	return nil
}

// Render calls fn between Begin and End. End runs on every exit path,
// including a panic in fn.
func (t *RenderTarget) Render(fn func(c Canvas) error) (err error) {
	if err := t.Begin(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, t.End())
	}()
	return fn(t)
}

// Active reports whether the target is between Begin and End.
func (t *RenderTarget) Active() bool {
	return t.active
}

// Contents returns the framebuffer pixels as a texture. The handle stays
// owned by the target.
func (t *RenderTarget) Contents() Texture {
	return t.r.Retrieve(t.fb)
}

// Err returns the first draw call rejected because the target was idle or
// another framebuffer was bound on top of it.
func (t *RenderTarget) Err() error {
	return t.err
}

// Close ends an open session and releases the framebuffer.
func (t *RenderTarget) Close() error {
	if t.closed {
		return nil
	}
	var err error
	if t.active {
		err = t.End()
	}
	t.closed = true
	t.r.ReleaseFramebuffer(t.fb)
	return err
}

// bound reports whether draws would reach this target's framebuffer. A
// rejected draw is logged and kept as the sticky error.
func (t *RenderTarget) bound(op string) bool {
	reason := "target not active"
	if t.active {
		if t.r.Bound() == t.fb {
			return true
		}
		reason = "another framebuffer is bound"
	}
	Logger().Warn("canvas: draw on unbound render target", "op", op, "reason", reason)
	if t.err == nil {
		t.err = fmt.Errorf("canvas: %s: %w: %s", op, ErrInvalidState, reason)
	}
	return false
}

func (t *RenderTarget) Clear() {
	if t.bound("clear") {
		t.surface.Clear()
	}
}

func (t *RenderTarget) DrawImage(img *Image, x, y int) {
	if t.bound("draw image") {
		t.surface.DrawImage(img, x, y)
	}
}

func (t *RenderTarget) DrawBlur(img *Image, src, dst Rect, rx, ry float32) {
	if t.bound("draw blur") {
		t.surface.DrawBlur(img, src, dst, rx, ry)
	}
}

func (t *RenderTarget) DrawPath(p Path, colour, alpha int) {
	if t.bound("draw path") {
		t.surface.DrawPath(p, colour, alpha)
	}
}

func (t *RenderTarget) DrawRect(r Rect, colour int, fill bool, alpha int) {
	if t.bound("draw rect") {
		t.surface.DrawRect(r, colour, fill, alpha)
	}
}

func (t *RenderTarget) DrawRectXYWH(x, y, w, h, colour int, fill bool, alpha int) {
	if t.bound("draw rect") {
		t.surface.DrawRectXYWH(x, y, w, h, colour, fill, alpha)
	}
}
