// Package ebitenrender is the on-screen canvas.Renderer. Frames are drawn
// into a back buffer during the game's Update and the last swapped buffer is
// shown on every Draw.
package ebitenrender

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"numpty/internal/canvas"
)

// blurTaps is the number of samples per axis in Blur.
const blurTaps = 5

type Renderer struct {
	opts  options
	back  *ebiten.Image
	front *ebiten.Image
	stack []*framebuffer
}

var _ canvas.Renderer = (*Renderer)(nil)

func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// OpenWindow sizes and titles the desktop window. The logical size is
// capped by the monitor size.
func (r *Renderer) OpenWindow(w, h int, title string) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("ebitenrender: window %dx%d: %w", w, h, canvas.ErrInvalidSize)
	}
	if mw, mh := ebiten.ScreenSizeInFullscreen(); mw > 0 && mh > 0 {
		w, h = min(w, mw/r.opts.scale), min(h, mh/r.opts.scale)
	}

	ebiten.SetWindowSize(w*r.opts.scale, h*r.opts.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if r.back != nil {
		r.back.Deallocate()
		r.front.Deallocate()
	}
	r.back = ebiten.NewImage(w, h)
	r.front = ebiten.NewImage(w, h)
	canvas.Logger().Debug("ebitenrender: window opened", "width", w, "height", h, "scale", r.opts.scale)
	return nil
}

func (r *Renderer) Size() (int, int) {
	if r.back == nil {
		return 0, 0
	}
	b := r.back.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Renderer) target() *ebiten.Image {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1].img
	}
	if r.back == nil {
		canvas.Logger().Warn("ebitenrender: draw with no window and no bound framebuffer")
	}
	return r.back
}

func (r *Renderer) Clear() {
	if dst := r.target(); dst != nil {
		dst.Fill(r.opts.clearColour)
	}
}

func (r *Renderer) Image(tex canvas.Texture, x, y, w, h int) {
	dst := r.target()
	t := r.texture(tex)
	if dst == nil || t == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if tw, th := t.Width(), t.Height(); tw > 0 && th > 0 && (tw != w || th != h) {
		op.GeoM.Scale(float64(w)/float64(tw), float64(h)/float64(th))
	}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(t.img, op)
}

// Blur averages blurTaps x blurTaps shifted copies of src spread over
// [-rx, rx] x [-ry, ry], then scales the result into dst.
func (r *Renderer) Blur(tex canvas.Texture, src, dst canvas.Rect, rx, ry float32) {
	target := r.target()
	t := r.texture(tex)
	if target == nil || t == nil {
		return
	}
	src = src.Canon().Intersect(t.img.Bounds())
	dst = dst.Canon()
	if src.Empty() || dst.Empty() {
		return
	}

	sub := t.img.SubImage(src).(*ebiten.Image)
	scratch := ebiten.NewImage(src.Dx(), src.Dy())
	defer scratch.Deallocate()

	nx, ny := tapCount(rx), tapCount(ry)
	weight := 1 / float32(nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
			op.GeoM.Translate(float64(tapOffset(i, nx, rx)), float64(tapOffset(j, ny, ry)))
			op.ColorScale.ScaleAlpha(weight)
			scratch.DrawImage(sub, op)
		}
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	target.DrawImage(scratch, op)
}

// tapCount is the number of samples along an axis blurred by radius.
func tapCount(radius float32) int {
	if radius <= 0 {
		return 1
	}
	return blurTaps
}

func tapOffset(i, n int, radius float32) float32 {
	if n == 1 {
		return 0
	}
	return -radius + 2*radius*float32(i)/float32(n-1)
}

// rectXYWH returns the canonical origin and size of rect.
func rectXYWH(rect canvas.Rect) (x, y, w, h float32) {
	rect = rect.Canon()
	return float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy())
}

func (r *Renderer) Path(p canvas.Path, colour int) {
	dst := r.target()
	if dst == nil || len(p) < 2 {
		return
	}
	clr := canvas.NRGBA(colour)
	for i := 1; i < len(p); i++ {
		vector.StrokeLine(dst, p[i-1].X, p[i-1].Y, p[i].X, p[i].Y, r.opts.lineWidth, clr, r.opts.antialias)
	}
}

func (r *Renderer) Rectangle(rect canvas.Rect, colour int, fill bool) {
	dst := r.target()
	if dst == nil {
		return
	}
	x, y, w, h := rectXYWH(rect)
	clr := canvas.NRGBA(colour)
	if fill {
		vector.DrawFilledRect(dst, x, y, w, h, clr, false)
	} else {
		vector.StrokeRect(dst, x, y, w, h, r.opts.lineWidth, clr, false)
	}
}

// Flush is a no-op: ebiten batches draw commands and submits them at the
// end of the tick.
func (r *Renderer) Flush() {}

// Swap copies the back buffer to the buffer shown by Game.Draw.
func (r *Renderer) Swap() {
	if r.back == nil {
		canvas.Logger().Warn("ebitenrender: swap with no window")
		return
	}
	r.front.Clear()
	r.front.DrawImage(r.back, nil)
}

func (r *Renderer) Framebuffer(w, h int) (canvas.Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ebitenrender: framebuffer %dx%d: %w", w, h, canvas.ErrInvalidSize)
	}
	return &framebuffer{img: ebiten.NewImage(w, h)}, nil
}

func (r *Renderer) Begin(fb canvas.Framebuffer) {
	if f := r.framebuffer(fb); f != nil {
		r.stack = append(r.stack, f)
	}
}

func (r *Renderer) End(fb canvas.Framebuffer) {
	f := r.framebuffer(fb)
	if f == nil {
		return
	}
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == f {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			return
		}
	}
	canvas.Logger().Warn("ebitenrender: end on unbound framebuffer")
}

func (r *Renderer) Bound() canvas.Framebuffer {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

// Retrieve returns the framebuffer image itself, so the texture always
// shows the current contents.
func (r *Renderer) Retrieve(fb canvas.Framebuffer) canvas.Texture {
	f := r.framebuffer(fb)
	if f == nil {
		return nil
	}
	return &texture{img: f.img, view: true}
}

func (r *Renderer) Load(path string) (canvas.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &texture{img: img}, nil
}

func (r *Renderer) LoadFont(path string, size float64) (canvas.Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	source, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, err
	}
	return &font{face: &text.GoTextFace{Source: source, Size: size}}, nil
}

func (r *Renderer) Text(f canvas.Font, s string, rgb int) (canvas.Texture, error) {
	ft, ok := f.(*font)
	if !ok {
		return nil, fmt.Errorf("ebitenrender: font %T not from this renderer", f)
	}
	m := ft.face.Metrics()
	w, _ := text.Measure(s, ft.face, m.HAscent+m.HDescent+m.HLineGap)
	width := max(1, int(math.Ceil(w)))
	height := max(1, int(math.Ceil(m.HAscent+m.HDescent)))

	img := ebiten.NewImage(width, height)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(canvas.OpaqueNRGBA(rgb))
	text.Draw(img, s, ft.face, op)
	return &texture{img: img}, nil
}

func (r *Renderer) ReleaseTexture(tex canvas.Texture) {
	t := r.texture(tex)
	if t == nil || t.view {
		return
	}
	t.released = true
	t.img.Deallocate()
}

func (r *Renderer) ReleaseFramebuffer(fb canvas.Framebuffer) {
	f := r.framebuffer(fb)
	if f == nil {
		return
	}
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == f {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
		}
	}
	f.img.Deallocate()
}

func (r *Renderer) texture(tex canvas.Texture) *texture {
	t, ok := tex.(*texture)
	if !ok || t == nil {
		canvas.Logger().Warn("ebitenrender: foreign texture", "type", fmt.Sprintf("%T", tex))
		return nil
	}
	if t.released {
		canvas.Logger().Warn("ebitenrender: texture used after release")
		return nil
	}
	return t
}

func (r *Renderer) framebuffer(fb canvas.Framebuffer) *framebuffer {
	f, ok := fb.(*framebuffer)
	if !ok || f == nil {
		canvas.Logger().Warn("ebitenrender: foreign framebuffer", "type", fmt.Sprintf("%T", fb))
		return nil
	}
	return f
}
