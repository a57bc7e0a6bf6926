// Package softrender is a headless canvas.Renderer that rasterises on the
// CPU with gg. Presented frames are kept in memory and can be saved as PNG.
package softrender

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"numpty/internal/canvas"
)

// Renderer draws into gg contexts. The zero value is not usable; call New.
type Renderer struct {
	opts   options
	title  string
	back   *gg.Context
	front  image.Image
	frames int
	stack  []*framebuffer
}

var _ canvas.Renderer = (*Renderer)(nil)

func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// OpenWindow allocates the back buffer. The granted size is capped by
// WithMaxSize.
func (r *Renderer) OpenWindow(w, h int, title string) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("softrender: window %dx%d: %w", w, h, canvas.ErrInvalidSize)
	}
	if r.opts.maxWidth > 0 && w > r.opts.maxWidth {
		w = r.opts.maxWidth
	}
	if r.opts.maxHeight > 0 && h > r.opts.maxHeight {
		h = r.opts.maxHeight
	}
	if r.back != nil {
		_ = r.back.Close()
	}
	r.back = gg.NewContext(w, h)
	r.back.ClearWithColor(gg.FromColor(r.opts.clearColour))
	r.title = title
	canvas.Logger().Debug("softrender: window opened", "width", w, "height", h, "title", title)
	return nil
}

func (r *Renderer) Size() (int, int) {
	if r.back == nil {
		return 0, 0
	}
	return r.back.Width(), r.back.Height()
}

func (r *Renderer) Title() string {
	return r.title
}

// target is the bound framebuffer, or the back buffer.
func (r *Renderer) target() *gg.Context {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1].dc
	}
	if r.back == nil {
		canvas.Logger().Warn("softrender: draw with no window and no bound framebuffer")
	}
	return r.back
}

func (r *Renderer) Clear() {
	dc := r.target()
	if dc == nil {
		return
	}
	dc.ClearWithColor(gg.FromColor(r.opts.clearColour))
}

func (r *Renderer) Image(tex canvas.Texture, x, y, w, h int) {
	dc := r.target()
	t := r.texture(tex)
	if dc == nil || t == nil {
		return
	}
	dc.DrawImageEx(gg.ImageBufFromImage(t.pixels()), gg.DrawImageOptions{
		X:             float64(x),
		Y:             float64(y),
		DstWidth:      float64(w),
		DstHeight:     float64(h),
		Interpolation: gg.InterpNearest,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}

// Blur uses a single gaussian radius, the larger of rx and ry.
func (r *Renderer) Blur(tex canvas.Texture, src, dst canvas.Rect, rx, ry float32) {
	dc := r.target()
	t := r.texture(tex)
	if dc == nil || t == nil {
		return
	}
	pix := t.pixels()
	src = src.Canon().Intersect(pix.Bounds())
	dst = dst.Canon()
	if src.Empty() || dst.Empty() {
		return
	}

	img := transform.Crop(pix, src)
	if radius := float64(max(rx, ry)); radius > 0 {
		img = blur.Gaussian(img, radius)
	}
	if img.Bounds().Dx() != dst.Dx() || img.Bounds().Dy() != dst.Dy() {
		img = transform.Resize(img, dst.Dx(), dst.Dy(), transform.Linear)
	}
	dc.DrawImage(gg.ImageBufFromImage(img), float64(dst.Min.X), float64(dst.Min.Y))
}

func (r *Renderer) Path(p canvas.Path, colour int) {
	dc := r.target()
	if dc == nil || len(p) < 2 {
		return
	}
	dc.SetColor(canvas.NRGBA(colour))
	dc.SetLineWidth(r.opts.lineWidth)
	dc.MoveTo(float64(p[0].X), float64(p[0].Y))
	for _, pt := range p[1:] {
		dc.LineTo(float64(pt.X), float64(pt.Y))
	}
	if err := dc.Stroke(); err != nil {
		canvas.Logger().Warn("softrender: stroke path", "err", err)
	}
}

func (r *Renderer) Rectangle(rect canvas.Rect, colour int, fill bool) {
	dc := r.target()
	if dc == nil {
		return
	}
	rect = rect.Canon()
	dc.SetColor(canvas.NRGBA(colour))
	dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))

	var err error
	if fill {
		err = dc.Fill()
	} else {
		dc.SetLineWidth(r.opts.lineWidth)
		err = dc.Stroke()
	}
	if err != nil {
		canvas.Logger().Warn("softrender: rectangle", "fill", fill, "err", err)
	}
}

// Flush is a no-op: every draw is rasterised immediately.
func (r *Renderer) Flush() {}

// Swap presents a copy of the back buffer.
func (r *Renderer) Swap() {
	if r.back == nil {
		canvas.Logger().Warn("softrender: swap with no window")
		return
	}
	r.front = r.back.Image()
	r.frames++
	canvas.Logger().Debug("softrender: frame presented", "frame", r.frames)
}

// Frame returns the last presented frame, or nil before the first Swap.
func (r *Renderer) Frame() image.Image {
	return r.front
}

// Frames returns the number of presented frames.
func (r *Renderer) Frames() int {
	return r.frames
}

// SavePNG writes the last presented frame to path.
func (r *Renderer) SavePNG(path string) error {
	if r.front == nil {
		return fmt.Errorf("softrender: save %q: %w: no frame presented", path, canvas.ErrInvalidState)
	}
	return gg.FromImage(r.front).SavePNG(path)
}

func (r *Renderer) Framebuffer(w, h int) (canvas.Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("softrender: framebuffer %dx%d: %w", w, h, canvas.ErrInvalidSize)
	}
	return &framebuffer{dc: gg.NewContext(w, h)}, nil
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
			if i != len(r.stack)-1 {
				canvas.Logger().Warn("softrender: framebuffer ended out of order")
			}
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			return
		}
	}
	canvas.Logger().Warn("softrender: end on unbound framebuffer")
}

func (r *Renderer) Bound() canvas.Framebuffer {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

// Retrieve returns a live view of the framebuffer pixels.
func (r *Renderer) Retrieve(fb canvas.Framebuffer) canvas.Texture {
	f := r.framebuffer(fb)
	if f == nil {
		return nil
	}
	return viewTexture(f)
}

func (r *Renderer) Load(path string) (canvas.Texture, error) {
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return newTexture(buf.ToStdImage()), nil
}

func (r *Renderer) LoadFont(path string, size float64) (canvas.Font, error) {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	return &font{source: source, face: source.Face(size), size: size}, nil
}

// Text renders s on a transparent texture one line high, baseline at the
// font ascent.
func (r *Renderer) Text(f canvas.Font, s string, rgb int) (canvas.Texture, error) {
	ft, ok := f.(*font)
	if !ok {
		return nil, fmt.Errorf("softrender: font %T not from this renderer", f)
	}
	w, _ := text.Measure(s, ft.face)
	m := ft.face.Metrics()
	width := max(1, int(math.Ceil(w)))
	height := max(1, int(math.Ceil(m.LineHeight())))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	text.Draw(img, s, ft.face, 0, m.Ascent, canvas.OpaqueNRGBA(rgb))
	return newTexture(img), nil
}

// ReleaseTexture drops owned pixels. Views are owned by their framebuffer.
func (r *Renderer) ReleaseTexture(tex canvas.Texture) {
	t := r.texture(tex)
	if t == nil || t.fb != nil {
		return
	}
	t.released = true
	t.img = nil
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
	_ = f.dc.Close()
}

func (r *Renderer) texture(tex canvas.Texture) *texture {
	t, ok := tex.(*texture)
	if !ok || t == nil {
		canvas.Logger().Warn("softrender: foreign texture", "type", fmt.Sprintf("%T", tex))
		return nil
	}
	if t.released {
		canvas.Logger().Warn("softrender: texture used after release")
		return nil
	}
	return t
}

func (r *Renderer) framebuffer(fb canvas.Framebuffer) *framebuffer {
	f, ok := fb.(*framebuffer)
	if !ok || f == nil {
		canvas.Logger().Warn("softrender: foreign framebuffer", "type", fmt.Sprintf("%T", fb))
		return nil
	}
	return f
}
