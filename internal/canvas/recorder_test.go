package canvas

import (
	"errors"
	"fmt"
)

type fakeTexture struct {
	w, h int
	name string
}

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

type fakeFramebuffer struct {
	w, h int
}

func (f *fakeFramebuffer) Width() int  { return f.w }
func (f *fakeFramebuffer) Height() int { return f.h }

type fakeFont struct{ size float64 }

func (f fakeFont) Size() float64 { return f.size }

// recorder is a Renderer that logs every call as a string.
type recorder struct {
	calls []string

	grantW, grantH  int
	failFramebuffer bool
	files           map[string]*fakeTexture
	textures        map[*fakeFramebuffer]*fakeTexture
	bound           []Framebuffer
}

func newRecorder() *recorder {
	return &recorder{
		files:    map[string]*fakeTexture{},
		textures: map[*fakeFramebuffer]*fakeTexture{},
	}
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.calls = nil
}

func (r *recorder) OpenWindow(w, h int, title string) error {
	r.record("window %dx%d %s", w, h, title)
	if r.grantW == 0 {
		r.grantW, r.grantH = w, h
	}
	return nil
}

func (r *recorder) Size() (int, int) {
	return r.grantW, r.grantH
}

func (r *recorder) Clear() { r.record("clear") }

func (r *recorder) Image(tex Texture, x, y, w, h int) {
	r.record("image %s %d,%d %dx%d", tex.(*fakeTexture).name, x, y, w, h)
}

func (r *recorder) Blur(tex Texture, src, dst Rect, rx, ry float32) {
	r.record("blur %s %v %v %g %g", tex.(*fakeTexture).name, src, dst, rx, ry)
}

func (r *recorder) Path(p Path, colour int) {
	r.record("path %d %#x", len(p), colour)
}

func (r *recorder) Rectangle(rect Rect, colour int, fill bool) {
	r.record("rectangle %v %#x %t", rect, colour, fill)
}

func (r *recorder) Flush() { r.record("flush") }
func (r *recorder) Swap()  { r.record("swap") }

func (r *recorder) Framebuffer(w, h int) (Framebuffer, error) {
	r.record("framebuffer %dx%d", w, h)
	if r.failFramebuffer {
		return nil, errors.New("out of video memory")
	}
	fb := &fakeFramebuffer{w: w, h: h}
	r.textures[fb] = &fakeTexture{w: w, h: h, name: "contents"}
	return fb, nil
}

func (r *recorder) Begin(fb Framebuffer) {
	r.record("begin")
	r.bound = append(r.bound, fb)
}

func (r *recorder) End(fb Framebuffer) {
	r.record("end")
	for i := len(r.bound) - 1; i >= 0; i-- {
		if r.bound[i] == fb {
			r.bound = append(r.bound[:i], r.bound[i+1:]...)
			return
		}
	}
}

func (r *recorder) Bound() Framebuffer {
	if n := len(r.bound); n > 0 {
		return r.bound[n-1]
	}
	return nil
}

func (r *recorder) Retrieve(fb Framebuffer) Texture {
	return r.textures[fb.(*fakeFramebuffer)]
}

func (r *recorder) Load(path string) (Texture, error) {
	r.record("load %s", path)
	tex, ok := r.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return tex, nil
}

func (r *recorder) Text(font Font, s string, rgb int) (Texture, error) {
	r.record("text %q %#x", s, rgb)
	return &fakeTexture{w: 8 * len(s), h: int(font.Size()), name: "text"}, nil
}

func (r *recorder) LoadFont(path string, size float64) (Font, error) {
	return fakeFont{size: size}, nil
}

func (r *recorder) ReleaseTexture(tex Texture) {
	r.record("release texture %s", tex.(*fakeTexture).name)
}

func (r *recorder) ReleaseFramebuffer(fb Framebuffer) {
	r.record("release framebuffer")
}
