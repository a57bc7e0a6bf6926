package softrender

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numpty/internal/canvas"
)

var (
	clearColour = color.RGBA{A: 255}
	red         = color.RGBA{R: 255, A: 255}
	green       = color.RGBA{G: 255, A: 255}
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func newRenderer() *Renderer {
	return New(WithClearColour(clearColour))
}

func TestEmptyRenderLeavesClearedTarget(t *testing.T) {
	r := newRenderer()
	rt, err := canvas.NewRenderTarget(r, 16, 8)
	require.NoError(t, err)

	require.NoError(t, rt.Begin())
	require.NoError(t, rt.End())

	tex := rt.Contents()
	assert.Equal(t, 16, tex.Width())
	assert.Equal(t, 8, tex.Height())

	img := tex.(*texture).pixels()
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, clearColour, rgbaAt(img, x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestWindowGrantedSize(t *testing.T) {
	r := New(WithMaxSize(100, 50))
	w, err := canvas.NewWindow(r, 200, 40, "capped")
	require.NoError(t, err)
	assert.Equal(t, 100, w.Width())
	assert.Equal(t, 40, w.Height())
	assert.Equal(t, 200, w.Offscreen().Width())
	assert.Equal(t, "capped", r.Title())
}

func TestRectangleAndSwap(t *testing.T) {
	r := newRenderer()
	w, err := canvas.NewWindow(r, 10, 10, "rect")
	require.NoError(t, err)
	assert.Nil(t, r.Frame())

	w.Clear()
	w.DrawRectXYWH(2, 2, 4, 4, canvas.MakeColour(255, 0, 0), true, 0xff)
	w.Update()

	require.Equal(t, 1, r.Frames())
	frame := r.Frame()
	assert.Equal(t, red, rgbaAt(frame, 4, 4))
	assert.Equal(t, clearColour, rgbaAt(frame, 0, 0))
	assert.Equal(t, clearColour, rgbaAt(frame, 8, 8))
}

func TestPathStroke(t *testing.T) {
	r := New(WithClearColour(clearColour), WithLineWidth(4))
	w, err := canvas.NewWindow(r, 12, 12, "path")
	require.NoError(t, err)

	w.Clear()
	w.DrawPath(canvas.Path{{X: 0, Y: 5}, {X: 12, Y: 5}}, canvas.MakeColour(0, 255, 0), 0xff)
	w.Update()

	assert.Equal(t, green, rgbaAt(r.Frame(), 6, 5))
	assert.Equal(t, clearColour, rgbaAt(r.Frame(), 6, 11))
}

func TestOffscreenImageIsLive(t *testing.T) {
	r := newRenderer()
	w, err := canvas.NewWindow(r, 8, 8, "live")
	require.NoError(t, err)
	img := w.Offscreen()

	err = w.RenderOffscreen(func(c canvas.Canvas) error {
		c.DrawRectXYWH(0, 0, 8, 8, canvas.MakeColour(0, 255, 0), true, 0xff)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, green, rgbaAt(img.Texture().(*texture).pixels(), 3, 3))

	w.Clear()
	w.DrawImage(img, 0, 0)
	w.Update()
	assert.Equal(t, green, rgbaAt(r.Frame(), 3, 3))
}

func TestNestedFramebuffers(t *testing.T) {
	r := newRenderer()
	_, err := canvas.NewWindow(r, 4, 4, "nested")
	require.NoError(t, err)

	outer, err := canvas.NewRenderTarget(r, 4, 4)
	require.NoError(t, err)
	inner, err := canvas.NewRenderTarget(r, 4, 4)
	require.NoError(t, err)

	require.NoError(t, outer.Begin())
	require.NoError(t, inner.Begin())
	inner.DrawRectXYWH(0, 0, 4, 4, canvas.MakeColour(255, 0, 0), true, 0xff)
	require.NoError(t, inner.End())
	outer.DrawRectXYWH(0, 0, 4, 4, canvas.MakeColour(0, 255, 0), true, 0xff)
	require.NoError(t, outer.End())

	assert.Equal(t, red, rgbaAt(inner.Contents().(*texture).pixels(), 1, 1))
	assert.Equal(t, green, rgbaAt(outer.Contents().(*texture).pixels(), 1, 1))
	assert.Empty(t, r.stack)
}

func TestOuterTargetDrawIsRejectedWhileInnerIsBound(t *testing.T) {
	r := newRenderer()
	outer, err := canvas.NewRenderTarget(r, 4, 4)
	require.NoError(t, err)
	inner, err := canvas.NewRenderTarget(r, 4, 4)
	require.NoError(t, err)

	require.NoError(t, outer.Begin())
	require.NoError(t, inner.Begin())
	outer.DrawRectXYWH(0, 0, 4, 4, canvas.MakeColour(0, 255, 0), true, 0xff)
	require.NoError(t, inner.End())
	require.NoError(t, outer.End())

	assert.Equal(t, clearColour, rgbaAt(inner.Contents().(*texture).pixels(), 1, 1))
	assert.Equal(t, clearColour, rgbaAt(outer.Contents().(*texture).pixels(), 1, 1))
	assert.ErrorIs(t, outer.Err(), canvas.ErrInvalidState)
	assert.NoError(t, inner.Err())
}

func TestBlurStaysInsideDestination(t *testing.T) {
	r := newRenderer()
	w, err := canvas.NewWindow(r, 32, 32, "blur")
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+2] = 0xff
		src.Pix[i+3] = 0xff
	}
	img := canvas.NewImage(r, newTexture(src))

	w.Clear()
	w.DrawBlur(img, image.Rect(0, 0, 16, 16), image.Rect(0, 0, 16, 16), 2, 1)
	w.Update()

	assert.Greater(t, rgbaAt(r.Frame(), 8, 8).B, uint8(0))
	assert.Equal(t, clearColour, rgbaAt(r.Frame(), 24, 24))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ball.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 5, 3))))
	require.NoError(t, f.Close())

	r := newRenderer()
	img, err := canvas.LoadImage(r, path)
	require.NoError(t, err)
	assert.Equal(t, 5, img.Width())
	assert.Equal(t, 3, img.Height())

	require.NoError(t, img.Close())
	assert.Nil(t, img.Texture().(*texture).img)

	_, err = canvas.LoadImage(r, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, canvas.ErrResourceLoad)
}

func TestLoadFontMissing(t *testing.T) {
	_, err := New().LoadFont(filepath.Join(t.TempDir(), "none.ttf"), 12)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	r := newRenderer()
	path := filepath.Join(t.TempDir(), "frame.png")
	assert.ErrorIs(t, r.SavePNG(path), canvas.ErrInvalidState)

	_, err := canvas.NewWindow(r, 6, 4, "save")
	require.NoError(t, err)
	r.Swap()
	require.NoError(t, r.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	saved, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), saved.Bounds())
}

func TestNegativeSizeRectangleMatchesCanonical(t *testing.T) {
	draw := func(x, y, w, h int) image.Image {
		r := newRenderer()
		win, err := canvas.NewWindow(r, 10, 10, "rect")
		require.NoError(t, err)
		win.Clear()
		win.DrawRectXYWH(x, y, w, h, canvas.MakeColour(255, 0, 0), true, 0xff)
		win.Update()
		return r.Frame()
	}

	want := draw(2, 2, 4, 4)
	got := draw(6, 6, -4, -4)
	assert.Equal(t, red, rgbaAt(got, 4, 4))
	assert.Equal(t, want, got)
}
