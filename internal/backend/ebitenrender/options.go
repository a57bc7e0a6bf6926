package ebitenrender

import "image/color"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	clearColour color.Color
	lineWidth   float32
	scale       int
	antialias   bool
}

func defaultOptions() options {
	return options{
		clearColour: color.RGBA{0x2b, 0x2b, 0x2b, 0xff},
		lineWidth:   1,
		scale:       1,
		antialias:   true,
	}
}

func WithClearColour(c color.Color) Option {
	return func(o *options) {
		o.clearColour = c
	}
}

func WithLineWidth(w float32) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithScale sets the integer factor between logical pixels and the desktop
// window size.
func WithScale(s int) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

func WithAntialias(on bool) Option {
	return func(o *options) {
		o.antialias = on
	}
}
