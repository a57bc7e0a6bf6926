package softrender

import "image/color"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	clearColour color.Color
	lineWidth   float64
	maxWidth    int
	maxHeight   int
}

func defaultOptions() options {
	return options{
		clearColour: color.Black,
		lineWidth:   1,
	}
}

// WithClearColour sets the colour Clear fills with. Default is opaque black.
func WithClearColour(c color.Color) Option {
	return func(o *options) {
		o.clearColour = c
	}
}

// WithLineWidth sets the stroke width used for paths and rectangle
// outlines. Non-positive values are ignored.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithMaxSize caps the window size OpenWindow grants, the way a display
// caps a platform window. Zero means no cap.
func WithMaxSize(w, h int) Option {
	return func(o *options) {
		o.maxWidth = w
		o.maxHeight = h
	}
}
