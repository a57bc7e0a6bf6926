package canvas

import "image/color"

// MakeColour packs three channel values into a 24-bit RGB integer with red
// in the highest byte. Each channel is masked to its low 8 bits.
func MakeColour(r, g, b int) int {
	return (r&0xff)<<16 | (g&0xff)<<8 | (b & 0xff)
}

// PackedColour returns an already packed colour unchanged.
func PackedColour(c int) int {
	return c
}

// NRGBA unpacks a 0xAARRGGBB colour as passed to Renderer.Path and
// Renderer.Rectangle. The alpha byte is the opacity.
func NRGBA(packed int) color.NRGBA {
	return color.NRGBA{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
		A: uint8(packed >> 24),
	}
}

// OpaqueNRGBA unpacks a 24-bit RGB colour as passed to Renderer.Text.
func OpaqueNRGBA(rgb int) color.NRGBA {
	c := NRGBA(rgb)
	c.A = 0xff
	return c
}
