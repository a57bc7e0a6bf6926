package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeColour(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    int
	}{
		{0, 0, 0, 0},
		{0xff, 0, 0, 0xff0000},
		{0x12, 0x34, 0x56, 0x123456},
		{256, 0, 0, 0},
		{0x1ff, 0x100, -1, 0xff00ff},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeColour(tt.r, tt.g, tt.b), "MakeColour(%d, %d, %d)", tt.r, tt.g, tt.b)
	}
	assert.Equal(t, MakeColour(0, 0, 0), MakeColour(256, 0, 0))
}

func TestPackedColourIdentity(t *testing.T) {
	for _, c := range []int{0, 1, -1, 0xffffff, 0x7fffffff, -0x80000000, 1 << 40} {
		assert.Equal(t, c, PackedColour(c))
	}
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80}, NRGBA(0x80123456))
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, OpaqueNRGBA(0x123456))
	assert.Equal(t, uint8(0xff), OpaqueNRGBA(0x00123456).A)
}
