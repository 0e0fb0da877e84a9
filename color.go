package guistate

import (
	"image/color"
	"math"
)

// Color is a packed 0xAARRGGBB colour as used by the host's vertex format.
type Color uint32

// Common colours.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromNRGBA packs a non-premultiplied standard library colour.
func FromNRGBA(c color.NRGBA) Color {
	return ARGB(c.A, c.R, c.G, c.B)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// NRGBA converts c to the standard color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// WithAlpha scales the alpha channel by f, clamped to [0, 1].
func (c Color) WithAlpha(f float64) Color {
	f = clamp01(f)
	a := uint8(math.Round(float64(c.A()) * f))
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// clamp01 clamps v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
