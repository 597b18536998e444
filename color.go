package sr

import "image/color"

// Color represents an RGBA8 color, the pixel format of every Surface.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Mul returns the channel-wise product of two colors, treating each
// channel as a fraction of 255. Modulating by White is the identity.
func (c Color) Mul(o Color) Color {
	return Color{
		R: uint8((int(c.R)*int(o.R) + 127) / 255),
		G: uint8((int(c.G)*int(o.G) + 127) / 255),
		B: uint8((int(c.B)*int(o.B) + 127) / 255),
		A: uint8((int(c.A)*int(o.A) + 127) / 255),
	}
}

// Lerp interpolates between two colors. t=0 returns c, t=1 returns o.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: uint8(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: uint8(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: uint8(float64(c.B) + (float64(o.B)-float64(c.B))*t),
		A: uint8(float64(c.A) + (float64(o.A)-float64(c.A))*t),
	}
}

// Over composites c over dst with source-over alpha blending using the
// fixed-point form (src*alpha + dst*(256-alpha)) >> 8. The fully opaque
// and fully transparent cases are exact; callers on the rasterizer hot
// path short-circuit them before blending.
func (c Color) Over(dst Color) Color {
	switch c.A {
	case 0:
		return dst
	case 255:
		return c
	}
	a := int(c.A) + 1 // 1..256 so that alpha 255 rounds to the source
	ia := 256 - a
	return Color{
		R: uint8((int(c.R)*a + int(dst.R)*ia) >> 8),
		G: uint8((int(c.G)*a + int(dst.G)*ia) >> 8),
		B: uint8((int(c.B)*a + int(dst.B)*ia) >> 8),
		A: uint8(min(255, int(c.A)+(int(dst.A)*ia)>>8)),
	}
}
