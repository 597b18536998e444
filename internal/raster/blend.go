package raster

// blend composites src over dst using integer fixed-point math:
// (src*alpha + dst*(256-alpha)) >> 8. The +1 on alpha makes the scale
// span 1..256 so a fully opaque source reproduces itself exactly without
// a per-pixel divide. Callers handle the alpha 0 and 255 fast paths.
func blend(src, dst RGBA) RGBA {
	a := int(src.A) + 1
	ia := 256 - a
	outA := int(src.A) + (int(dst.A)*ia)>>8
	if outA > 255 {
		outA = 255
	}
	return RGBA{
		R: uint8((int(src.R)*a + int(dst.R)*ia) >> 8),
		G: uint8((int(src.G)*a + int(dst.G)*ia) >> 8),
		B: uint8((int(src.B)*a + int(dst.B)*ia) >> 8),
		A: uint8(outA),
	}
}

// lerpRGBA interpolates between two colors, t in [0, 1].
func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}
