package raster

// DrawTriangle rasterizes a single triangle into the state's target.
//
// The triangle is projected to integer screen coordinates, culled when it
// is not front-facing (positive signed area in Y-down screen space, which
// keeps clockwise-on-screen triangles), then scanned over its clamped
// bounding box with integer edge functions. The weights are advanced
// incrementally per pixel and per row; they are never recomputed from
// scratch inside the loop.
func DrawTriangle(st State, v0, v1, v2 Vertex) {
	// No near-plane clipping: a vertex at or behind the eye plane makes
	// the projection meaningless, so the primitive is dropped whole.
	if v0.Pos.W <= 0 || v1.Pos.W <= 0 || v2.Pos.W <= 0 {
		return
	}

	s0 := project(v0.Pos, st.Viewport)
	s1 := project(v1.Pos, st.Viewport)
	s2 := project(v2.Pos, st.Viewport)

	area := edge(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y)
	if area <= 0 {
		// Back-facing or degenerate.
		return
	}

	w := st.Target.Width()
	h := st.Target.Height()

	minX := min3(s0.x, s1.x, s2.x)
	maxX := max3(s0.x, s1.x, s2.x)
	minY := min3(s0.y, s1.y, s2.y)
	maxY := max3(s0.y, s1.y, s2.y)
	if maxX < 0 || minX >= w || maxY < 0 || minY >= h {
		return
	}
	minX = clampInt(minX, 0, w-1)
	maxX = clampInt(maxX, 0, w-1)
	minY = clampInt(minY, 0, h-1)
	maxY = clampInt(maxY, 0, h-1)

	// Row weights at the bounding box origin and their per-column /
	// per-row increments, derived from the same edge coefficients as the
	// signed area.
	w0Row := edge(s1.x, s1.y, s2.x, s2.y, minX, minY)
	w1Row := edge(s2.x, s2.y, s0.x, s0.y, minX, minY)
	w2Row := edge(s0.x, s0.y, s1.x, s1.y, minX, minY)
	sw0 := step{x: s1.y - s2.y, y: s2.x - s1.x}
	sw1 := step{x: s2.y - s0.y, y: s0.x - s2.x}
	sw2 := step{x: s0.y - s1.y, y: s1.x - s0.x}

	ra := 1 / float64(area)
	// Reciprocal W for perspective-correct attribute interpolation.
	// Under an orthographic projection all three are 1 and the corrected
	// weights collapse to the plain barycentric weights.
	r0 := 1 / v0.Pos.W
	r1 := 1 / v1.Pos.W
	r2 := 1 / v2.Pos.W

	depth := st.DepthTest
	for y := minY; y <= maxY; y++ {
		w0 := w0Row
		w1 := w1Row
		w2 := w2Row
		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				b0 := float64(w0) * ra
				b1 := float64(w1) * ra
				b2 := float64(w2) * ra

				z := b0*s0.z + b1*s1.z + b2*s2.z
				if !depth || z <= st.Target.DepthAt(x, y) {
					c0 := b0 * r0
					c1 := b1 * r1
					c2 := b2 * r2
					if sum := c0 + c1 + c2; sum != 0 {
						inv := 1 / sum
						c0 *= inv
						c1 *= inv
						c2 *= inv
					}
					shade(st, Fragment{
						X:     x,
						Y:     y,
						Depth: z,
						Color: interpRGBA(v0.Color, v1.Color, v2.Color, c0, c1, c2),
						UV: Vec2{
							X: c0*v0.UV.X + c1*v1.UV.X + c2*v2.UV.X,
							Y: c0*v0.UV.Y + c1*v1.UV.Y + c2*v2.UV.Y,
						},
						Normal: Vec3{
							X: c0*v0.Normal.X + c1*v1.Normal.X + c2*v2.Normal.X,
							Y: c0*v0.Normal.Y + c1*v1.Normal.Y + c2*v2.Normal.Y,
							Z: c0*v0.Normal.Z + c1*v1.Normal.Z + c2*v2.Normal.Z,
						},
					})
				}
			}
			w0 += sw0.x
			w1 += sw1.x
			w2 += sw2.x
		}
		w0Row += sw0.y
		w1Row += sw1.y
		w2Row += sw2.y
	}
}

// step holds the per-column (x) and per-row (y) increment of one edge weight.
type step struct {
	x, y int
}

func interpRGBA(c0, c1, c2 RGBA, b0, b1, b2 float64) RGBA {
	return RGBA{
		R: clampU8(b0*float64(c0.R) + b1*float64(c1.R) + b2*float64(c2.R)),
		G: clampU8(b0*float64(c0.G) + b1*float64(c1.G) + b2*float64(c2.G)),
		B: clampU8(b0*float64(c0.B) + b1*float64(c1.B) + b2*float64(c2.B)),
		A: clampU8(b0*float64(c0.A) + b1*float64(c1.A) + b2*float64(c2.A)),
	}
}

func clampU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
