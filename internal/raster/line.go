package raster

// DrawLine rasterizes a line segment with Bresenham stepping. Depth and
// vertex attributes are interpolated linearly by the fraction of the
// segment covered; each pixel goes through the same depth test, shader
// hook, and blend path as triangle fragments.
func DrawLine(st State, v0, v1 Vertex) {
	if v0.Pos.W <= 0 || v1.Pos.W <= 0 {
		return
	}

	s0 := project(v0.Pos, st.Viewport)
	s1 := project(v1.Pos, st.Viewport)

	w := st.Target.Width()
	h := st.Target.Height()

	x0, y0 := s0.x, s0.y
	x1, y1 := s1.x, s1.y

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	// Interpolation parameter along the dominant axis.
	steps := dx
	if -dy > dx {
		steps = -dy
	}
	total := float64(steps)
	n := 0

	depth := st.DepthTest
	for {
		t := 0.0
		if total > 0 {
			t = float64(n) / total
		}
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			z := s0.z + (s1.z-s0.z)*t
			if !depth || z <= st.Target.DepthAt(x0, y0) {
				shade(st, Fragment{
					X:     x0,
					Y:     y0,
					Depth: z,
					Color: lerpRGBA(v0.Color, v1.Color, t),
					UV: Vec2{
						X: v0.UV.X + (v1.UV.X-v0.UV.X)*t,
						Y: v0.UV.Y + (v1.UV.Y-v0.UV.Y)*t,
					},
					Normal: Vec3{
						X: v0.Normal.X + (v1.Normal.X-v0.Normal.X)*t,
						Y: v0.Normal.Y + (v1.Normal.Y-v0.Normal.Y)*t,
						Z: v0.Normal.Z + (v1.Normal.Z-v0.Normal.Z)*t,
					},
				})
			}
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
		n++
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
