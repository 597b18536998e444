package raster

// DrawPoint rasterizes a single vertex as one pixel.
func DrawPoint(st State, v Vertex) {
	if v.Pos.W <= 0 {
		return
	}

	s := project(v.Pos, st.Viewport)
	if s.x < 0 || s.x >= st.Target.Width() || s.y < 0 || s.y >= st.Target.Height() {
		return
	}
	if st.DepthTest && s.z > st.Target.DepthAt(s.x, s.y) {
		return
	}
	shade(st, Fragment{
		X:      s.x,
		Y:      s.y,
		Depth:  s.z,
		Color:  v.Color,
		UV:     v.UV,
		Normal: v.Normal,
	})
}
