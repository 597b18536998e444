package sr

// Mesh is bulk triangle geometry for DrawVertexArray. Positions are
// mandatory; normals, texcoords, and colors are optional parallel slices
// (missing attributes fall back to zero normals, zero UVs, and white).
// When Indices is non-empty it is consumed in triples; otherwise the
// position slice itself is consumed in sequential triples.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	TexCoords []Vec2
	Colors    []Color
	Indices   []int
}

// TriangleCount returns the number of complete triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// vertexAt assembles the i-th referenced vertex, resolving indices and
// filling defaults for missing attribute slices.
func (m *Mesh) vertexAt(i int) Vertex {
	idx := i
	if len(m.Indices) > 0 {
		idx = m.Indices[i]
	}
	v := Vertex{Color: White}
	if idx >= 0 && idx < len(m.Positions) {
		v.Position = m.Positions[idx]
	}
	if idx >= 0 && idx < len(m.Normals) {
		v.Normal = m.Normals[idx]
	}
	if idx >= 0 && idx < len(m.TexCoords) {
		v.TexCoord = m.TexCoords[idx]
	}
	if idx >= 0 && idx < len(m.Colors) {
		v.Color = m.Colors[idx]
	}
	return v
}
