package sr

// Vertex is a fully formed vertex: a position plus the attribute state
// captured when it was emitted. Vertices are transient — they live only
// for the primitive they belong to.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	TexCoord Vec2
	Color    Color
}
