package sr

// Material describes how bulk-mesh geometry is shaded: a diffuse color
// multiplier, an optional diffuse texture, and an optional shader
// override. Texture and Shader are borrowed references; the Context does
// not extend their lifetime beyond the draw call.
type Material struct {
	// Diffuse multiplies every vertex color of the mesh. The zero value
	// is treated as White (no tint).
	Diffuse Color

	// Texture is sampled by the shader when non-nil.
	Texture *Surface

	// Shader overrides the context's bound shader when non-nil.
	Shader Shader
}

// diffuse returns the effective diffuse multiplier.
func (m Material) diffuse() Color {
	if m.Diffuse == (Color{}) {
		return White
	}
	return m.Diffuse
}
