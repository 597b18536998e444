package sr

// Fragment carries the interpolated attributes of one covered pixel plus
// the texture bound for the draw call (nil when none is bound).
type Fragment struct {
	// X, Y are the pixel coordinates in the active framebuffer.
	X, Y int

	// Depth is the interpolated NDC depth.
	Depth float64

	// Color is the barycentric-interpolated vertex color.
	Color Color

	// UV is the interpolated texture coordinate.
	UV Vec2

	// Normal is the interpolated vertex normal.
	Normal Vec3

	// Texture is the surface bound when the primitive was dispatched.
	// The reference is borrowed for the duration of the draw call only.
	Texture *Surface
}

// Shader computes the final color of each covered pixel. A Shader is
// bound to a Context with SetShader and invoked by the rasterizer after
// attribute interpolation and the depth test; the returned color goes
// through the alpha blend into the framebuffer. Returning a color with
// alpha 0 discards the fragment.
type Shader interface {
	Fragment(f Fragment) Color
}

// defaultShader is the built-in pass-through shader: the interpolated
// vertex color, modulated by the texture sample when a texture is bound.
type defaultShader struct{}

func (defaultShader) Fragment(f Fragment) Color {
	if f.Texture == nil {
		return f.Color
	}
	return f.Texture.Frag(f.UV.X, f.UV.Y).Mul(f.Color)
}

// ShaderFunc adapts a plain function to the Shader interface.
type ShaderFunc func(f Fragment) Color

// Fragment implements Shader.
func (fn ShaderFunc) Fragment(f Fragment) Color {
	return fn(f)
}
