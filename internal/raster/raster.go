// Package raster implements the triangle, line, and point rasterizers
// used by the sr rendering context.
//
// The package is deliberately self-contained: it defines its own small
// vertex, color, and target types so the public API can evolve without
// touching the hot path. The root package adapts its Framebuffer, Shader,
// and Surface types to the interfaces declared here.
package raster

// RGBA is an 8-bit-per-channel color.
type RGBA struct {
	R, G, B, A uint8
}

// Vec2 is a 2D vector (texture coordinates).
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector (normals).
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous position in clip space.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vertex is a fully assembled vertex: a clip-space position (already
// multiplied by the combined modelview-projection matrix) plus the
// attribute state captured when it was emitted.
type Vertex struct {
	Pos    Vec4
	Normal Vec3
	UV     Vec2
	Color  RGBA
}

// Fragment is the interpolated data handed to the shader hook for each
// covered pixel.
type Fragment struct {
	// X, Y are the pixel coordinates in the target.
	X, Y int

	// Depth is the interpolated NDC depth of the fragment.
	Depth float64

	// Color is the barycentric-interpolated vertex color.
	Color RGBA

	// UV is the interpolated texture coordinate.
	UV Vec2

	// Normal is the interpolated vertex normal (not renormalized).
	Normal Vec3
}

// Shader computes the final color of a fragment. Implementations sample
// any bound texture themselves; the rasterizer only interpolates.
type Shader interface {
	Fragment(f Fragment) RGBA
}

// Target is a mutable pixel destination with a parallel depth plane.
// Coordinates passed by the rasterizer are always within
// [0, Width) x [0, Height).
type Target interface {
	Width() int
	Height() int
	At(x, y int) RGBA
	Set(x, y int, c RGBA)
	DepthAt(x, y int) float64
	SetDepth(x, y int, z float64)
}

// Viewport is the pixel rectangle that normalized device coordinates are
// mapped into. W and H carry the -1 adjustment for floor-based pixel
// indexing: a vertex at NDC +1 lands on the last pixel, not one past it.
type Viewport struct {
	X, Y, W, H int
}

// State is the per-primitive render state captured at dispatch time.
type State struct {
	Target    Target
	Viewport  Viewport
	Shader    Shader
	DepthTest bool
}

// screenPos is a projected vertex: integer pixel coordinates plus NDC depth.
type screenPos struct {
	x, y int
	z    float64
}

// project performs the perspective divide and viewport mapping, flipping Y
// so that screen Y increases downward.
func project(v Vec4, vp Viewport) screenPos {
	w := v.W
	if w == 0 {
		w = 1
	}
	nx := v.X / w
	ny := v.Y / w
	nz := v.Z / w
	return screenPos{
		x: vp.X + int((nx+1)*0.5*float64(vp.W)),
		y: vp.Y + int((1-(ny+1)*0.5)*float64(vp.H)),
		z: nz,
	}
}

// edge is the integer edge function: its sign says which side of the
// directed edge a->b the point p lies on, and its magnitude is twice the
// area of the triangle (a, b, p).
func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// shade runs the shader and composites the result into the target at
// (x, y), writing depth on success. Alpha 0 fragments are skipped and
// alpha 255 fragments overwrite; everything else goes through the
// fixed-point source-over blend.
func shade(st State, frag Fragment) {
	c := st.Shader.Fragment(frag)
	if c.A == 0 {
		return
	}
	if c.A == 255 {
		st.Target.Set(frag.X, frag.Y, c)
	} else {
		st.Target.Set(frag.X, frag.Y, blend(c, st.Target.At(frag.X, frag.Y)))
	}
	st.Target.SetDepth(frag.X, frag.Y, frag.Depth)
}
