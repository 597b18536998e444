// Package sr is a pure Go software rasterizer with a fixed-function-style
// immediate-mode API.
//
// # Overview
//
// sr reproduces the semantics of a classic fixed-function GPU pipeline
// entirely on the CPU: a modelview/projection matrix stack, immediate-mode
// vertex submission between Begin and End, primitive assembly, barycentric
// triangle rasterization with incremental edge functions, depth testing,
// texture sampling through a pluggable shader hook, and fixed-point alpha
// blending into a framebuffer surface.
//
// # Quick Start
//
//	import "github.com/gogpu/sr"
//
//	dc := sr.NewContext(256, 256)
//	dc.Clear(sr.Black)
//
//	dc.Begin(sr.Triangles)
//	dc.SetColor(sr.RGB(255, 0, 0))
//	dc.Vertex2(10, 10)
//	dc.Vertex2(50, 10)
//	dc.Vertex2(10, 50)
//	dc.End()
//
//	dc.Image().SavePNG("out.png")
//
// # Coordinate System
//
// NewContext configures an orthographic projection over the pixel rectangle
// with the origin at the top-left: X increases right, Y increases down.
// Setting your own projection with Frustum or Ortho switches the context to
// ordinary clip-space semantics with a perspective divide.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Matrix, Vec2/Vec3/Vec4, Color, Surface,
//     Framebuffer, Mesh, Material, Shader
//   - Internal: raster (triangle/line/point rasterization, blending)
//   - Feature packages: text (shaping and glyph-mask caching),
//     particle (emitters drawn through a Context)
//
// # Threading
//
// A Context is single-owner: every drawing call may rasterize inline before
// returning, and the matrix stack, attribute state, and framebuffer are
// mutated without locks. Calls on one Context must be serialized by the
// caller; independent Contexts are fully isolated.
package sr

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
