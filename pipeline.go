package sr

import "github.com/gogpu/sr/internal/raster"

// DrawMode is the primitive type accepted between Begin and End.
type DrawMode int

const (
	// Points emits one pixel per vertex.
	Points DrawMode = iota

	// Lines emits a segment per vertex pair.
	Lines

	// Triangles emits a filled triangle per vertex triple.
	Triangles

	// Quads emits a filled quadrilateral per four vertices, decomposed
	// into the triangles 0-1-2 and 2-3-0.
	Quads
)

// String returns the draw mode name.
func (m DrawMode) String() string {
	switch m {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case Triangles:
		return "Triangles"
	case Quads:
		return "Quads"
	default:
		return "Unknown"
	}
}

// arity returns the number of vertices that completes one primitive.
func (m DrawMode) arity() int {
	switch m {
	case Points:
		return 1
	case Lines:
		return 2
	case Triangles:
		return 3
	default:
		return 4
	}
}

// Begin starts accepting vertices for the given primitive type.
func (c *Context) Begin(mode DrawMode) {
	c.drawMode = mode
	c.drawing = true
	c.verts = c.verts[:0]
}

// End stops accepting vertices. An incomplete trailing primitive is
// discarded.
func (c *Context) End() {
	c.drawing = false
	c.verts = c.verts[:0]
}

// Normal sets the current normal, consumed by subsequent Vertex calls.
func (c *Context) Normal(x, y, z float64) {
	c.normal = Vec3{X: x, Y: y, Z: z}
}

// TexCoord sets the current texture coordinate, consumed by subsequent
// Vertex calls.
func (c *Context) TexCoord(u, v float64) {
	c.texcoord = Vec2{X: u, Y: v}
}

// SetColor sets the current vertex color, consumed by subsequent Vertex
// calls.
func (c *Context) SetColor(col Color) {
	c.color = col
}

// Vertex2 emits a vertex at (x, y, 0).
func (c *Context) Vertex2(x, y float64) {
	c.Vertex3(x, y, 0)
}

// Vertex3 emits a vertex, combining the supplied position with the
// current normal, texture coordinate, and color. Outside a Begin/End
// bracket the call is a no-op. When the vertex completes a
// primitive, the primitive is rasterized inline before Vertex3 returns.
func (c *Context) Vertex3(x, y, z float64) {
	if !c.drawing {
		return
	}
	pos := Vec3{X: x, Y: y, Z: z}
	if c.transformRequired {
		pos = c.transform.MulPosition(pos)
	}
	c.verts = append(c.verts, Vertex{
		Position: pos,
		Normal:   c.normal,
		TexCoord: c.texcoord,
		Color:    c.color,
	})
	if len(c.verts) == c.drawMode.arity() {
		c.processAndRender()
		c.verts = c.verts[:0]
	}
}

// renderState captures the per-primitive state handed to the rasterizer:
// the active target, the viewport with the -1 width/height adjustment for
// floor-based pixel indexing, and the shader/texture binding.
func (c *Context) renderState(shader Shader, texture *Surface) raster.State {
	return raster.State{
		Target: framebufferTarget{fb: c.fb},
		Viewport: raster.Viewport{
			X: c.viewport.X,
			Y: c.viewport.Y,
			W: c.viewport.W - 1,
			H: c.viewport.H - 1,
		},
		Shader:    shaderBinding{shader: shader, texture: texture},
		DepthTest: c.depthTest,
	}
}

// processAndRender transforms the completed primitive by the combined
// modelview-projection matrix and dispatches it to the rasterizer.
func (c *Context) processAndRender() {
	mvp := c.projection.Mul(c.modelview)
	st := c.renderState(c.shader, c.texture)

	rv := make([]raster.Vertex, len(c.verts))
	for i, v := range c.verts {
		rv[i] = clipVertex(mvp, v)
	}

	switch c.drawMode {
	case Points:
		raster.DrawPoint(st, rv[0])
	case Lines:
		raster.DrawLine(st, rv[0], rv[1])
	case Triangles:
		if c.wireMode {
			raster.DrawLine(st, rv[0], rv[1])
			raster.DrawLine(st, rv[1], rv[2])
			raster.DrawLine(st, rv[2], rv[0])
		} else {
			raster.DrawTriangle(st, rv[0], rv[1], rv[2])
		}
	case Quads:
		if c.wireMode {
			raster.DrawLine(st, rv[0], rv[1])
			raster.DrawLine(st, rv[1], rv[2])
			raster.DrawLine(st, rv[2], rv[3])
			raster.DrawLine(st, rv[3], rv[0])
		} else {
			raster.DrawTriangle(st, rv[0], rv[1], rv[2])
			raster.DrawTriangle(st, rv[2], rv[3], rv[0])
		}
	}
}

// DrawVertexArray is the bulk-mesh fast path: it feeds mesh triangles to
// the rasterizer directly, bypassing the immediate-mode vertex buffer.
// Each position is transformed by the supplied model transform and the
// context's combined modelview-projection matrix; vertex colors are
// multiplied by the material's diffuse color. The material's texture and
// shader, when set, override the context bindings for this call.
func (c *Context) DrawVertexArray(mesh *Mesh, material Material, transform Matrix) {
	if mesh == nil {
		return
	}

	shader := material.Shader
	if shader == nil {
		shader = c.shader
	}
	texture := material.Texture
	if texture == nil {
		texture = c.texture
	}
	st := c.renderState(shader, texture)

	mvp := c.projection.Mul(c.modelview)
	diffuse := material.diffuse()

	n := mesh.TriangleCount()
	for i := 0; i < n; i++ {
		v0 := mesh.vertexAt(3 * i)
		v1 := mesh.vertexAt(3*i + 1)
		v2 := mesh.vertexAt(3*i + 2)
		v0.Position = transform.MulPosition(v0.Position)
		v1.Position = transform.MulPosition(v1.Position)
		v2.Position = transform.MulPosition(v2.Position)
		v0.Color = v0.Color.Mul(diffuse)
		v1.Color = v1.Color.Mul(diffuse)
		v2.Color = v2.Color.Mul(diffuse)

		r0 := clipVertex(mvp, v0)
		r1 := clipVertex(mvp, v1)
		r2 := clipVertex(mvp, v2)

		if c.wireMode {
			raster.DrawLine(st, r0, r1)
			raster.DrawLine(st, r1, r2)
			raster.DrawLine(st, r2, r0)
		} else {
			raster.DrawTriangle(st, r0, r1, r2)
		}
	}
}

// clipVertex transforms an assembled vertex into the rasterizer's
// clip-space form.
func clipVertex(mvp Matrix, v Vertex) raster.Vertex {
	p := mvp.MulPositionW(v.Position)
	return raster.Vertex{
		Pos:    raster.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: p.W},
		Normal: raster.Vec3{X: v.Normal.X, Y: v.Normal.Y, Z: v.Normal.Z},
		UV:     raster.Vec2{X: v.TexCoord.X, Y: v.TexCoord.Y},
		Color:  raster.RGBA{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: v.Color.A},
	}
}

// framebufferTarget adapts a Framebuffer to the raster.Target interface.
type framebufferTarget struct {
	fb *Framebuffer
}

func (t framebufferTarget) Width() int  { return t.fb.Width() }
func (t framebufferTarget) Height() int { return t.fb.Height() }

func (t framebufferTarget) At(x, y int) raster.RGBA {
	c := t.fb.surface.At(x, y)
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (t framebufferTarget) Set(x, y int, c raster.RGBA) {
	t.fb.surface.Set(x, y, Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (t framebufferTarget) DepthAt(x, y int) float64 {
	return t.fb.DepthAt(x, y)
}

func (t framebufferTarget) SetDepth(x, y int, z float64) {
	t.fb.SetDepth(x, y, z)
}

// shaderBinding adapts the public Shader interface (plus the bound
// texture) to the raster.Shader hook.
type shaderBinding struct {
	shader  Shader
	texture *Surface
}

func (b shaderBinding) Fragment(f raster.Fragment) raster.RGBA {
	out := b.shader.Fragment(Fragment{
		X:       f.X,
		Y:       f.Y,
		Depth:   f.Depth,
		Color:   Color{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: f.Color.A},
		UV:      Vec2{X: f.UV.X, Y: f.UV.Y},
		Normal:  Vec3{X: f.Normal.X, Y: f.Normal.Y, Z: f.Normal.Z},
		Texture: b.texture,
	})
	return raster.RGBA{R: out.R, G: out.G, B: out.B, A: out.A}
}
