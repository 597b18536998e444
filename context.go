package sr

// MatrixMode selects which matrix the transform operations target.
type MatrixMode int

const (
	// Projection targets the projection matrix.
	Projection MatrixMode = iota

	// ModelView targets the modelview matrix (or, while a push is
	// pending, the auxiliary transform matrix).
	ModelView

	// TextureMatrix is accepted but not supported; selecting it leaves
	// the current target unchanged.
	TextureMatrix
)

// String returns the matrix mode name.
func (m MatrixMode) String() string {
	switch m {
	case Projection:
		return "Projection"
	case ModelView:
		return "ModelView"
	case TextureMatrix:
		return "Texture"
	default:
		return "Unknown"
	}
}

// Viewport is a pixel rectangle.
type Viewport struct {
	X, Y, W, H int
}

// matrixStackDepth is the fixed capacity of the matrix stack. Pushing
// past it is a structural error, never a silent overwrite.
const matrixStackDepth = 32

// Context is a software rendering context. It owns the matrix stack, the
// current attribute state, the bound texture/shader/framebuffer, and the
// immediate-mode drawing pipeline.
//
// A Context is not safe for concurrent use: every drawing call may
// rasterize inline before returning, so one Context must be driven by one
// goroutine at a time.
type Context struct {
	width  int
	height int

	// Matrix state
	projection Matrix
	modelview  Matrix
	transform  Matrix
	matrixMode MatrixMode
	stack      [matrixStackDepth]Matrix
	stackDepth int

	// While a push is pending in ModelView mode, transform ops target
	// the auxiliary transform matrix instead of modelview, and vertex
	// positions are pre-multiplied by it at assembly time.
	transformRequired bool

	// Current attribute state
	normal   Vec3
	texcoord Vec2
	color    Color

	// Immediate mode
	drawMode DrawMode
	drawing  bool
	verts    []Vertex

	// Render state
	depthTest bool
	wireMode  bool
	viewport  Viewport

	// Bindings (borrowed, non-owning)
	texture *Surface
	shader  Shader

	defaultFB *Framebuffer
	fb        *Framebuffer
}

// NewContext creates a software rendering context with its own
// framebuffer of the given dimensions. The projection is initialized to
// an orthographic projection over the pixel rectangle with the origin at
// the top-left (Y down), so screen-space drawing works immediately.
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		width:      width,
		height:     height,
		projection: Identity(),
		modelview:  Identity(),
		transform:  Identity(),
		matrixMode: ModelView,
		normal:     Vec3{Z: 1},
		color:      White,
		depthTest:  options.depthTest,
		shader:     options.shader,
		verts:      make([]Vertex, 0, 4),
	}
	if c.shader == nil {
		c.shader = defaultShader{}
	}
	c.defaultFB = newFramebuffer(c, width, height)
	c.fb = c.defaultFB
	c.SetViewport(0, 0, c.defaultFB.Width(), c.defaultFB.Height())

	Logger().Debug("sr: context created", "width", width, "height", height)
	return c
}

// Width returns the width of the context's own framebuffer.
func (c *Context) Width() int { return c.width }

// Height returns the height of the context's own framebuffer.
func (c *Context) Height() int { return c.height }

// Framebuffer returns the currently bound framebuffer.
func (c *Context) Framebuffer() *Framebuffer { return c.fb }

// Image returns the color surface of the currently bound framebuffer.
func (c *Context) Image() *Surface { return c.fb.Surface() }

// NewFramebuffer creates an off-screen render target owned by this
// context, for use with EnableFramebuffer.
func (c *Context) NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	return newFramebuffer(c, width, height), nil
}

// EnableFramebuffer redirects subsequent rasterization to fb. The
// framebuffer must have been created by this context's NewFramebuffer;
// anything else is a detectable programmer error. A nil fb is a no-op.
func (c *Context) EnableFramebuffer(fb *Framebuffer) error {
	if fb == nil {
		return nil
	}
	if fb.owner != c {
		return ErrForeignFramebuffer
	}
	c.fb = fb
	return nil
}

// DisableFramebuffer restores rasterization to the context's own
// framebuffer.
func (c *Context) DisableFramebuffer() {
	c.fb = c.defaultFB
}

// Clear floods the bound framebuffer's color plane and resets its depth
// plane.
func (c *Context) Clear(col Color) {
	c.fb.ClearColor(col)
	c.fb.ClearDepth()
}

// ClearDepth resets the bound framebuffer's depth plane without
// touching color.
func (c *Context) ClearDepth() { c.fb.ClearDepth() }

// EnableDepthTest turns on nearer-wins depth testing.
func (c *Context) EnableDepthTest() { c.depthTest = true }

// DisableDepthTest turns off depth testing; later fragments always win.
func (c *Context) DisableDepthTest() { c.depthTest = false }

// EnableWireMode makes triangles and quads rasterize as edge lines.
func (c *Context) EnableWireMode() { c.wireMode = true }

// DisableWireMode restores filled rasterization.
func (c *Context) DisableWireMode() { c.wireMode = false }

// SetTexture binds a surface as the texture sampled by the shader.
// The reference is borrowed: the context does not extend its lifetime.
// A nil surface unbinds.
func (c *Context) SetTexture(t *Surface) { c.texture = t }

// UnsetTexture removes the texture binding; fragments render untextured.
func (c *Context) UnsetTexture() { c.texture = nil }

// SetDefaultTexture binds a shared 1x1 opaque white texture, which makes
// textured and untextured draw paths behave identically.
func (c *Context) SetDefaultTexture() { c.texture = defaultTexture }

// SetShader binds a fragment shader. A nil shader restores the built-in
// pass-through shader.
func (c *Context) SetShader(s Shader) {
	if s == nil {
		s = defaultShader{}
	}
	c.shader = s
}

// defaultTexture is the surface bound by SetDefaultTexture.
var defaultTexture = func() *Surface {
	s := NewSurface(1, 1)
	s.Fill(White)
	return s
}()

// MatrixMode selects the matrix targeted by subsequent transform calls.
// TextureMatrix is not supported and leaves the selection unchanged.
func (c *Context) MatrixMode(mode MatrixMode) {
	switch mode {
	case Projection, ModelView:
		c.matrixMode = mode
	case TextureMatrix:
		Logger().Warn("sr: texture matrix mode is not supported")
	}
}

// current returns the matrix that transform operations target.
func (c *Context) current() *Matrix {
	if c.matrixMode == Projection {
		return &c.projection
	}
	if c.transformRequired {
		return &c.transform
	}
	return &c.modelview
}

// PushMatrix saves a copy of the current matrix on the stack. In
// ModelView mode it additionally redirects subsequent transform calls to
// the auxiliary transform matrix, which is applied to vertex positions at
// assembly time. Returns ErrMatrixStackOverflow when the fixed-capacity
// stack is full.
func (c *Context) PushMatrix() error {
	if c.stackDepth >= matrixStackDepth {
		return ErrMatrixStackOverflow
	}
	c.stack[c.stackDepth] = *c.current()
	c.stackDepth++
	if c.matrixMode == ModelView {
		c.transformRequired = true
	}
	return nil
}

// PopMatrix restores the current matrix from the top of the stack. When
// the stack returns to depth zero in ModelView mode, the auxiliary
// transform resets to identity and transform calls target modelview
// again. Returns ErrMatrixStackUnderflow on an unmatched pop.
func (c *Context) PopMatrix() error {
	if c.stackDepth == 0 {
		return ErrMatrixStackUnderflow
	}
	c.stackDepth--
	*c.current() = c.stack[c.stackDepth]
	if c.stackDepth == 0 && c.matrixMode == ModelView {
		c.transformRequired = false
		c.transform = Identity()
	}
	return nil
}

// LoadIdentity replaces the current matrix with the identity.
func (c *Context) LoadIdentity() {
	*c.current() = Identity()
}

// MultMatrix multiplies the current matrix by m, composing m to apply to
// vertices first (classic fixed-function ordering).
func (c *Context) MultMatrix(m Matrix) {
	cur := c.current()
	*cur = cur.Mul(m)
}

// Translate composes a translation into the current matrix.
func (c *Context) Translate(x, y, z float64) {
	c.MultMatrix(Translate(Vec3{X: x, Y: y, Z: z}))
}

// Rotate composes a rotation of angle radians about the given axis into
// the current matrix.
func (c *Context) Rotate(axis Vec3, angle float64) {
	c.MultMatrix(Rotate(axis, angle))
}

// Scale composes a scale into the current matrix.
func (c *Context) Scale(x, y, z float64) {
	c.MultMatrix(Scale(Vec3{X: x, Y: y, Z: z}))
}

// Frustum composes a perspective projection into the current matrix.
func (c *Context) Frustum(l, r, b, t, n, f float64) {
	c.MultMatrix(Frustum(l, r, b, t, n, f))
}

// Ortho composes an orthographic projection into the current matrix.
func (c *Context) Ortho(l, r, b, t, n, f float64) {
	c.MultMatrix(Ortho(l, r, b, t, n, f))
}

// SetViewport sets the viewport rectangle and anchors the screen-space
// coordinate convention: the projection is reset to an orthographic
// projection spanning the rectangle with the origin at the top-left
// (Y increases downward) and the modelview is reset to identity.
func (c *Context) SetViewport(x, y, w, h int) {
	if w < 1 || h < 1 {
		Logger().Warn("sr: ignoring zero-size viewport", "w", w, "h", h)
		return
	}
	c.viewport = Viewport{X: x, Y: y, W: w, H: h}
	c.projection = Ortho(0, float64(w), float64(h), 0, -1, 1)
	c.modelview = Identity()
}

// Viewport returns the current viewport rectangle.
func (c *Context) Viewport() Viewport {
	return c.viewport
}

// Projection returns a copy of the projection matrix.
func (c *Context) Projection() Matrix { return c.projection }

// ModelView returns a copy of the modelview matrix.
func (c *Context) ModelView() Matrix { return c.modelview }
