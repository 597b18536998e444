package sr

import "math"

// Framebuffer is a render target: a color surface plus a parallel depth
// plane with identical dimensions. Framebuffers are created through
// Context.NewFramebuffer so that every framebuffer records the context it
// belongs to; binding one to a foreign context is a structural error.
type Framebuffer struct {
	owner   *Context
	surface *Surface
	depth   []float64
}

func newFramebuffer(owner *Context, width, height int) *Framebuffer {
	fb := &Framebuffer{
		owner:   owner,
		surface: NewSurface(width, height),
	}
	fb.depth = make([]float64, fb.surface.Width()*fb.surface.Height())
	fb.ClearDepth()
	return fb
}

// Surface returns the color plane of the framebuffer.
func (fb *Framebuffer) Surface() *Surface {
	return fb.surface
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.surface.Width()
}

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.surface.Height()
}

// ClearColor floods the color plane with a color.
func (fb *Framebuffer) ClearColor(c Color) {
	fb.surface.Fill(c)
}

// ClearDepth resets every depth sample to +Inf so any finite fragment
// passes the first test. Uses copy-doubling for large planes.
func (fb *Framebuffer) ClearDepth() {
	n := len(fb.depth)
	if n == 0 {
		return
	}
	fb.depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// DepthAt returns the stored depth at a pixel. Out-of-range coordinates
// return +Inf.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.surface.Width() || y < 0 || y >= fb.surface.Height() {
		return math.Inf(1)
	}
	return fb.depth[y*fb.surface.Width()+x]
}

// SetDepth stores a depth sample at a pixel. Out-of-range coordinates are
// ignored.
func (fb *Framebuffer) SetDepth(x, y int, z float64) {
	if x < 0 || x >= fb.surface.Width() || y < 0 || y >= fb.surface.Height() {
		return
	}
	fb.depth[y*fb.surface.Width()+x] = z
}
