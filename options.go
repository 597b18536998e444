package sr

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default context
//	dc := sr.NewContext(800, 600)
//
//	// Custom shader with depth testing enabled from the start
//	dc := sr.NewContext(800, 600, sr.WithShader(myShader), sr.WithDepthTest())
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	shader    Shader
	depthTest bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		shader:    nil, // Will be set to the built-in pass-through shader if nil
		depthTest: false,
	}
}

// WithShader binds a custom fragment shader at creation time. Passing
// nil keeps the built-in pass-through shader.
func WithShader(s Shader) ContextOption {
	return func(o *contextOptions) {
		o.shader = s
	}
}

// WithDepthTest enables depth testing from creation, equivalent to
// calling EnableDepthTest on a new context.
func WithDepthTest() ContextOption {
	return func(o *contextOptions) {
		o.depthTest = true
	}
}
