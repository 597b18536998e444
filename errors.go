package sr

import "errors"

// Sentinel errors for the sr package.
//
// Structural errors (stack overflow/underflow, foreign framebuffer) are
// returned to the caller of the offending operation. Defensive conditions
// such as a nil texture, a degenerate triangle, or an empty clipped
// bounding box are absorbed as no-ops and never surface as errors.
var (
	// ErrMatrixStackOverflow is returned by PushMatrix when the fixed
	// capacity matrix stack is full.
	ErrMatrixStackOverflow = errors.New("sr: matrix stack overflow")

	// ErrMatrixStackUnderflow is returned by PopMatrix when the matrix
	// stack is empty (unmatched pop).
	ErrMatrixStackUnderflow = errors.New("sr: matrix stack underflow")

	// ErrForeignFramebuffer is returned by EnableFramebuffer when the
	// framebuffer was created by a different context.
	ErrForeignFramebuffer = errors.New("sr: framebuffer belongs to a different context")

	// ErrInvalidDimensions is returned when a width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("sr: invalid dimensions")
)
