package text

import "image"

// GlyphID is a glyph index within a font, assigned by the font file.
type GlyphID uint16

// ShapedGlyph is one positioned glyph produced by shaping. Positions are
// in pixels relative to the text origin on the baseline.
type ShapedGlyph struct {
	// GID is the glyph index in the font. After shaping this need not
	// correspond to a single rune (ligatures collapse several).
	GID GlyphID

	// Cluster is the byte index in the source string this glyph maps to.
	Cluster int

	// X, Y are the pen position of the glyph, including shaping offsets.
	X, Y float64

	// XAdvance is how far the pen moved after this glyph.
	XAdvance float64
}

// GlyphImage is a rasterized glyph: an alpha mask plus its placement
// relative to the pen position.
type GlyphImage struct {
	// Mask is the coverage mask. Its bounds are positioned relative to
	// the glyph origin on the baseline, with Y growing downward.
	Mask *image.Alpha

	// Advance is the horizontal advance width in pixels.
	Advance float64
}

// Empty reports whether the glyph has no visible coverage (e.g. a space).
func (g *GlyphImage) Empty() bool {
	return g == nil || g.Mask == nil || g.Mask.Bounds().Empty()
}
