package text

import (
	"math"

	"github.com/gogpu/sr"
)

// defaultShaper and defaultCache back the package-level Draw and Measure
// calls. Both are safe for concurrent use.
var (
	defaultShaper = NewShaper()
	defaultCache  = NewGlyphCache()
)

// Draw renders text onto dst with the baseline origin at (x, y). The text
// is split into directional runs, shaped, and each glyph mask composited
// in col through the source-over blend. Masks come from the shared glyph
// cache, so repeated draws of the same glyphs are cheap.
func Draw(dst *sr.Surface, s string, face *Face, x, y float64, col sr.Color) {
	if dst == nil || s == "" || face == nil || col.A == 0 {
		return
	}

	penX := x
	for _, seg := range runsFor(s, face) {
		run := seg.Text
		if seg.Direction != face.Direction() {
			// Shape the run with its resolved direction.
			segFace := face.source.Face(face.size,
				WithHinting(face.config.hinting), WithDirection(seg.Direction))
			penX = drawRun(dst, run, segFace, penX, y, col)
			continue
		}
		penX = drawRun(dst, run, face, penX, y, col)
	}
}

// runsFor segments s by direction using the face's base direction.
func runsFor(s string, face *Face) []Segment {
	if face.Direction() == DirectionRTL {
		return SegmentTextRTL(s)
	}
	return SegmentText(s)
}

// drawRun shapes and draws a single directional run, returning the
// advanced pen position.
func drawRun(dst *sr.Surface, run string, face *Face, penX, penY float64, col sr.Color) float64 {
	for _, g := range defaultShaper.Shape(run, face) {
		mask := defaultCache.GetOrCreate(maskKeyFor(face, g.GID), func() *GlyphImage {
			gi, err := rasterizeGlyph(face, g.GID)
			if err != nil {
				return nil
			}
			return gi
		})
		if !mask.Empty() {
			drawMask(dst, mask, penX+g.X, penY+g.Y, col)
		}
		penX += g.XAdvance
	}
	return penX
}

// maskKeyFor builds the cache key for one glyph of a face.
func maskKeyFor(face *Face, gid GlyphID) MaskKey {
	return MaskKey{
		FontID:  face.source.id,
		GID:     gid,
		Size:    int32(face.size * 64),
		Hinting: face.config.hinting,
	}
}

// drawMask composites a glyph mask onto the surface at the given pen
// position, tinting the coverage with col.
func drawMask(dst *sr.Surface, g *GlyphImage, penX, penY float64, col sr.Color) {
	bounds := g.Mask.Bounds()
	originX := int(math.Round(penX)) + bounds.Min.X
	originY := int(math.Round(penY)) + bounds.Min.Y

	for my := 0; my < bounds.Dy(); my++ {
		dy := originY + my
		if dy < 0 || dy >= dst.Height() {
			continue
		}
		for mx := 0; mx < bounds.Dx(); mx++ {
			dx := originX + mx
			if dx < 0 || dx >= dst.Width() {
				continue
			}
			coverage := g.Mask.AlphaAt(bounds.Min.X+mx, bounds.Min.Y+my).A
			if coverage == 0 {
				continue
			}
			src := col
			src.A = uint8((int(col.A)*int(coverage) + 127) / 255)
			dst.Set(dx, dy, src.Over(dst.At(dx, dy)))
		}
	}
}

// Measure returns the shaped advance width of s and the face's line
// height. Shaping accounts for kerning and ligatures, so this matches
// what Draw will produce.
func Measure(s string, face *Face) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	for _, seg := range runsFor(s, face) {
		for _, g := range defaultShaper.Shape(seg.Text, face) {
			width += g.XAdvance
		}
	}
	return width, face.Metrics().LineHeight()
}
