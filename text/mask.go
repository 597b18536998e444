package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterizeGlyph loads the outline for gid at the face's size and fills
// it into an alpha mask. The mask's bounds are positioned relative to the
// glyph origin on the baseline, Y growing downward, so a caller places it
// at (penX+Bounds.Min.X, penY+Bounds.Min.Y).
//
// Glyphs without an outline (spaces) yield a GlyphImage with a nil Mask.
func rasterizeGlyph(face *Face, gid GlyphID) (*GlyphImage, error) {
	f := face.source.parsed

	var buf sfnt.Buffer
	segments, err := f.LoadGlyph(&buf, sfnt.GlyphIndex(gid), face.ppem(), nil)
	if err != nil {
		return nil, ErrGlyphNotFound
	}

	advance := 0.0
	if adv, err := f.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), face.ppem(), face.fontHinting()); err == nil {
		advance = fixedToFloat(adv)
	}

	if len(segments) == 0 {
		return &GlyphImage{Advance: advance}, nil
	}

	// Outline bounds in 26.6 pixels, origin on the baseline.
	bounds := segments.Bounds()
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		return &GlyphImage{Advance: advance}, nil
	}

	// The vector rasterizer wants coordinates in the positive quadrant,
	// so shift by the floored minimum and shift the mask rect back after.
	dx := float32(minX)
	dy := float32(minY)

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(segX(seg.Args[0])-dx, segY(seg.Args[0])-dy)
		case sfnt.SegmentOpLineTo:
			r.LineTo(segX(seg.Args[0])-dx, segY(seg.Args[0])-dy)
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(
				segX(seg.Args[0])-dx, segY(seg.Args[0])-dy,
				segX(seg.Args[1])-dx, segY(seg.Args[1])-dy)
		case sfnt.SegmentOpCubeTo:
			r.CubeTo(
				segX(seg.Args[0])-dx, segY(seg.Args[0])-dy,
				segX(seg.Args[1])-dx, segY(seg.Args[1])-dy,
				segX(seg.Args[2])-dx, segY(seg.Args[2])-dy)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(image.Point{X: minX, Y: minY})

	return &GlyphImage{Mask: mask, Advance: advance}, nil
}

func segX(p fixed.Point26_6) float32 { return float32(p.X) / 64 }
func segY(p fixed.Point26_6) float32 { return float32(p.Y) / 64 }
