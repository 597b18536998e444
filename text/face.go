package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a font face at a specific size. Faces are cheap to create and
// share their FontSource's parsed font; create one per size you need.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// faceConfig holds per-face options.
type faceConfig struct {
	hinting   Hinting
	direction Direction
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting:   HintingFull,
		direction: DirectionLTR,
	}
}

// FaceOption configures a Face during creation.
type FaceOption func(*faceConfig)

// WithHinting sets the hinting mode used for metrics and rasterization.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithDirection sets the base text direction for shaping.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.parsed.Metrics(&buf, f.ppem(), f.fontHinting())
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the total advance width of the text in pixels, summed
// per rune without shaping. For shaped measurement use Measure.
func (f *Face) Advance(text string) float64 {
	var buf sfnt.Buffer
	total := 0.0
	for _, r := range text {
		gid, err := f.source.parsed.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.parsed.GlyphAdvance(&buf, gid, f.ppem(), f.fontHinting())
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	gid, err := f.source.parsed.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Direction returns the base text direction for this face.
func (f *Face) Direction() Direction { return f.config.direction }

func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

func (f *Face) fontHinting() font.Hinting {
	switch f.config.hinting {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
