package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper converts text into positioned glyphs using HarfBuzz shaping via
// go-text/typesetting. Kerning pairs, ligatures, and complex scripts come
// out correctly, which a per-rune advance walk cannot do.
//
// Shaper is safe for concurrent use. Parsed font.Font objects are cached
// per FontSource (font.Font is read-only and thread-safe), while the
// HarfbuzzShaper instances, which carry mutable buffers, are pooled.
type Shaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape shapes one directional run of text with the given face and
// returns the positioned glyphs. Mixed-direction strings should be split
// with SegmentText first and each segment shaped on its own.
func (s *Shaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	parsed, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return nil
	}

	// font.Face is not safe for concurrent use; wrapping the shared Font
	// per call is cheap.
	runes := []rune(text)
	dir := mapDirection(face.Direction())

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(parsed),
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns the cached go-text Font for the source, parsing
// and caching it on first use.
func (s *Shaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}

	// Cache the thread-safe Font, not the Face.
	s.fontCache[source] = face.Font
	return face.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *Shaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. For
// mixed-script text, split runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	x := 0.0
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)),
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
