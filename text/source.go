package text

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// nextSourceID hands out unique font identifiers for cache keys.
var nextSourceID atomic.Uint64

// FontSource represents a loaded font file. One FontSource can create
// multiple Face instances at different sizes; it is heavyweight and should
// be shared across the application.
//
// FontSource is safe for concurrent use and must not be copied after
// creation (enforced by copyCheck).
type FontSource struct {
	// addr points to the FontSource itself for copy protection.
	addr *FontSource

	// id keys glyph cache entries for this font.
	id uint64

	data   []byte
	parsed *sfnt.Font
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF). The
// data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		id:     nextSourceID.Add(1),
		data:   dataCopy,
		parsed: parsed,
	}
	s.addr = s
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face creates a Face at the specified size in pixels per em. Multiple
// faces can be created from the same FontSource; a Face is lightweight
// and shares the source's parsed font.
//
// Panics if s is nil (e.g. when a NewFontSource error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil - did you check the error from NewFontSource?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Face{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name, or "Unknown Font" when the font does
// not carry one.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func extractFontName(parsed *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := parsed.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := parsed.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
