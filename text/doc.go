// Package text renders text onto sr surfaces.
//
// A FontSource wraps a parsed TTF or OTF font and hands out lightweight
// Face values at specific sizes. Shaping goes through go-text/typesetting's
// HarfBuzz port, so kerning, ligatures, and right-to-left scripts come out
// correctly. Shaped glyphs are rasterized to alpha masks with
// golang.org/x/image/vector and kept in a sharded LRU cache, making
// repeated draws of the same glyphs cheap.
//
// Typical usage:
//
//	src, err := text.NewFontSourceFromFile("some.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	face := src.Face(24)
//	text.Draw(dc.Image(), "hello", face, 10, 40, sr.White)
//
// The draw position (x, y) is the baseline origin of the first glyph.
package text
