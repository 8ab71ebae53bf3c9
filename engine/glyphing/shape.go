package glyphing

import (
	"unicode/utf8"

	"github.com/npillmayer/glot/core/dimen"
	"github.com/npillmayer/glot/engine/translate"
)

// FontFuncs is the boundary to the host's font. Implementations resolve
// characters to font glyph ids and glyph ids to horizontal advances.
type FontFuncs interface {
	// GlyphForCodepoint returns the font glyph id for a character.
	// 0 denotes .notdef.
	GlyphForCodepoint(r rune) uint32

	// AdvanceForGlyph returns the horizontal advance of a glyph, in
	// design units.
	AdvanceForGlyph(gid uint32) dimen.DU
}

// FeatureRange tells the host to turn an OpenType feature on or off for a
// run of code-points. Features are owned by the host; Shape passes them
// through untouched.
type FeatureRange struct {
	Feature    uint32 // 4-letter feature tag
	Arg        int    // optional argument for this feature
	On         bool   // turn it on or off?
	Start, End int    // position of code-points to apply feature for
}

// Shape is the module's entry point, called by the shaping host with a
// font, a glyph buffer and a feature list. It returns 1 on success and 0
// on failure (model initialization failure); glyph mutations are visible
// to the host upon return.
//
// A buffer that parses as a single number maps 1:1, character for
// character. Everything else runs through the sentence orchestrator. In
// both cases a final pass resolves every glyph's codepoint to a font
// glyph id and that glyph id to its advance, so the returned buffer is
// always a valid, if possibly degraded, glyph buffer.
func Shape(ctx *Context, font FontFuncs, buf *Buffer, features []FeatureRange) int {
	if ctx == nil || font == nil || buf == nil {
		return 0
	}
	text := buf.Text()
	originalLength := utf8.RuneCountInString(text)
	tracer().Debugf("buffer: %q", text)

	switch {
	case translate.IsNumber(text) || ctx.passthrough:
		buf.Glyphs = buf.Glyphs[:0]
		i := 0
		for _, r := range text {
			buf.Glyphs = append(buf.Glyphs, Glyph{Codepoint: uint32(r), Cluster: i})
			i++
		}
	default:
		if err := ctx.init(); err != nil {
			return 0
		}
		placed := ctx.translator.TranslateBuffer(text, originalLength)
		buf.Glyphs = buf.Glyphs[:0]
		for _, p := range placed {
			buf.Glyphs = append(buf.Glyphs, Glyph{Codepoint: uint32(p.Codepoint), Cluster: p.Cluster})
		}
	}

	for i := range buf.Glyphs {
		g := &buf.Glyphs[i]
		g.Codepoint = font.GlyphForCodepoint(rune(g.Codepoint))
		g.XAdvance = font.AdvanceForGlyph(g.Codepoint)
	}
	return 1
}
