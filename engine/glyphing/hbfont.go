package glyphing

import (
	"bytes"

	"github.com/benoitkugler/textlayout/fonts"
	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/npillmayer/glot/core"
	"github.com/npillmayer/glot/core/dimen"
)

// HBFont implements FontFuncs on top of a parsed TrueType/OpenType face.
// Advances are reported in unscaled font units.
type HBFont struct {
	face *hbtt.Font
}

var _ FontFuncs = &HBFont{}

// ParseFont parses raw font bytes into a font collaborator.
func ParseFont(data []byte) (*HBFont, error) {
	face, err := hbtt.Parse(bytes.NewReader(data), true)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot parse font binary")
	}
	return &HBFont{face: face}, nil
}

// GlyphForCodepoint maps a character to the font's nominal glyph.
func (f *HBFont) GlyphForCodepoint(r rune) uint32 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint32(gid)
}

// AdvanceForGlyph returns a glyph's horizontal advance in font units.
func (f *HBFont) AdvanceForGlyph(gid uint32) dimen.DU {
	return dimen.DU(f.face.HorizontalAdvance(fonts.GID(gid)))
}
