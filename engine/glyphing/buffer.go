package glyphing

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/glot/core/dimen"
)

// A Glyph is one shaped output unit. Before the final resolution pass its
// Codepoint holds a raw character value; afterwards a font glyph id.
// Cluster links the glyph back to a position of the original input, which
// downstream cursor and selection logic requires to be a valid one.
type Glyph struct {
	Codepoint uint32
	Cluster   int
	XAdvance  dimen.DU
	YAdvance  dimen.DU
	XOffset   dimen.DU
	YOffset   dimen.DU
	Flags     uint32
}

// Buffer is the glyph buffer shared with the shaping host. The host owns
// read/write semantics; mutations become visible to it upon return from
// Shape.
type Buffer struct {
	Glyphs []Glyph
}

// NewBuffer creates a buffer from text the way a host would fill it before
// glyph mapping: one glyph per character, codepoint holding the raw
// character, cluster equal to the character position.
func NewBuffer(text string) *Buffer {
	b := &Buffer{Glyphs: make([]Glyph, 0, utf8.RuneCountInString(text))}
	i := 0
	for _, r := range text {
		b.Glyphs = append(b.Glyphs, Glyph{Codepoint: uint32(r), Cluster: i})
		i++
	}
	return b
}

// Text reconstructs the buffer's text, treating the low byte of each
// codepoint as one UTF-8 byte. Decoding is best-effort: invalid sequences
// are replaced, not repaired.
func (b *Buffer) Text() string {
	raw := make([]byte, len(b.Glyphs))
	for i, g := range b.Glyphs {
		raw[i] = byte(g.Codepoint)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
