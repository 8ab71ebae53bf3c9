/*
Package glyphing adapts between a raw codepoint buffer and the shaping
host's glyph representation.

The package owns the single entry point of the module, Shape. A shaping
call extracts the buffer's text, short-circuits purely numeric runs, hands
everything else to the sentence orchestrator (package engine/translate),
and finally resolves every glyph's codepoint to a font glyph id and its
horizontal advance through the host's font collaborator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glot.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("glot.glyphs")
}
