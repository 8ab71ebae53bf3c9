/*
Package translate orchestrates sentence-level machine translation of a
text buffer during shaping.

The orchestrator segments a buffer into sentence units, decides per unit
whether to translate or pass text through verbatim, memoizes translation
results for the process lifetime, and re-emits every output character
with a cluster index that stays within the bounds of the original buffer.
Downstream cursor and selection logic relies on those bounds.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package translate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glot.translate'.
func tracer() tracing.Trace {
	return tracing.Select("glot.translate")
}
