/*
Package generate drives autoregressive token generation against an
encoder-decoder model session.

The package owns the generation loop only: sampling policy, repetition
control and stopping rules. Tensor math is left to the model collaborator
(see package core/model), which is called through exactly two operations,
encode and decode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glot.generate'.
func tracer() tracing.Trace {
	return tracing.Select("glot.generate")
}
