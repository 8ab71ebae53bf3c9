/*
Package model manages sessions of an encoder-decoder sequence model.

The network forward pass itself is not part of this package. It is an
external collaborator, visible only through interface EncoderDecoder,
i.e. as one encode operation and one decode operation. Clients hand in
a Builder which constructs the network from raw weight bytes; this
package contributes the surrounding session state: configuration
parsing, tokenizer construction and lifecycle of the loaded model.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package model

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glot.model'.
func tracer() tracing.Trace {
	return tracing.Select("glot.model")
}
