package model

// EncoderState is the opaque model-internal representation produced by the
// encoder pass. It is created by Encode and handed back, untouched, to
// every subsequent Decode step of the same generation call.
type EncoderState interface{}

// EncoderDecoder is the boundary to the sequence-model collaborator.
// Implementations own the tensor math; this module only drives them.
type EncoderDecoder interface {
	// Reset clears any model-internal recurrent or attention cache.
	// It is called before each independent generation, so that no state
	// leaks between calls.
	Reset()

	// Encode runs the encoder over a tokenized prompt.
	Encode(ids []int) (EncoderState, error)

	// Decode runs one decoder step. On the first step of a generation, ids
	// holds the complete output sequence so far; on subsequent steps only
	// the most recently produced token (incremental decoding). It returns
	// one logit per vocabulary entry.
	Decode(ids []int, enc EncoderState) ([]float32, error)
}

// Tokenizer is the boundary to the tokenizer collaborator.
type Tokenizer interface {
	// Encode maps text to a sequence of token ids.
	Encode(text string) ([]int, error)

	// IDToToken maps a token id back to its displayable text fragment.
	// The second return value is false for ids without a surface form.
	IDToToken(id int) (string, bool)
}

// Token-library text markers, substituted during output assembly.
const (
	WordBoundaryMarker = "▁"      // '▁', sentencepiece word boundary
	NewlineMarker      = "<0x0A>" // byte-fallback newline
)
