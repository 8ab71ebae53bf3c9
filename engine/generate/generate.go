package generate

import (
	"strings"

	"github.com/npillmayer/glot/core"
	"github.com/npillmayer/glot/core/model"
)

// Generate turns a prompt into generated text, running the autoregressive
// loop against the model session: encode the prompt once, then decode
// token by token until the end-of-sequence token is produced or the
// output bound is reached.
//
// Errors carry one of the codes core.ETOKENIZE, core.EENCODE,
// core.EDECODE or core.ESAMPLE; callers are expected to treat them as
// "use the original text unchanged", never as fatal.
func Generate(session *model.Session, p Params) (string, error) {
	if session == nil || session.Model == nil {
		return "", core.Error(core.EINVALID, "generation without a model session")
	}
	session.Model.Reset() // no cross-call state leakage
	smpl := newSampler(p.Seed, p.Temperature, p.TopP)
	maxLength := p.maxLength()

	ids, err := session.Tokenizer.Encode(p.Prompt)
	if err != nil {
		return "", core.WrapError(err, core.ETOKENIZE, "cannot tokenize prompt")
	}
	enc, err := session.Model.Encode(ids)
	if err != nil {
		return "", core.WrapError(err, core.EENCODE, "encoder pass failed")
	}

	output := []int{session.Config.DecoderStart()}
	var text strings.Builder
	for step := 0; len(output) <= maxLength; step++ {
		decoderInput := output
		if step > 0 {
			decoderInput = output[len(output)-1:] // incremental decoding
		}
		logits, err := session.Model.Decode(decoderInput, enc)
		if err != nil {
			return "", core.WrapError(err, core.EDECODE, "decoder pass failed")
		}
		if p.RepeatPenalty > 0 && p.RepeatPenalty != 1.0 {
			start := len(output) - p.RepeatLastN
			if start < 0 {
				start = 0
			}
			logits = applyRepeatPenalty(logits, p.RepeatPenalty, output[start:])
		}
		next, err := smpl.Sample(logits)
		if err != nil {
			return "", err
		}
		if next == session.Config.EOSTokenID {
			break // EOS is not part of the output
		}
		output = append(output, next)
		if piece, ok := session.Tokenizer.IDToToken(next); ok {
			piece = strings.ReplaceAll(piece, model.WordBoundaryMarker, " ")
			piece = strings.ReplaceAll(piece, model.NewlineMarker, "\n")
			text.WriteString(piece)
		}
	}
	tracer().Debugf("generated %d tokens for prompt %q", len(output)-1, p.Prompt)
	return text.String(), nil
}
