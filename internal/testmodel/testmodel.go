// Package testmodel provides a scripted encoder-decoder collaborator for
// testing the generation and orchestration layers without a real network.
package testmodel

import (
	"github.com/npillmayer/glot/core/model"
)

// Token ids the scripted sessions use.
const (
	PadID = 0
	EOSID = 1
)

// Model is a scripted EncoderDecoder. Each decode step produces a logits
// vector whose arg-max is the next id of Script; after the script is
// exhausted, the end-of-sequence token. Counters record collaborator
// calls for assertions.
type Model struct {
	VocabSize int
	Script    []int
	EncodeErr error // returned by Encode when set
	DecodeErr error // returned by Decode when set

	Resets  int
	Encodes int
	Decodes int
	step    int
}

var _ model.EncoderDecoder = &Model{}

func (m *Model) Reset() {
	m.step = 0
	m.Resets++
}

func (m *Model) Encode(ids []int) (model.EncoderState, error) {
	m.Encodes++
	if m.EncodeErr != nil {
		return nil, m.EncodeErr
	}
	return ids, nil
}

func (m *Model) Decode(ids []int, enc model.EncoderState) ([]float32, error) {
	m.Decodes++
	if m.DecodeErr != nil {
		return nil, m.DecodeErr
	}
	next := EOSID
	if m.step < len(m.Script) {
		next = m.Script[m.step]
	}
	m.step++
	logits := make([]float32, m.VocabSize)
	for i := range logits {
		logits[i] = -10
	}
	logits[next] = 10
	return logits, nil
}

// Tokenizer is a table-driven Tokenizer stand-in.
type Tokenizer struct {
	Pieces    map[int]string // id → surface piece
	PromptIDs []int          // returned for every Encode call
	EncodeErr error
}

var _ model.Tokenizer = &Tokenizer{}

func (t *Tokenizer) Encode(text string) ([]int, error) {
	if t.EncodeErr != nil {
		return nil, t.EncodeErr
	}
	if len(t.PromptIDs) > 0 {
		return t.PromptIDs, nil
	}
	return []int{2, EOSID}, nil
}

func (t *Tokenizer) IDToToken(id int) (string, bool) {
	piece, ok := t.Pieces[id]
	return piece, ok
}

// Session assembles a model session around a scripted model. pieces maps
// the scripted token ids to their surface text.
func Session(m *Model, pieces map[int]string) *model.Session {
	return &model.Session{
		Model:     m,
		Tokenizer: &Tokenizer{Pieces: pieces},
		Config: model.Config{
			ModelType:  "scripted",
			VocabSize:  m.VocabSize,
			PadTokenID: PadID,
			EOSTokenID: EOSID,
			MaxLength:  512,
		},
	}
}
