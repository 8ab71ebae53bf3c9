package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/glot/core"
)

// VocabTokenizer is a unigram-vocabulary tokenizer, built from raw
// tokenizer-definition bytes. Text is segmented greedily into the longest
// vocabulary pieces, with a byte-fallback for characters not covered by
// any piece. It implements interface Tokenizer.
//
// This is glue for hosts without a native tokenizer backend; sessions may
// as well inject their own Tokenizer.
type VocabTokenizer struct {
	pieces  *trie.Trie // piece → id
	surface []string   // id → piece
	config  Config
}

var _ Tokenizer = &VocabTokenizer{}

// tokenizerDef mirrors the layout of the usual tokenizer.json files.
// A flat piece→id map is accepted as well.
type tokenizerDef struct {
	Model struct {
		Vocab map[string]int `json:"vocab"`
	} `json:"model"`
}

// NewVocabTokenizer parses raw tokenizer-definition bytes (JSON) and
// builds the piece inventory. Failure carries core.EMODELLOAD.
func NewVocabTokenizer(tokdef []byte, cfg Config) (*VocabTokenizer, error) {
	var def tokenizerDef
	if err := json.Unmarshal(tokdef, &def); err != nil {
		return nil, core.WrapError(err, core.EMODELLOAD, "cannot parse tokenizer definition")
	}
	vocab := def.Model.Vocab
	if len(vocab) == 0 {
		flat := map[string]int{}
		if err := json.Unmarshal(tokdef, &flat); err != nil || len(flat) == 0 {
			return nil, core.Error(core.EMODELLOAD, "tokenizer definition contains no vocabulary")
		}
		vocab = flat
	}
	maxID := 0
	for _, id := range vocab {
		if id > maxID {
			maxID = id
		}
	}
	t := &VocabTokenizer{
		pieces:  trie.New(),
		surface: make([]string, maxID+1),
		config:  cfg,
	}
	for piece, id := range vocab {
		if id < 0 {
			return nil, core.Error(core.EMODELLOAD, "vocabulary id for %q is negative", piece)
		}
		t.pieces.Add(piece, id)
		t.surface[id] = piece
	}
	tracer().Debugf("tokenizer has %d pieces", len(vocab))
	return t, nil
}

// Encode maps text to token ids: greedy longest-prefix matching over the
// piece inventory, after normalizing spaces to the word-boundary marker.
// The end-of-sequence token is appended.
func (t *VocabTokenizer) Encode(text string) ([]int, error) {
	norm := WordBoundaryMarker + strings.ReplaceAll(text, " ", WordBoundaryMarker)
	norm = strings.ReplaceAll(norm, "\n", NewlineMarker)
	ids := make([]int, 0, len(norm)/2)
	for len(norm) > 0 {
		piece, id := t.longestPiece(norm)
		if piece == "" {
			// byte fallback, '<0xXX>' pieces
			ok := false
			for _, b := range []byte(string([]rune(norm)[:1])) {
				if n, found := t.pieces.Find(fmt.Sprintf("<0x%02X>", b)); found {
					ids = append(ids, n.Meta().(int))
					ok = true
				}
			}
			if !ok {
				return nil, core.Error(core.ETOKENIZE, "no vocabulary piece covers %q", norm[:1])
			}
			norm = string([]rune(norm)[1:])
			continue
		}
		ids = append(ids, id)
		norm = norm[len(piece):]
	}
	ids = append(ids, t.config.EOSTokenID)
	return ids, nil
}

// longestPiece finds the longest vocabulary piece prefixing s.
func (t *VocabTokenizer) longestPiece(s string) (string, int) {
	piece, id := "", -1
	prefix := ""
	for _, r := range s {
		prefix += string(r)
		if !t.pieces.HasKeysWithPrefix(prefix) {
			break
		}
		if n, ok := t.pieces.Find(prefix); ok {
			piece, id = prefix, n.Meta().(int)
		}
	}
	return piece, id
}

// IDToToken maps a token id back to its piece text.
func (t *VocabTokenizer) IDToToken(id int) (string, bool) {
	if id < 0 || id >= len(t.surface) || t.surface[id] == "" {
		return "", false
	}
	return t.surface[id], true
}
