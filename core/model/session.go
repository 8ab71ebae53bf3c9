package model

import (
	"encoding/json"

	"github.com/npillmayer/glot/core"
)

// Config is the model configuration, parsed from raw JSON bytes.
// Field names follow the usual config.json conventions of encoder-decoder
// checkpoints (T5, Marian, mBART).
type Config struct {
	ModelType           string `json:"model_type"`
	VocabSize           int    `json:"vocab_size"`
	PadTokenID          int    `json:"pad_token_id"`
	EOSTokenID          int    `json:"eos_token_id"`
	DecoderStartTokenID *int   `json:"decoder_start_token_id"`
	MaxLength           int    `json:"max_length"`
}

// DecoderStart returns the token id the output sequence is seeded with.
// Checkpoints without an explicit decoder_start_token_id start from the
// pad token.
func (c Config) DecoderStart() int {
	if c.DecoderStartTokenID != nil {
		return *c.DecoderStartTokenID
	}
	return c.PadTokenID
}

// ParseConfig parses raw configuration bytes (JSON).
func ParseConfig(raw []byte) (Config, error) {
	c := Config{
		EOSTokenID: 1, // T5 convention; pad defaults to 0
		MaxLength:  512,
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, core.WrapError(err, core.EMODELLOAD, "cannot parse model configuration")
	}
	return c, nil
}

// Builder constructs the encoder-decoder network from raw weight bytes.
// The network graph and weight storage live outside of this module;
// a Builder is the hook where a backend plugs them in.
type Builder func(weights []byte, config Config) (EncoderDecoder, error)

// Session holds a loaded model together with its tokenizer and
// configuration. A session lives for the process lifetime once
// constructed; construction is fallible.
type Session struct {
	Model     EncoderDecoder
	Tokenizer Tokenizer
	Config    Config
}

// Load constructs a session from raw weight bytes, raw tokenizer-definition
// bytes and raw configuration bytes. Any failure carries the code
// core.EMODELLOAD, which is fatal to all translation for the call.
func Load(weights, tokdef, config []byte, build Builder) (*Session, error) {
	cfg, err := ParseConfig(config)
	if err != nil {
		return nil, err
	}
	tok, err := NewVocabTokenizer(tokdef, cfg)
	if err != nil {
		return nil, err
	}
	if build == nil {
		return nil, core.Error(core.EMODELLOAD, "no model backend registered")
	}
	net, err := build(weights, cfg)
	if err != nil {
		return nil, core.WrapError(err, core.EMODELLOAD, "cannot build model network")
	}
	tracer().Infof("loaded %s model, vocabulary of %d", cfg.ModelType, cfg.VocabSize)
	return &Session{
		Model:     net,
		Tokenizer: tok,
		Config:    cfg,
	}, nil
}
