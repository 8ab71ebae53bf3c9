package translate

import (
	"fmt"

	"github.com/npillmayer/glot/core/model"
	"github.com/npillmayer/glot/engine/generate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Placed is one output character together with the cluster index linking
// it back to a position of the original buffer.
type Placed struct {
	Codepoint rune
	Cluster   int
}

// Translator is the sentence-level orchestrator. It owns the translation
// cache and the per-call generation parameters; the model session is
// provided by the host.
type Translator struct {
	session *model.Session
	cache   *Cache
	prompt  string // task instruction, prepended to every sentence
	params  generate.Params
}

// Option configures a Translator.
type Option func(*Translator)

// WithLanguagePair sets the translation direction. The task prompt is
// composed from the pair's display names.
func WithLanguagePair(from, to language.Tag) Option {
	return func(t *Translator) {
		namer := display.English.Languages()
		t.prompt = fmt.Sprintf("translate %s to %s:", namer.Name(from), namer.Name(to))
	}
}

// WithTaskPrompt overrides the task instruction verbatim.
func WithTaskPrompt(prompt string) Option {
	return func(t *Translator) {
		t.prompt = prompt
	}
}

// WithParams overrides the generation parameters used per sentence.
// The Prompt field is ignored; it is composed per unit.
func WithParams(p generate.Params) Option {
	return func(t *Translator) {
		t.params = p
	}
}

// NewTranslator creates an orchestrator on top of a model session.
// Without options, the translation direction is English→German and
// generation runs deterministically with the canonical repeat penalty
// of 1.1.
func NewTranslator(session *model.Session, opts ...Option) *Translator {
	t := &Translator{
		session: session,
		cache:   NewCache(),
		params: generate.Params{
			Temperature:   0,
			Seed:          0,
			TopP:          1.0,
			RepeatPenalty: 1.1,
			RepeatLastN:   1,
			MaxLength:     generate.MaxOutputLength,
		},
	}
	WithLanguagePair(language.English, language.German)(t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Cache exposes the translator's memoization table.
func (t *Translator) Cache() *Cache {
	return t.cache
}

// TranslateBuffer maps the buffer's text to a sequence of output
// characters with corrected cluster indices. originalLength is the
// character count of the pre-translation buffer; every emitted cluster
// index stays within [0, originalLength).
//
// Per sentence unit:
//   - a lone sentence-terminal mark passes through as a standalone glyph;
//   - the final unit passes through untranslated when it lacks a terminal
//     mark, under the assumption the sentence is not yet complete;
//   - any other unit is translated through the cache, falling back to the
//     original text when generation fails.
//
// Translated text is usually longer than its source, so once the cluster
// counter reaches originalLength, all further characters share the final
// valid cluster index.
func (t *Translator) TranslateBuffer(text string, originalLength int) []Placed {
	units := sentenceUnits(text)
	placed := make([]Placed, 0, len(text))
	cluster := 0
	nextCluster := func() int {
		if cluster < originalLength {
			c := cluster
			cluster++
			return c
		}
		if originalLength <= 0 {
			return 0
		}
		return originalLength - 1
	}
	for i, unit := range units {
		runes := []rune(unit)
		if len(runes) == 1 && isTerminal(runes[0]) {
			placed = append(placed, Placed{Codepoint: runes[0], Cluster: nextCluster()})
			continue
		}
		out := unit
		isLast := i == len(units)-1
		if !isLast || isTerminal(runes[len(runes)-1]) {
			out = t.cache.GetOrCompute(unit, func() (string, error) {
				params := t.params
				params.Prompt = t.prompt + unit
				return generate.Generate(t.session, params)
			})
			tracer().Debugf("unit %q => %q", unit, out)
		}
		for _, r := range out {
			placed = append(placed, Placed{Codepoint: r, Cluster: nextCluster()})
		}
	}
	return placed
}
