package translate_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/glot/engine/translate"
	"github.com/npillmayer/glot/internal/testmodel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// germanSession scripts every generation to produce " Hallo."
func germanSession() (*testmodel.Model, *translate.Translator) {
	m := &testmodel.Model{VocabSize: 16, Script: []int{5, 6}}
	session := testmodel.Session(m, map[int]string{5: "▁Hallo", 6: "."})
	return m, translate.NewTranslator(session)
}

func textOf(placed []translate.Placed) string {
	var runes []rune
	for _, p := range placed {
		runes = append(runes, p.Codepoint)
	}
	return string(runes)
}

func TestTranslateBufferClustersBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	input := "Hello. World!"
	origLen := utf8.RuneCountInString(input)
	m, translator := germanSession()
	placed := translator.TranslateBuffer(input, origLen)
	if textOf(placed) != " Hallo. Hallo." {
		t.Errorf("unexpected output text %q", textOf(placed))
	}
	if m.Encodes != 2 {
		t.Errorf("expected one generation per unit, have %d", m.Encodes)
	}
	prev := 0
	for i, p := range placed {
		if p.Cluster < 0 || p.Cluster >= origLen {
			t.Fatalf("glyph %d: cluster %d out of [0,%d)", i, p.Cluster, origLen)
		}
		if p.Cluster < prev {
			t.Fatalf("glyph %d: cluster %d decreases", i, p.Cluster)
		}
		prev = p.Cluster
	}
	if placed[len(placed)-1].Cluster != origLen-1 {
		t.Errorf("excess glyphs must clamp to the final cluster")
	}
}

func TestTranslateBufferMemoizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	m, translator := germanSession()
	first := translator.TranslateBuffer("Hello.", 6)
	second := translator.TranslateBuffer("Hello.", 6)
	if textOf(first) != textOf(second) {
		t.Errorf("identical sentence translated differently")
	}
	if m.Encodes != 1 {
		t.Errorf("expected the second call to hit the cache, have %d generations", m.Encodes)
	}
	if translator.Cache().Size() != 1 {
		t.Errorf("expected 1 memoized sentence, have %d", translator.Cache().Size())
	}
}

func TestLonePunctuationPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	m, translator := germanSession()
	placed := translator.TranslateBuffer("Wow!!", 5)
	if m.Encodes != 1 {
		t.Errorf("lone punctuation must not be translated, have %d generations", m.Encodes)
	}
	last := placed[len(placed)-1]
	if last.Codepoint != '!' {
		t.Errorf("expected trailing '!' glyph, have %q", last.Codepoint)
	}
	if last.Cluster != 4 {
		t.Errorf("expected trailing glyph clamped to cluster 4, is %d", last.Cluster)
	}
}

func TestTrailingFragmentPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	input := "Hello. Wor"
	m, translator := germanSession()
	placed := translator.TranslateBuffer(input, utf8.RuneCountInString(input))
	if m.Encodes != 1 {
		t.Errorf("incomplete trailing sentence must not be translated")
	}
	if textOf(placed) != " Hallo. Wor" {
		t.Errorf("expected fragment verbatim, have %q", textOf(placed))
	}
}

func TestFallbackOnGenerationFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	m := &testmodel.Model{VocabSize: 16, DecodeErr: errors.New("boom")}
	translator := translate.NewTranslator(testmodel.Session(m, nil))
	placed := translator.TranslateBuffer("Hello.", 6)
	if textOf(placed) != "Hello." {
		t.Errorf("expected original sentence verbatim, have %q", textOf(placed))
	}
	if translator.Cache().Size() != 0 {
		t.Errorf("failed generation must not be cached")
	}
}

func TestTaskPromptOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	m := &testmodel.Model{VocabSize: 16, Script: []int{5}}
	session := testmodel.Session(m, map[int]string{5: "▁ok"})
	translator := translate.NewTranslator(session,
		translate.WithTaskPrompt("rewrite formally:"))
	placed := translator.TranslateBuffer("Hello.", 6)
	if textOf(placed) != " ok" {
		t.Errorf("unexpected output %q", textOf(placed))
	}
}
