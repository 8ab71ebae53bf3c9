package generate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/glot/core"
	"github.com/npillmayer/glot/engine/generate"
	"github.com/npillmayer/glot/internal/testmodel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func params(prompt string) generate.Params {
	return generate.Params{
		Prompt:        prompt,
		Temperature:   0,
		TopP:          1.0,
		RepeatPenalty: 1.1,
		RepeatLastN:   1,
	}
}

func TestGenerateScriptedOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.generate")
	defer teardown()
	//
	m := &testmodel.Model{VocabSize: 16, Script: []int{5, 6, 7}}
	session := testmodel.Session(m, map[int]string{
		5: "▁Guten",
		6: "▁Tag",
		7: ".",
	})
	out, err := generate.Generate(session, params("translate English to German:Good day."))
	if err != nil {
		t.Fatal(err)
	}
	if out != " Guten Tag." {
		t.Errorf("expected ' Guten Tag.', have %q", out)
	}
	if m.Resets != 1 {
		t.Errorf("model cache not reset before the call")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.generate")
	defer teardown()
	//
	m := &testmodel.Model{VocabSize: 16, Script: []int{5, 6}}
	session := testmodel.Session(m, map[int]string{5: "▁a", 6: "▁b"})
	first, err := generate.Generate(session, params("x"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := generate.Generate(session, params("x"))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("identical calls diverged: %q vs %q", first, second)
	}
	if m.Resets != 2 {
		t.Errorf("expected one reset per call, have %d", m.Resets)
	}
}

func TestGenerateTerminatesAtMaxLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.generate")
	defer teardown()
	//
	script := make([]int, 600) // model never reaches its end-of-sequence
	for i := range script {
		script[i] = 5
	}
	m := &testmodel.Model{VocabSize: 16, Script: script}
	session := testmodel.Session(m, map[int]string{5: "x"})
	p := params("x")
	p.MaxLength = 8
	out, err := generate.Generate(session, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 8 {
		t.Errorf("expected 8 generated tokens, have %d", len(out))
	}
}

func TestGenerateClampsMaxLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.generate")
	defer teardown()
	//
	script := make([]int, 600)
	for i := range script {
		script[i] = 5
	}
	m := &testmodel.Model{VocabSize: 16, Script: script}
	session := testmodel.Session(m, map[int]string{5: "x"})
	p := params("x")
	p.MaxLength = 100000
	out, err := generate.Generate(session, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != generate.MaxOutputLength {
		t.Errorf("expected output clamped to %d tokens, have %d",
			generate.MaxOutputLength, len(out))
	}
}

func TestGenerateSubstitutesMarkers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.generate")
	defer teardown()
	//
	m := &testmodel.Model{VocabSize: 16, Script: []int{5, 6}}
	session := testmodel.Session(m, map[int]string{5: "<0x0A>", 6: "▁ok"})
	out, err := generate.Generate(session, params("x"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "\n ok" {
		t.Errorf("marker substitution failed, have %q", out)
	}
	if strings.ContainsRune(out, '▁') {
		t.Errorf("word-boundary marker leaked into output")
	}
}

func TestGenerateErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.generate")
	defer teardown()
	//
	boom := errors.New("boom")
	m := &testmodel.Model{VocabSize: 16, EncodeErr: boom}
	session := testmodel.Session(m, nil)
	_, err := generate.Generate(session, params("x"))
	if core.Code(err) != core.EENCODE {
		t.Errorf("expected EENCODE, have %v", err)
	}
	//
	m = &testmodel.Model{VocabSize: 16, DecodeErr: boom}
	session = testmodel.Session(m, nil)
	_, err = generate.Generate(session, params("x"))
	if core.Code(err) != core.EDECODE {
		t.Errorf("expected EDECODE, have %v", err)
	}
	//
	m = &testmodel.Model{VocabSize: 16}
	session = testmodel.Session(m, nil)
	session.Tokenizer = &testmodel.Tokenizer{EncodeErr: boom}
	_, err = generate.Generate(session, params("x"))
	if core.Code(err) != core.ETOKENIZE {
		t.Errorf("expected ETOKENIZE, have %v", err)
	}
	for _, err := range []error{
		core.Error(core.ETOKENIZE, "t"),
		core.Error(core.EDECODE, "d"),
	} {
		if core.IsFatal(err) {
			t.Errorf("per-call error %v must not be fatal", err)
		}
	}
}
