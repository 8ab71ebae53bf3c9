package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glot/core/model"
	"github.com/npillmayer/glot/engine/glyphing"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glot.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("glot.glyphs")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.glot.glyphs":    "Info",
		"trace.glot.translate": "Info",
		"trace.glot.generate":  "Info",
		"trace.glot.model":     "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "Go-Regular.ttf", "Font to shape with")
	modeldir := flag.String("model", "", "Directory holding model.gguf, tokenizer.json, config.json")
	flag.Parse()
	tracer().Infof("Trace level is %s", *tlevel)
	pterm.Info.Println("Welcome to the glot shaping CLI")
	//
	font, err := loadFont(*fontname)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	ctx := shapingContext(*modeldir)
	//
	repl, err := readline.New("glot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	pterm.Info.Println("Type a line of text to shape it, quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		shapeLine(ctx, font, line)
	}
}

// shapingContext decides between a model-backed context and pass-through
// shaping. Model backends hook in as a model.Builder; this CLI has none
// linked, so a model directory currently only exercises the loading path.
func shapingContext(modeldir string) *glyphing.Context {
	if modeldir == "" {
		pterm.Info.Println("No model directory given, shaping without translation")
		return glyphing.NewPassthroughContext()
	}
	return glyphing.NewContext(func() (*model.Session, error) {
		weights, err := os.ReadFile(filepath.Join(modeldir, "model.gguf"))
		if err != nil {
			return nil, err
		}
		tokdef, err := os.ReadFile(filepath.Join(modeldir, "tokenizer.json"))
		if err != nil {
			return nil, err
		}
		config, err := os.ReadFile(filepath.Join(modeldir, "config.json"))
		if err != nil {
			return nil, err
		}
		return model.Load(weights, tokdef, config, backendBuilder)
	})
}

// backendBuilder is the hook where a sequence-model backend would plug in
// its network construction. None is linked into this CLI.
var backendBuilder model.Builder

// loadFont locates a font by name on the system and parses it.
func loadFont(name string) (*glyphing.HBFont, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, err
	}
	tracer().Infof("using font %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return glyphing.ParseFont(data)
}

func shapeLine(ctx *glyphing.Context, font *glyphing.HBFont, line string) {
	buf := glyphing.NewBuffer(line)
	if glyphing.Shape(ctx, font, buf, nil) == 0 {
		pterm.Error.Println("shaping failed")
		return
	}
	var out strings.Builder
	for _, g := range buf.Glyphs {
		fmt.Fprintf(&out, "[%d@%d +%s] ", g.Codepoint, g.Cluster, g.XAdvance)
	}
	pterm.Info.Println(out.String())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
