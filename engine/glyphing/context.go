package glyphing

import (
	"sync"

	"github.com/npillmayer/glot/core"
	"github.com/npillmayer/glot/core/model"
	"github.com/npillmayer/glot/engine/translate"
)

// Context owns the process-wide state of the shaping extension: the model
// session and the sentence orchestrator with its translation cache. The
// host application constructs one Context and passes it into every
// shaping call; nothing in this module is global.
//
// Initialization is lazy and happens at most once, on the first call that
// needs translation. A failed load is remembered and not retried. The
// one-time initialization is guarded, so hosts that overlap shaping calls
// cannot double-construct the session; the translation cache itself is
// scoped to single-threaded use per the host contract.
type Context struct {
	load        func() (*model.Session, error)
	opts        []translate.Option
	passthrough bool

	once       sync.Once
	session    *model.Session
	loadErr    error
	translator *translate.Translator
}

// NewContext creates a shaping context. load is invoked once, on first
// use, to construct the model session; its error short-circuits all
// translation for every subsequent call on this context.
func NewContext(load func() (*model.Session, error), opts ...translate.Option) *Context {
	return &Context{load: load, opts: opts}
}

// NewPassthroughContext creates a context that shapes without rewriting
// text. Useful for diagnostics and for hosts without a model backend.
func NewPassthroughContext() *Context {
	return &Context{passthrough: true}
}

func (ctx *Context) init() error {
	ctx.once.Do(func() {
		if ctx.load == nil {
			ctx.loadErr = core.Error(core.EMODELLOAD, "shaping context has no model loader")
			return
		}
		tracer().Infof("initializing model session")
		ctx.session, ctx.loadErr = ctx.load()
		if ctx.loadErr != nil {
			tracer().Errorf("cannot load model: %v", ctx.loadErr)
			return
		}
		ctx.translator = translate.NewTranslator(ctx.session, ctx.opts...)
	})
	return ctx.loadErr
}

// Translator returns the context's sentence orchestrator, initializing
// the context if necessary. It returns nil if the model is not loadable.
func (ctx *Context) Translator() *translate.Translator {
	if err := ctx.init(); err != nil {
		return nil
	}
	return ctx.translator
}
