package parser

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/lexer"
	"github.com/funvibe/colorexpr/internal/pipeline"
)

// ParserProcessor turns ctx.SourceCode into ctx.Program. Successfully
// parsed programs are cached by source text; trees are never mutated
// after parsing, so sharing them is safe.
type ParserProcessor struct {
	cache *lru.Cache[string, *ast.Program]
}

// NewProcessor returns a processor caching up to size programs. A size
// of zero or less disables the cache.
func NewProcessor(size int) (*ParserProcessor, error) {
	pp := &ParserProcessor{}
	if size <= 0 {
		return pp, nil
	}
	cache, err := lru.New[string, *ast.Program](size)
	if err != nil {
		return nil, err
	}
	pp.cache = cache
	return pp, nil
}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if pp.cache != nil {
		if program, ok := pp.cache.Get(ctx.SourceCode); ok {
			ctx.Program = program
			ctx.Cached = true
			return ctx
		}
	}

	p := New(lexer.New(ctx.SourceCode))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		ctx.Errors = append(ctx.Errors, errs...)
		return ctx
	}

	ctx.Program = program
	if pp.cache != nil {
		pp.cache.Add(ctx.SourceCode, program)
	}
	return ctx
}

// Purge drops every cached program.
func (pp *ParserProcessor) Purge() {
	if pp.cache != nil {
		pp.cache.Purge()
	}
}

func (pp *ParserProcessor) Len() int {
	if pp.cache == nil {
		return 0
	}
	return pp.cache.Len()
}
