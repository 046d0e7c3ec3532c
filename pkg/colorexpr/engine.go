// Package colorexpr evaluates color expressions.
//
//	e, _ := colorexpr.New()
//	r := e.Evaluate("red | {25%} blue", colorexpr.Options{})
//	fmt.Println(r.ResultStr) // #bf0040
//
// An Engine keeps variables between calls, so "$c = gold" in one call
// makes $c available to the next.
package colorexpr

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/backend"
	"github.com/funvibe/colorexpr/internal/config"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/parser"
	"github.com/funvibe/colorexpr/internal/pipeline"
	"github.com/funvibe/colorexpr/internal/prettyprinter"
	"github.com/funvibe/colorexpr/internal/value"
)

// Engine owns the variable store, the parse cache and one pipeline per
// evaluator. It is safe for concurrent use; evaluations are serialized.
type Engine struct {
	mu         sync.Mutex
	session    uuid.UUID
	logger     *slog.Logger
	core       *evaluator.CoreEvaluator
	parser     *parser.ParserProcessor
	pipelines  map[string]*pipeline.Pipeline
	formatter  *pipeline.Pipeline
	marshaller *Marshaller

	cacheSize int
	seed      *uint64
}

type EngineOption func(*Engine)

// WithLogger sets the logger. Every record carries the engine session.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithSeed makes "rand" reproducible.
func WithSeed(seed uint64) EngineOption {
	return func(e *Engine) { e.seed = &seed }
}

// WithCacheSize bounds the parse cache. Zero or less disables it.
func WithCacheSize(n int) EngineOption {
	return func(e *Engine) { e.cacheSize = n }
}

// WithConfig applies the engine-wide keys of a config file.
func WithConfig(cfg *config.Config) EngineOption {
	return func(e *Engine) { e.cacheSize = cfg.CacheSize }
}

func New(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		session:    uuid.New(),
		cacheSize:  config.DefaultCacheSize,
		marshaller: NewMarshaller(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.logger = e.logger.With(slog.String("session", e.session.String()))

	var coreOpts []evaluator.CoreOption
	if e.seed != nil {
		coreOpts = append(coreOpts, evaluator.WithSeed(*e.seed))
	}
	e.core = evaluator.NewCore(coreOpts...)

	pp, err := parser.NewProcessor(e.cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "creating parse cache")
	}
	e.parser = pp

	parse := pipeline.New(pp)
	e.pipelines = make(map[string]*pipeline.Pipeline)
	for _, name := range []string{EvaluatorCore, EvaluatorLess} {
		b, err := backend.New(name, e.core)
		if err != nil {
			return nil, err
		}
		e.pipelines[name] = parse.Then(backend.NewExecutionProcessor(b, e.logger))
	}
	e.formatter = parse.Then(prettyprinter.Processor{})
	return e, nil
}

// Session identifies the engine in logs.
func (e *Engine) Session() uuid.UUID {
	return e.session
}

// Evaluate parses and evaluates source. Errors are reported in the
// result, never returned.
func (e *Engine) Evaluate(source string, opts Options) Result {
	res := Result{Expr: source}

	name := opts.Evaluator
	if name == "" {
		name = EvaluatorCore
	}
	p, ok := e.pipelines[name]
	if !ok {
		return fail(res, diagnostics.Newf(diagnostics.ErrUnsupported, nil, "unknown evaluator '%s'", name))
	}

	e.mu.Lock()
	ctx := p.Run(pipeline.NewPipelineContext(source))
	e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		e.logger.Debug("expression rejected",
			slog.String("evaluator", name),
			slog.String("code", diagnostics.Code(err)),
			slog.String("error", err.Error()))
		return fail(res, err)
	}

	res.Program = ctx.Program
	res.Result = ctx.Result
	res.ResultStr = value.Format(ctx.Result, opts.AppendNames)
	if opts.WithAst {
		dump, err := ast.DumpJSON(ctx.Program, opts.AstWithLocs)
		if err != nil {
			return fail(Result{Expr: source}, diagnostics.Newf(diagnostics.ErrInternal, nil, "%s", err.Error()))
		}
		res.AstStr = dump
	}
	return res
}

// Format parses source and prints it back in canonical form without
// evaluating it.
func (e *Engine) Format(source string) (string, error) {
	ctx := e.formatter.Run(pipeline.NewPipelineContext(source))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ctx.Result.Inspect(), nil
}

func fail(res Result, err error) Result {
	res.Err = err
	res.Error = err.Error()
	return res
}

// Variables lists the names of the stored variables; "$" holds the value
// of the last program.
func (e *Engine) Variables() []string {
	return e.core.Environment().Names()
}

// Get returns a variable converted to a Go value.
func (e *Engine) Get(name string) (any, bool) {
	v, ok := e.core.Environment().Get(name)
	if !ok {
		return nil, false
	}
	return e.marshaller.FromValue(v), true
}

// Inspect formats a variable the way Evaluate formats results.
func (e *Engine) Inspect(name string, appendNames bool) (string, bool) {
	v, ok := e.core.Environment().Get(name)
	if !ok {
		return "", false
	}
	return value.Format(v, appendNames), true
}

// Set stores a Go value as a variable.
func (e *Engine) Set(name string, val any) error {
	v, err := e.marshaller.ToValue(val)
	if err != nil {
		return errors.Wrapf(err, "setting %s", name)
	}
	e.core.Environment().Set(name, v)
	return nil
}

// Unset removes a variable and reports whether it existed.
func (e *Engine) Unset(name string) bool {
	_, ok := e.core.Environment().Delete(name)
	return ok
}

// Purge empties the parse cache.
func (e *Engine) Purge() {
	e.parser.Purge()
}
