package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/pipeline"
	"github.com/funvibe/colorexpr/internal/value"
)

// CoreBackend interprets programs into values.
type CoreBackend struct {
	core *evaluator.CoreEvaluator
}

// NewCore wraps core. A nil core gets a fresh evaluator with its own
// variables.
func NewCore(core *evaluator.CoreEvaluator) *CoreBackend {
	if core == nil {
		core = evaluator.NewCore()
	}
	return &CoreBackend{core: core}
}

func (b *CoreBackend) Run(ctx *pipeline.PipelineContext) (value.Value, error) {
	if ctx.Program == nil {
		return nil, errors.New("no program to evaluate")
	}
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	return b.RunProgram(ctx.Program)
}

func (b *CoreBackend) Name() string {
	return "core"
}

// RunProgram is a convenience method that takes a Program directly
func (b *CoreBackend) RunProgram(program *ast.Program) (value.Value, error) {
	return ast.Evaluate(program, b.core)
}

func (b *CoreBackend) Evaluator() *evaluator.CoreEvaluator {
	return b.core
}
