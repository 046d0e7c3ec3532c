package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/less"
	"github.com/funvibe/colorexpr/internal/pipeline"
	"github.com/funvibe/colorexpr/internal/value"
)

// LessBackend transpiles programs to LESS. The result is always a
// value.Text.
type LessBackend struct {
	eval *less.Evaluator
}

func NewLess(core *evaluator.CoreEvaluator) *LessBackend {
	return &LessBackend{eval: less.New(core)}
}

func (b *LessBackend) Run(ctx *pipeline.PipelineContext) (value.Value, error) {
	if ctx.Program == nil {
		return nil, errors.New("no program to transpile")
	}
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	return b.RunProgram(ctx.Program)
}

func (b *LessBackend) Name() string {
	return "less"
}

// RunProgram is a convenience method that takes a Program directly
func (b *LessBackend) RunProgram(program *ast.Program) (value.Value, error) {
	return ast.Evaluate(program, b.eval)
}
