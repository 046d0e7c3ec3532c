package backend

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/pipeline"
)

// ExecutionProcessor implements pipeline.Processor to run a Backend
type ExecutionProcessor struct {
	Backend Backend
	Logger  *slog.Logger
}

// NewExecutionProcessor creates a new pipeline step for the given backend.
// A nil logger discards everything.
func NewExecutionProcessor(b Backend, logger *slog.Logger) *ExecutionProcessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExecutionProcessor{Backend: b, Logger: logger}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't run execution
	if ctx.Program == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	start := time.Now()
	result, err := p.Backend.Run(ctx)
	attrs := []any{
		slog.String("evaluator", p.Backend.Name()),
		slog.Duration("duration", time.Since(start)),
		slog.Bool("cached", ctx.Cached),
	}

	if err != nil {
		p.handleError(ctx, err)
		p.Logger.Debug("evaluation failed", append(attrs, slog.String("error", err.Error()))...)
		return ctx
	}
	if result == nil {
		p.handleError(ctx, errors.Newf("%s returned no result", p.Backend.Name()))
		return ctx
	}

	ctx.Result = result
	p.Logger.Debug("evaluated", attrs...)
	return ctx
}

// handleError records err. Anything that is not already a located
// evaluation error becomes an internal one.
func (p *ExecutionProcessor) handleError(ctx *pipeline.PipelineContext, err error) {
	if _, ok := diagnostics.As(err); ok {
		ctx.Errors = append(ctx.Errors, err)
		return
	}
	ctx.Errors = append(ctx.Errors, diagnostics.Newf(diagnostics.ErrInternal, nil, "%s", err.Error()))
}
