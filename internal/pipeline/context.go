package pipeline

import (
	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/value"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one evaluation through the stages.
type PipelineContext struct {
	SourceCode string
	Program    *ast.Program
	Result     value.Value
	Errors     []error

	// Cached is set by the parser stage when Program came from its cache.
	Cached bool
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// Err returns the first collected error.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}

func (c *PipelineContext) Failed() bool {
	return len(c.Errors) > 0
}
