// Package backend provides an interface for different execution backends.
// This allows switching between the interpreting core and the LESS
// transpiler.
package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/config"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/pipeline"
	"github.com/funvibe/colorexpr/internal/value"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run evaluates the program from pipeline context and returns the result
	Run(ctx *pipeline.PipelineContext) (value.Value, error)

	// Name returns the backend name for display
	Name() string
}

// New returns the backend registered under name. Both backends share
// core, so variables set through one are visible to the other.
func New(name string, core *evaluator.CoreEvaluator) (Backend, error) {
	switch name {
	case config.EvaluatorCore, "":
		return NewCore(core), nil
	case config.EvaluatorLess:
		return NewLess(core), nil
	}
	return nil, errors.Newf("unknown evaluator %q", name)
}
