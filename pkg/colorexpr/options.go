package colorexpr

import (
	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/config"
	"github.com/funvibe/colorexpr/internal/value"
)

// Evaluator names.
const (
	EvaluatorCore = config.EvaluatorCore
	EvaluatorLess = config.EvaluatorLess
)

// Options control a single Evaluate call.
type Options struct {
	// Evaluator is EvaluatorCore (default) or EvaluatorLess.
	Evaluator string
	// WithAst fills Result.AstStr with the JSON dump of the tree.
	WithAst bool
	// AstWithLocs keeps "$loc" entries in the dump.
	AstWithLocs bool
	// AppendNames appends " (name)" to colors that have a CSS name.
	AppendNames bool
}

// OptionsFromConfig reads the per-evaluation keys of a config file.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Evaluator:   cfg.Evaluator,
		WithAst:     cfg.WithAst,
		AstWithLocs: cfg.AstWithLocs,
		AppendNames: cfg.AppendNames,
	}
}

// Result is the outcome of Evaluate. On failure only Expr and Error are
// set.
type Result struct {
	Expr      string
	Program   *ast.Program
	Result    value.Value
	ResultStr string
	AstStr    string
	Error     string

	// Err is the error behind Error, for errors.Is checks.
	Err error `json:"-"`
}

func (r Result) Failed() bool {
	return r.Err != nil
}
