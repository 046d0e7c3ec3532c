// Package ast defines the syntax tree of color expressions and the
// visitor contract evaluators implement.
package ast

import (
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

// Node is the base interface for all AST nodes. Nodes are immutable once
// parsed and may be evaluated any number of times.
type Node interface {
	Accept(v Visitor) (value.Value, error)
	// Type is the stable node type tag, e.g. "expr.operation.binary".
	Type() string
	Location() *token.Loc
}

// Expression is a Node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Visitor has one method per node kind. A method returning a nil value
// and nil error means the visitor does not support the node.
type Visitor interface {
	Name() string

	VisitProgram(n *Program) (value.Value, error)
	VisitStatement(n *Statement) (value.Value, error)
	VisitParentheses(n *ParenthesesExpr) (value.Value, error)
	VisitNumberLiteral(n *NumberLiteral) (value.Value, error)
	VisitPercent(n *PercentExpr) (value.Value, error)
	VisitArrayLiteral(n *ArrayLiteral) (value.Value, error)
	VisitColorNameLiteral(n *ColorNameLiteral) (value.Value, error)
	VisitColorHexLiteral(n *ColorHexLiteral) (value.Value, error)
	VisitColorByNumber(n *ColorByNumber) (value.Value, error)
	VisitColorByTemperature(n *ColorByTemperature) (value.Value, error)
	VisitColorByWavelength(n *ColorByWavelength) (value.Value, error)
	VisitColorBySpaceParams(n *ColorBySpaceParams) (value.Value, error)
	VisitRandomColor(n *RandomColor) (value.Value, error)
	VisitScale(n *ScaleExpr) (value.Value, error)
	VisitBezier(n *BezierExpr) (value.Value, error)
	VisitCubehelix(n *CubehelixExpr) (value.Value, error)
	VisitBrewerConst(n *BrewerConst) (value.Value, error)
	VisitParam(n *ParamExpr) (value.Value, error)
	VisitUnary(n *UnaryExpr) (value.Value, error)
	VisitBinary(n *BinaryExpr) (value.Value, error)
	VisitGetVar(n *GetVar) (value.Value, error)
	VisitSetVar(n *SetVar) (value.Value, error)
}

// Evaluate runs v over n and turns a missing result into an
// unsupported-node error located at n.
func Evaluate(n Node, v Visitor) (value.Value, error) {
	res, err := n.Accept(v)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, diagnostics.Newf(diagnostics.ErrUnsupported, n.Location(),
			"evaluation of '%s' is not supported by '%s'", n.Type(), v.Name())
	}
	return res, nil
}
