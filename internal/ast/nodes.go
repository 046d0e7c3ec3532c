package ast

import (
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

// Program is the root node of every tree the parser produces.
type Program struct {
	Loc        *token.Loc
	Statements []*Statement
}

func (p *Program) Accept(v Visitor) (value.Value, error) { return v.VisitProgram(p) }
func (p *Program) Type() string                          { return "program" }
func (p *Program) Location() *token.Loc                  { return p.Loc }

type Statement struct {
	Loc  *token.Loc
	Expr Expression
}

func (s *Statement) Accept(v Visitor) (value.Value, error) { return v.VisitStatement(s) }
func (s *Statement) Type() string                          { return "statement" }
func (s *Statement) Location() *token.Loc                  { return s.Loc }

type ParenthesesExpr struct {
	Loc  *token.Loc
	Expr Expression
}

func (p *ParenthesesExpr) Accept(v Visitor) (value.Value, error) { return v.VisitParentheses(p) }
func (p *ParenthesesExpr) Type() string                          { return "expr.parentheses" }
func (p *ParenthesesExpr) Location() *token.Loc                  { return p.Loc }
func (p *ParenthesesExpr) expressionNode()                       {}

// NumberLiteral keeps the source spelling: 105, .5, 0x69, 0b1101, 0o151.
type NumberLiteral struct {
	Loc   *token.Loc
	Value string
}

func (n *NumberLiteral) Accept(v Visitor) (value.Value, error) { return v.VisitNumberLiteral(n) }
func (n *NumberLiteral) Type() string                          { return "expr.numberLiteral" }
func (n *NumberLiteral) Location() *token.Loc                  { return n.Loc }
func (n *NumberLiteral) expressionNode()                       {}

// PercentExpr is a number literal followed by '%'.
type PercentExpr struct {
	Loc   *token.Loc
	Value Expression
}

func (p *PercentExpr) Accept(v Visitor) (value.Value, error) { return v.VisitPercent(p) }
func (p *PercentExpr) Type() string                          { return "expr.percent" }
func (p *PercentExpr) Location() *token.Loc                  { return p.Loc }
func (p *PercentExpr) expressionNode()                       {}

// ArrayLiteral is a whitespace separated list: `red #0f0 blue`.
type ArrayLiteral struct {
	Loc      *token.Loc
	Elements []Expression
}

func (a *ArrayLiteral) Accept(v Visitor) (value.Value, error) { return v.VisitArrayLiteral(a) }
func (a *ArrayLiteral) Type() string                          { return "expr.arrayLiteral" }
func (a *ArrayLiteral) Location() *token.Loc                  { return a.Loc }
func (a *ArrayLiteral) expressionNode()                       {}

type ColorNameLiteral struct {
	Loc  *token.Loc
	Name string
}

func (c *ColorNameLiteral) Accept(v Visitor) (value.Value, error) { return v.VisitColorNameLiteral(c) }
func (c *ColorNameLiteral) Type() string                          { return "expr.colorNameLiteral" }
func (c *ColorNameLiteral) Location() *token.Loc                  { return c.Loc }
func (c *ColorNameLiteral) expressionNode()                       {}

// ColorHexLiteral holds the digits as written, with or without '#'.
type ColorHexLiteral struct {
	Loc *token.Loc
	Hex string
}

func (c *ColorHexLiteral) Accept(v Visitor) (value.Value, error) { return v.VisitColorHexLiteral(c) }
func (c *ColorHexLiteral) Type() string                          { return "expr.colorHexLiteral" }
func (c *ColorHexLiteral) Location() *token.Loc                  { return c.Loc }
func (c *ColorHexLiteral) expressionNode()                       {}

type ColorByNumber struct {
	Loc   *token.Loc
	Value Expression
}

func (c *ColorByNumber) Accept(v Visitor) (value.Value, error) { return v.VisitColorByNumber(c) }
func (c *ColorByNumber) Type() string                          { return "expr.colorByNumber" }
func (c *ColorByNumber) Location() *token.Loc                  { return c.Loc }
func (c *ColorByNumber) expressionNode()                       {}

type ColorByTemperature struct {
	Loc   *token.Loc
	Value Expression
}

func (c *ColorByTemperature) Accept(v Visitor) (value.Value, error) {
	return v.VisitColorByTemperature(c)
}
func (c *ColorByTemperature) Type() string         { return "expr.colorByTemperature" }
func (c *ColorByTemperature) Location() *token.Loc { return c.Loc }
func (c *ColorByTemperature) expressionNode()      {}

type ColorByWavelength struct {
	Loc   *token.Loc
	Value Expression
}

func (c *ColorByWavelength) Accept(v Visitor) (value.Value, error) {
	return v.VisitColorByWavelength(c)
}
func (c *ColorByWavelength) Type() string         { return "expr.colorByWavelength" }
func (c *ColorByWavelength) Location() *token.Loc { return c.Loc }
func (c *ColorByWavelength) expressionNode()      {}

// ColorBySpaceParams is `rgb 255 0 0`, `hsla 197 .71 .73 55%`, `argb ...`.
// Space is lowercased and has its alpha suffix removed, except argb.
type ColorBySpaceParams struct {
	Loc    *token.Loc
	Space  string
	Params []Expression
}

func (c *ColorBySpaceParams) Accept(v Visitor) (value.Value, error) {
	return v.VisitColorBySpaceParams(c)
}
func (c *ColorBySpaceParams) Type() string         { return "expr.colorBySpaceParams" }
func (c *ColorBySpaceParams) Location() *token.Loc { return c.Loc }
func (c *ColorBySpaceParams) expressionNode()      {}

type RandomColor struct {
	Loc *token.Loc
}

func (r *RandomColor) Accept(v Visitor) (value.Value, error) { return v.VisitRandomColor(r) }
func (r *RandomColor) Type() string                          { return "expr.randomColor" }
func (r *RandomColor) Location() *token.Loc                  { return r.Loc }
func (r *RandomColor) expressionNode()                       {}

// ScaleExpr builds a gradient. Colors lists the stops written inline;
// otherwise Source is an expression producing a color array. Domain
// holds the stop positions when they were given.
type ScaleExpr struct {
	Loc    *token.Loc
	Colors []Expression
	Source Expression
	Domain []Expression
	Mode   string
}

func (s *ScaleExpr) Accept(v Visitor) (value.Value, error) { return v.VisitScale(s) }
func (s *ScaleExpr) Type() string                          { return "expr.scale" }
func (s *ScaleExpr) Location() *token.Loc                  { return s.Loc }
func (s *ScaleExpr) expressionNode()                       {}

type BezierExpr struct {
	Loc    *token.Loc
	Colors Expression
}

func (b *BezierExpr) Accept(v Visitor) (value.Value, error) { return v.VisitBezier(b) }
func (b *BezierExpr) Type() string                          { return "expr.bezier" }
func (b *BezierExpr) Location() *token.Loc                  { return b.Loc }
func (b *BezierExpr) expressionNode()                       {}

type CubehelixExpr struct {
	Loc *token.Loc
}

func (c *CubehelixExpr) Accept(v Visitor) (value.Value, error) { return v.VisitCubehelix(c) }
func (c *CubehelixExpr) Type() string                          { return "expr.cubehelix" }
func (c *CubehelixExpr) Location() *token.Loc                  { return c.Loc }
func (c *CubehelixExpr) expressionNode()                       {}

// BrewerConst names a ColorBrewer palette such as YlOrBr.
type BrewerConst struct {
	Loc  *token.Loc
	Name string
}

func (b *BrewerConst) Accept(v Visitor) (value.Value, error) { return v.VisitBrewerConst(b) }
func (b *BrewerConst) Type() string                          { return "expr.brewerConst" }
func (b *BrewerConst) Location() *token.Loc                  { return b.Loc }
func (b *BrewerConst) expressionNode()                       {}

// ParamExpr reads or writes a named parameter of Obj:
//
//	red @hsl.h          get
//	red @hsl.h 90       set
//	red @hsl.h += 90    relative set
//
// Operator is "" or "=" for absolute sets.
type ParamExpr struct {
	Loc      *token.Loc
	Obj      Expression
	Name     string
	Value    Expression
	Operator string
}

func (p *ParamExpr) Accept(v Visitor) (value.Value, error) { return v.VisitParam(p) }
func (p *ParamExpr) Type() string {
	if p.Value == nil {
		return "expr.getParam"
	}
	return "expr.setParam"
}
func (p *ParamExpr) Location() *token.Loc { return p.Loc }
func (p *ParamExpr) expressionNode()      {}

// RelativeOperator is the arithmetic part of a compound assignment,
// or "" for get and plain set.
func (p *ParamExpr) RelativeOperator() string {
	if p.Operator == "" || p.Operator == "=" {
		return ""
	}
	return p.Operator[:1]
}

type UnaryExpr struct {
	Loc      *token.Loc
	Operator string
	Value    Expression
}

func (u *UnaryExpr) Accept(v Visitor) (value.Value, error) { return v.VisitUnary(u) }
func (u *UnaryExpr) Type() string                          { return "expr.operation.unary" }
func (u *UnaryExpr) Location() *token.Loc                  { return u.Loc }
func (u *UnaryExpr) expressionNode()                       {}

// MixOptions are the `{ratio mode}` options of the '|' operator.
type MixOptions struct {
	Ratio Expression
	Mode  string
}

type BinaryExpr struct {
	Loc      *token.Loc
	Operator string
	Options  *MixOptions
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) Accept(v Visitor) (value.Value, error) { return v.VisitBinary(b) }
func (b *BinaryExpr) Type() string                          { return "expr.operation.binary" }
func (b *BinaryExpr) Location() *token.Loc                  { return b.Loc }
func (b *BinaryExpr) expressionNode()                       {}

// GetVar reads a variable. Name is as written, including '$'.
type GetVar struct {
	Loc  *token.Loc
	Name string
}

func (g *GetVar) Accept(v Visitor) (value.Value, error) { return v.VisitGetVar(g) }
func (g *GetVar) Type() string                          { return "expr.getVar" }
func (g *GetVar) Location() *token.Loc                  { return g.Loc }
func (g *GetVar) expressionNode()                       {}

type SetVar struct {
	Loc   *token.Loc
	Name  string
	Value Expression
}

func (s *SetVar) Accept(v Visitor) (value.Value, error) { return v.VisitSetVar(s) }
func (s *SetVar) Type() string                          { return "expr.setVar" }
func (s *SetVar) Location() *token.Loc                  { return s.Loc }
func (s *SetVar) expressionNode()                       {}
