package evaluator

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

// Limits of the color constructors.
const (
	MaxColorNumber = 0xffffff
	MaxTemperature = 200000
	MinWavelength  = 350
	MaxWavelength  = 780
	MinSamples     = 2
	MaxSamples     = 0xffff
	MinBezierStops = 2
	MaxBezierStops = 5
)

// CoreEvaluator interprets a tree into values. It owns the variable
// store, so variables live as long as the evaluator does.
type CoreEvaluator struct {
	env *Environment
	rnd *rand.Rand
}

type CoreOption func(*CoreEvaluator)

// WithSeed makes random colors reproducible.
func WithSeed(seed uint64) CoreOption {
	return func(c *CoreEvaluator) {
		c.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithEnvironment shares an existing variable store.
func WithEnvironment(env *Environment) CoreOption {
	return func(c *CoreEvaluator) {
		c.env = env
	}
}

func NewCore(opts ...CoreOption) *CoreEvaluator {
	c := &CoreEvaluator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.env == nil {
		c.env = NewEnvironment()
	}
	return c
}

func (c *CoreEvaluator) Name() string              { return "evaluator.core" }
func (c *CoreEvaluator) Core() *CoreEvaluator      { return c }
func (c *CoreEvaluator) Environment() *Environment { return c.env }

// wrap turns a plain error from the color math into an evaluation error
// of the given category. Evaluation errors pass through untouched.
func wrap(kind error, loc *token.Loc, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := diagnostics.As(err); ok {
		return err
	}
	return diagnostics.Newf(kind, loc, "%s", err.Error())
}

func (c *CoreEvaluator) VisitProgram(node *ast.Program) (value.Value, error) {
	var last value.Value
	for _, st := range node.Statements {
		v, err := ast.Evaluate(st, c)
		if err != nil {
			return nil, err
		}
		last = v
	}
	if err := c.storeVar(LastValueName, last, node.Loc); err != nil {
		return nil, err
	}
	return last, nil
}

func (c *CoreEvaluator) VisitStatement(node *ast.Statement) (value.Value, error) {
	return ast.Evaluate(node.Expr, c)
}

func (c *CoreEvaluator) VisitParentheses(node *ast.ParenthesesExpr) (value.Value, error) {
	v, err := ast.Evaluate(node.Expr, c)
	if err != nil {
		return nil, err
	}
	return value.Clone(v), nil
}

func (c *CoreEvaluator) VisitNumberLiteral(node *ast.NumberLiteral) (value.Value, error) {
	n, err := ParseNumber(node.Value)
	if err != nil {
		return nil, diagnostics.Newf(diagnostics.ErrSyntax, node.Loc, "invalid number literal '%s'", node.Value)
	}
	return value.Number(n), nil
}

// ParseNumber reads decimals and 0x, 0b, 0o prefixed integers. A plain
// leading zero does not mean octal.
func ParseNumber(s string) (float64, error) {
	lower := strings.ToLower(s)
	if len(lower) > 2 && lower[0] == '0' && strings.ContainsRune("xbo", rune(lower[1])) {
		n, err := strconv.ParseInt(lower, 0, 64)
		return float64(n), err
	}
	return strconv.ParseFloat(s, 64)
}

func (c *CoreEvaluator) VisitPercent(node *ast.PercentExpr) (value.Value, error) {
	v, err := ast.Evaluate(node.Value, c)
	if err != nil {
		return nil, err
	}
	n, err := value.ForceNumInRange(v, -100, 100, node.Value.Location())
	if err != nil {
		return nil, err
	}
	return value.Number(n / 100), nil
}

func (c *CoreEvaluator) VisitArrayLiteral(node *ast.ArrayLiteral) (value.Value, error) {
	arr := make(value.Array, len(node.Elements))
	for i, el := range node.Elements {
		v, err := ast.Evaluate(el, c)
		if err != nil {
			return nil, err
		}
		arr[i] = v
	}
	return arr, nil
}

func (c *CoreEvaluator) VisitColorNameLiteral(node *ast.ColorNameLiteral) (value.Value, error) {
	col, ok := colormath.FromName(node.Name)
	if !ok {
		return nil, diagnostics.Newf(diagnostics.ErrUnknownIdentifier, node.Loc, "unknown color name '%s'", node.Name)
	}
	return value.NewColor(col), nil
}

func (c *CoreEvaluator) VisitColorHexLiteral(node *ast.ColorHexLiteral) (value.Value, error) {
	col, err := colormath.FromHex(node.Hex)
	if err != nil {
		return nil, wrap(diagnostics.ErrSyntax, node.Loc, err)
	}
	return value.NewColor(col), nil
}

func (c *CoreEvaluator) VisitColorByNumber(node *ast.ColorByNumber) (value.Value, error) {
	n, err := c.numInRange(node.Value, 0, MaxColorNumber)
	if err != nil {
		return nil, err
	}
	return value.NewColor(colormath.FromNumber(n)), nil
}

func (c *CoreEvaluator) VisitColorByTemperature(node *ast.ColorByTemperature) (value.Value, error) {
	k, err := c.numInRange(node.Value, 0, MaxTemperature)
	if err != nil {
		return nil, err
	}
	return value.NewColor(colormath.FromTemperature(k)), nil
}

func (c *CoreEvaluator) VisitColorByWavelength(node *ast.ColorByWavelength) (value.Value, error) {
	wl, err := c.numInRange(node.Value, MinWavelength, MaxWavelength)
	if err != nil {
		return nil, err
	}
	return value.NewColor(colormath.FromWavelength(wl)), nil
}

func (c *CoreEvaluator) VisitColorBySpaceParams(node *ast.ColorBySpaceParams) (value.Value, error) {
	exprs := append([]ast.Expression(nil), node.Params...)
	var alphaExpr ast.Expression

	name := node.Space
	if name == "argb" {
		name = "rgb"
		if len(exprs) > 0 {
			alphaExpr, exprs = exprs[0], exprs[1:]
		}
	}
	space, ok := colormath.ParseSpace(name)
	if !ok {
		return nil, diagnostics.Newf(diagnostics.ErrUnknownIdentifier, node.Loc, "unknown namespace: %s", strings.ToUpper(node.Space))
	}
	arity := 3
	if space == colormath.SpaceCMYK {
		arity = 4
	}
	if node.Space != "argb" && len(exprs) > arity {
		alphaExpr, exprs = exprs[len(exprs)-1], exprs[:len(exprs)-1]
	}

	ranges, err := colormath.Ranges(space)
	if err != nil {
		return nil, wrap(diagnostics.ErrUnknownIdentifier, node.Loc, err)
	}
	if len(exprs) != len(ranges) {
		return nil, diagnostics.Newf(diagnostics.ErrArity, node.Loc,
			"invalid number of params for color space %s", strings.ToUpper(node.Space))
	}

	comps := make([]float64, len(exprs))
	for i, expr := range exprs {
		n, err := c.numInRange(expr, ranges[i].Min, ranges[i].Max)
		if err != nil {
			return nil, err
		}
		comps[i] = n
	}

	alpha := 1.0
	if alphaExpr != nil {
		if alpha, err = c.numInRange(alphaExpr, 0, 1); err != nil {
			return nil, err
		}
	}

	col, err := colormath.FromSpace(space, comps, alpha)
	if err != nil {
		return nil, wrap(diagnostics.ErrArity, node.Loc, err)
	}
	return value.NewColor(col), nil
}

func (c *CoreEvaluator) VisitRandomColor(*ast.RandomColor) (value.Value, error) {
	return value.NewColor(colormath.Random(c.rnd)), nil
}

func (c *CoreEvaluator) VisitScale(node *ast.ScaleExpr) (value.Value, error) {
	var colors []colormath.Color
	if node.Source != nil {
		v, err := ast.Evaluate(node.Source, c)
		if err != nil {
			return nil, err
		}
		if err := value.Check(v, node.Source.Location(), value.ColorArrayKind); err != nil {
			return nil, err
		}
		colors = v.(value.Array).Colors()
	} else {
		for _, expr := range node.Colors {
			v, err := ast.Evaluate(expr, c)
			if err != nil {
				return nil, err
			}
			col, err := value.ForceColor(v, expr.Location())
			if err != nil {
				return nil, err
			}
			colors = append(colors, col)
		}
	}
	if len(colors) < 2 {
		return nil, diagnostics.Newf(diagnostics.ErrArity, node.Loc, "two or more colors are required for interpolation")
	}

	params := []value.Param{{Name: "colors", Value: value.ColorArray(colors...)}}
	if node.Domain != nil {
		domain := make([]float64, len(node.Domain))
		for i, expr := range node.Domain {
			v, err := ast.Evaluate(expr, c)
			if err != nil {
				return nil, err
			}
			if domain[i], err = value.ForceNumber(v, expr.Location()); err != nil {
				return nil, err
			}
		}
		params = append(params, value.Param{Name: "domain", Value: value.NumberArray(domain...)})
	}
	if node.Mode != "" {
		params = append(params, value.Param{Name: "mode", Value: value.Text(node.Mode)})
	}
	return value.NewColorScale(value.ScaleLinear, nil, params), nil
}

func (c *CoreEvaluator) VisitBezier(node *ast.BezierExpr) (value.Value, error) {
	v, err := ast.Evaluate(node.Colors, c)
	if err != nil {
		return nil, err
	}
	if err := value.Check(v, node.Colors.Location(), value.ColorArrayKind); err != nil {
		return nil, err
	}
	colors := v.(value.Array)
	if len(colors) < MinBezierStops || len(colors) > MaxBezierStops {
		return nil, diagnostics.Newf(diagnostics.ErrArity, node.Loc,
			"bezier interpolate supports from %d to %d colors, you provided: %d", MinBezierStops, MaxBezierStops, len(colors))
	}
	params := []value.Param{{Name: "colors", Value: value.Clone(colors)}}
	return value.NewColorScale(value.ScaleBezier, nil, params), nil
}

func (c *CoreEvaluator) VisitCubehelix(*ast.CubehelixExpr) (value.Value, error) {
	return value.NewColorScale(value.ScaleCubehelix, nil, nil), nil
}

func (c *CoreEvaluator) VisitBrewerConst(node *ast.BrewerConst) (value.Value, error) {
	colors, ok := colormath.Brewer(node.Name)
	if !ok {
		return nil, diagnostics.Newf(diagnostics.ErrUnknownIdentifier, node.Loc, "unknown brewer palette '%s'", node.Name)
	}
	return value.ColorArray(colors...), nil
}

func (c *CoreEvaluator) VisitParam(node *ast.ParamExpr) (value.Value, error) {
	return DispatchParam(c, node)
}

func (c *CoreEvaluator) VisitUnary(node *ast.UnaryExpr) (value.Value, error) {
	return DispatchUnary(c, node)
}

func (c *CoreEvaluator) VisitBinary(node *ast.BinaryExpr) (value.Value, error) {
	return DispatchBinary(c, node)
}

func (c *CoreEvaluator) VisitGetVar(node *ast.GetVar) (value.Value, error) {
	v, ok := c.env.Get(node.Name)
	if !ok {
		return nil, diagnostics.Newf(diagnostics.ErrUnknownIdentifier, node.Loc, "variable %s is not defined", node.Name)
	}
	return v, nil
}

func (c *CoreEvaluator) VisitSetVar(node *ast.SetVar) (value.Value, error) {
	v, err := ast.Evaluate(node.Value, c)
	if err != nil {
		return nil, err
	}
	if err := c.storeVar(node.Name, v, node.Loc); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *CoreEvaluator) storeVar(name string, v value.Value, loc *token.Loc) error {
	if !c.env.Set(name, value.Clone(v)) {
		return diagnostics.Newf(diagnostics.ErrInvalidAssignment, loc, "cannot assign undefined value to variable %s", name)
	}
	return nil
}

// numInRange evaluates expr and requires a number in [min, max].
func (c *CoreEvaluator) numInRange(expr ast.Expression, min, max float64) (float64, error) {
	v, err := ast.Evaluate(expr, c)
	if err != nil {
		return 0, err
	}
	return value.ForceNumInRange(v, min, max, expr.Location())
}

// number evaluates expr and requires a number.
func (c *CoreEvaluator) number(expr ast.Expression) (float64, error) {
	v, err := ast.Evaluate(expr, c)
	if err != nil {
		return 0, err
	}
	return value.ForceNumber(v, expr.Location())
}
