// Package less transpiles color expressions into LESS stylesheet
// expressions. Every program is first run through the core evaluator so
// that type and range errors surface exactly as they would when
// interpreting; the LESS text is then produced from the tree.
package less

import (
	"strconv"
	"strings"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

// RandomColor is a LESS escape that picks a color when the stylesheet
// is compiled.
const RandomColor = "~\"#`(0x1000000+Math.random()*0xffffff).toString(16).substr(1,6)`\""

// Evaluator produces value.Text for every node.
type Evaluator struct {
	core *evaluator.CoreEvaluator
}

var _ evaluator.Evaluator = (*Evaluator)(nil)

// New returns a LESS evaluator validating through core. Variables
// assigned while transpiling land in core's environment.
func New(core *evaluator.CoreEvaluator) *Evaluator {
	if core == nil {
		core = evaluator.NewCore()
	}
	return &Evaluator{core: core}
}

func (l *Evaluator) Name() string                   { return "evaluator.less" }
func (l *Evaluator) Core() *evaluator.CoreEvaluator { return l.core }

func (l *Evaluator) text(n ast.Node) (string, error) {
	v, err := ast.Evaluate(n, l)
	if err != nil {
		return "", err
	}
	return v.Inspect(), nil
}

func unsupported(loc *token.Loc, format string, args ...any) error {
	return diagnostics.Newf(diagnostics.ErrUnsupported, loc, format, args...)
}

func unsupportedScale(loc *token.Loc) error {
	return unsupported(loc, "color scales are not supported by LESS")
}

func unsupportedSpace(space string, loc *token.Loc) error {
	return unsupported(loc, "color space '%s' is not supported by LESS", strings.ToUpper(space))
}

// unwrap strips any number of enclosing parentheses.
func unwrap(n ast.Expression) ast.Expression {
	for {
		p, ok := n.(*ast.ParenthesesExpr)
		if !ok {
			return n
		}
		n = p.Expr
	}
}

// FormatNumber prints integers as is and everything else with at most
// eight decimals.
func FormatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return value.TrimFraction(strconv.FormatFloat(n, 'f', 8, 64))
}

func (l *Evaluator) VisitProgram(node *ast.Program) (value.Value, error) {
	if _, err := l.core.VisitProgram(node); err != nil {
		return nil, err
	}
	if len(node.Statements) == 1 {
		return ast.Evaluate(node.Statements[0], l)
	}

	lines := make([]string, len(node.Statements))
	for i, st := range node.Statements {
		s, err := l.text(st)
		if err != nil {
			return nil, err
		}
		lines[i] = s + ";"
	}
	return value.Text(strings.Join(lines, "\n")), nil
}

func (l *Evaluator) VisitStatement(node *ast.Statement) (value.Value, error) {
	return ast.Evaluate(node.Expr, l)
}

func (l *Evaluator) VisitParentheses(node *ast.ParenthesesExpr) (value.Value, error) {
	s, err := l.text(node.Expr)
	if err != nil {
		return nil, err
	}
	return value.Text("(" + s + ")"), nil
}

func (l *Evaluator) VisitNumberLiteral(node *ast.NumberLiteral) (value.Value, error) {
	n, err := l.core.VisitNumberLiteral(node)
	if err != nil {
		return nil, err
	}
	return value.Text(FormatNumber(float64(n.(value.Number)))), nil
}

func (l *Evaluator) VisitPercent(node *ast.PercentExpr) (value.Value, error) {
	s, err := l.text(node.Value)
	if err != nil {
		return nil, err
	}
	return value.Text(s + "%"), nil
}

func (l *Evaluator) VisitArrayLiteral(node *ast.ArrayLiteral) (value.Value, error) {
	parts := make([]string, len(node.Elements))
	for i, el := range node.Elements {
		s, err := l.text(el)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return value.Text(strings.Join(parts, " ")), nil
}

func (l *Evaluator) VisitColorNameLiteral(node *ast.ColorNameLiteral) (value.Value, error) {
	return value.Text(node.Name), nil
}

func (l *Evaluator) VisitColorHexLiteral(node *ast.ColorHexLiteral) (value.Value, error) {
	if strings.HasPrefix(node.Hex, "#") {
		return value.Text(node.Hex), nil
	}
	return value.Text("#" + node.Hex), nil
}

func (l *Evaluator) VisitColorByNumber(node *ast.ColorByNumber) (value.Value, error) {
	return nil, unsupported(node.Loc, "defining color by number is not supported by LESS")
}

func (l *Evaluator) VisitColorByTemperature(node *ast.ColorByTemperature) (value.Value, error) {
	return nil, unsupported(node.Loc, "defining color by temperature is not supported by LESS")
}

func (l *Evaluator) VisitColorByWavelength(node *ast.ColorByWavelength) (value.Value, error) {
	return nil, unsupported(node.Loc, "defining color by wavelength is not supported by LESS")
}

func (l *Evaluator) VisitColorBySpaceParams(node *ast.ColorBySpaceParams) (value.Value, error) {
	params := make([]string, len(node.Params))
	for i, p := range node.Params {
		s, err := l.text(p)
		if err != nil {
			return nil, err
		}
		params[i] = s
	}

	fn := node.Space
	switch node.Space {
	case "argb":
	case "rgb", "hsl", "hsv":
		if len(params) > 3 {
			fn += "a"
		}
	default:
		return nil, unsupportedSpace(node.Space, node.Loc)
	}
	return value.Text(fn + "(" + strings.Join(params, ", ") + ")"), nil
}

func (l *Evaluator) VisitRandomColor(*ast.RandomColor) (value.Value, error) {
	return value.Text(RandomColor), nil
}

func (l *Evaluator) VisitScale(node *ast.ScaleExpr) (value.Value, error) {
	return nil, unsupportedScale(node.Loc)
}

func (l *Evaluator) VisitBezier(node *ast.BezierExpr) (value.Value, error) {
	return nil, unsupportedScale(node.Loc)
}

func (l *Evaluator) VisitCubehelix(node *ast.CubehelixExpr) (value.Value, error) {
	return nil, unsupportedScale(node.Loc)
}

func (l *Evaluator) VisitBrewerConst(node *ast.BrewerConst) (value.Value, error) {
	v, err := l.core.VisitBrewerConst(node)
	if err != nil {
		return nil, err
	}
	colors := v.(value.Array).Colors()
	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = value.FormatColor(c, false)
	}
	return value.Text(strings.Join(hexes, " ")), nil
}

func (l *Evaluator) VisitParam(node *ast.ParamExpr) (value.Value, error) {
	return evaluator.DispatchParam(l, node)
}

func (l *Evaluator) VisitUnary(node *ast.UnaryExpr) (value.Value, error) {
	return evaluator.DispatchUnary(l, node)
}

func (l *Evaluator) VisitBinary(node *ast.BinaryExpr) (value.Value, error) {
	return evaluator.DispatchBinary(l, node)
}

func (l *Evaluator) VisitGetVar(node *ast.GetVar) (value.Value, error) {
	return value.Text("@" + strings.TrimPrefix(node.Name, "$")), nil
}

func (l *Evaluator) VisitSetVar(node *ast.SetVar) (value.Value, error) {
	s, err := l.text(node.Value)
	if err != nil {
		return nil, err
	}
	return value.Text("@" + strings.TrimPrefix(node.Name, "$") + ": " + s), nil
}
