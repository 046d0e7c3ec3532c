package less

import (
	"strings"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/value"
)

// blendFuncs are the LESS color operations behind color,color operators.
var blendFuncs = map[evaluator.Operation]string{
	evaluator.OpBlendMultiply:   "multiply",
	evaluator.OpBlendScreen:     "screen",
	evaluator.OpBlendOverlay:    "overlay",
	evaluator.OpBlendHardLight:  "hardlight",
	evaluator.OpBlendSoftLight:  "softlight",
	evaluator.OpBlendDifference: "difference",
	evaluator.OpBlendExclusion:  "exclusion",
	evaluator.OpBlendNegate:     "negation",
}

var adjustFuncs = map[evaluator.Operation]string{
	evaluator.OpDesaturate: "desaturate",
	evaluator.OpSaturate:   "saturate",
	evaluator.OpDarken:     "darken",
	evaluator.OpLighten:    "lighten",
}

// Colors the mix operator turns into tint and shade.
const (
	white = "#ffffffff"
	black = "#000000ff"
)

func (l *Evaluator) Unary(op evaluator.UnaryOperation, node *ast.UnaryExpr, _ value.Value) (value.Value, error) {
	if op == evaluator.OpCorrectLightness {
		return nil, unsupportedScale(node.Loc)
	}
	s, err := l.text(node.Value)
	if err != nil {
		return nil, err
	}
	if op == evaluator.OpColorInverse {
		return value.Text("(#fff - " + s + ")"), nil
	}
	return value.Text("-" + s), nil
}

func (l *Evaluator) Binary(op evaluator.Operation, node *ast.BinaryExpr, left, _ value.Value) (value.Value, error) {
	if fn, ok := blendFuncs[op]; ok {
		return l.call(fn, node.Left, node.Right, false, false)
	}
	if fn, ok := adjustFuncs[op]; ok {
		return l.call(fn, node.Left, node.Right, true, true)
	}

	switch op {
	case evaluator.OpNumbersAdd, evaluator.OpNumbersSubtract, evaluator.OpNumbersMultiply, evaluator.OpNumbersDivide,
		evaluator.OpColorNumberAdd, evaluator.OpColorNumberSubtract, evaluator.OpColorNumberMultiply, evaluator.OpColorNumberDivide,
		evaluator.OpBlendAdd, evaluator.OpBlendSubtract, evaluator.OpBlendDivide:
		return l.arithmetic(node)

	case evaluator.OpNumberPower:
		base, err := l.text(unwrap(node.Left))
		if err != nil {
			return nil, err
		}
		exp, err := l.text(unwrap(node.Right))
		if err != nil {
			return nil, err
		}
		return value.Text("pow(" + base + ", " + exp + ")"), nil

	case evaluator.OpContrast:
		return nil, unsupported(node.Loc, "calculating numeric contrast value is not supported by LESS")

	case evaluator.OpMix:
		return l.mix(node, left)

	case evaluator.OpSample:
		return nil, unsupportedScale(node.Loc)
	}

	if mode, ok := op.BlendMode(); ok {
		return nil, unsupported(node.Loc, "'%s' blending function is not supported by LESS", mode)
	}
	return nil, nil
}

func (l *Evaluator) arithmetic(node *ast.BinaryExpr) (value.Value, error) {
	left, err := l.text(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := l.text(node.Right)
	if err != nil {
		return nil, err
	}
	return value.Text(left + " " + node.Operator + " " + right), nil
}

func (l *Evaluator) mix(node *ast.BinaryExpr, left value.Value) (value.Value, error) {
	a, err := l.text(unwrap(node.Left))
	if err != nil {
		return nil, err
	}
	b, err := l.text(unwrap(node.Right))
	if err != nil {
		return nil, err
	}
	params := []string{a, b}

	if opts := node.Options; opts != nil {
		if opts.Ratio != nil {
			p, err := l.percentage(opts.Ratio)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		if opts.Mode != "" && opts.Mode != "rgb" {
			return nil, unsupported(node.Loc, "LESS supports mixing colors only in RGB color space")
		}
	}

	fn := "mix"
	if col, ok := left.(value.Color); ok {
		switch col.Rounded().Hex(true) {
		case white:
			fn, params = "tint", params[1:]
		case black:
			fn, params = "shade", params[1:]
		}
	}
	return value.Text(fn + "(" + strings.Join(params, ", ") + ")"), nil
}

// call emits fn(left, right[, relative]). The left operand loses its
// parentheses; the right one is turned into a percentage on request.
func (l *Evaluator) call(fn string, left, right ast.Expression, percent, relative bool) (value.Value, error) {
	a, err := l.text(unwrap(left))
	if err != nil {
		return nil, err
	}
	var b string
	if percent {
		b, err = l.percentage(right)
	} else {
		b, err = l.text(right)
	}
	if err != nil {
		return nil, err
	}

	params := []string{a, b}
	if relative {
		params = append(params, "relative")
	}
	return value.Text(fn + "(" + strings.Join(params, ", ") + ")"), nil
}

// percentage keeps a percent literal, scales a number literal and wraps
// anything else into percentage().
func (l *Evaluator) percentage(n ast.Expression) (string, error) {
	switch x := n.(type) {
	case *ast.PercentExpr:
		return l.text(x)
	case *ast.NumberLiteral:
		v, err := l.core.VisitNumberLiteral(x)
		if err != nil {
			return "", err
		}
		return FormatNumber(float64(v.(value.Number))*100) + "%", nil
	}
	s, err := l.text(n)
	if err != nil {
		return "", err
	}
	return "percentage(" + s + ")", nil
}
