package evaluator

import (
	"math"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/value"
)

// DefaultMixRatio is used by '|' when no ratio is given.
const DefaultMixRatio = 0.5

func (c *CoreEvaluator) Unary(op UnaryOperation, node *ast.UnaryExpr, operand value.Value) (value.Value, error) {
	switch op {
	case OpUnaryMinus:
		return -operand.(value.Number), nil
	case OpColorInverse:
		return value.NewColor(colormath.Inverse(operand.(value.Color).Color)), nil
	case OpCorrectLightness:
		return operand.(*value.ColorScale).WithScale("correctLightness", nil), nil
	}
	return nil, diagnostics.Newf(diagnostics.ErrInternal, node.Loc, "invalid operator: %s", node.Operator)
}

func (c *CoreEvaluator) Binary(op Operation, node *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	if mode, ok := op.BlendMode(); ok {
		return value.NewColor(colormath.Blend(left.(value.Color).Color, right.(value.Color).Color, mode)), nil
	}

	switch op {
	case OpNumbersAdd, OpNumbersSubtract, OpNumbersMultiply, OpNumbersDivide:
		f, err := colormath.ArithFunc(node.Operator)
		if err != nil {
			return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
		}
		return value.Number(f(float64(left.(value.Number)), float64(right.(value.Number)))), nil

	case OpNumberPower:
		return value.Number(math.Pow(float64(left.(value.Number)), float64(right.(value.Number)))), nil

	case OpColorNumberAdd, OpColorNumberSubtract, OpColorNumberMultiply, OpColorNumberDivide:
		col, n := orderColorNumber(left, right)
		res, err := colormath.Arith(col, node.Operator, n)
		if err != nil {
			return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
		}
		return value.NewColor(res), nil

	case OpContrast:
		return value.Number(colormath.Contrast(left.(value.Color).Color, right.(value.Color).Color)), nil

	case OpMix:
		return c.mix(node, left.(value.Color).Color, right.(value.Color).Color)

	case OpSample:
		return c.sample(node, left.(*value.ColorScale), right)

	case OpDesaturate, OpSaturate, OpDarken, OpLighten:
		return c.adjust(op, node, left.(value.Color).Color, right)
	}
	return nil, diagnostics.Newf(diagnostics.ErrInternal, node.Loc, "operation %s is not implemented", op)
}

// orderColorNumber orders a color,number pair regardless of operand order.
func orderColorNumber(left, right value.Value) (colormath.Color, float64) {
	if col, ok := left.(value.Color); ok {
		return col.Color, float64(right.(value.Number))
	}
	return right.(value.Color).Color, float64(left.(value.Number))
}

func (c *CoreEvaluator) mix(node *ast.BinaryExpr, left, right colormath.Color) (value.Value, error) {
	ratio := DefaultMixRatio
	mode := colormath.SpaceRGB
	if opts := node.Options; opts != nil {
		if opts.Ratio != nil {
			n, err := c.number(opts.Ratio)
			if err != nil {
				return nil, err
			}
			ratio = n
		}
		if opts.Mode != "" {
			m, ok := colormath.ParseSpace(opts.Mode)
			if !ok {
				return nil, diagnostics.Newf(diagnostics.ErrUnknownIdentifier, node.Loc, "unknown interpolation mode %s", opts.Mode)
			}
			mode = m
		}
	}
	res, err := colormath.Mix(left, right, ratio, mode)
	if err != nil {
		return nil, wrap(diagnostics.ErrUnsupported, node.Loc, err)
	}
	return value.NewColor(res), nil
}

func (c *CoreEvaluator) sample(node *ast.BinaryExpr, sc *value.ColorScale, count value.Value) (value.Value, error) {
	n, err := value.ForceNumInRange(count, MinSamples, MaxSamples, node.Right.Location())
	if err != nil {
		return nil, err
	}
	scale, err := sc.Build()
	if err != nil {
		return nil, wrap(diagnostics.ErrArity, node.Loc, err)
	}
	colors, err := scale.Colors(int(n))
	if err != nil {
		return nil, wrap(diagnostics.ErrUnsupported, node.Loc, err)
	}
	return value.ColorArray(colors...), nil
}

// adjust scales lch chroma (saturation) or lab lightness by 1±amount.
func (c *CoreEvaluator) adjust(op Operation, node *ast.BinaryExpr, col colormath.Color, amount value.Value) (value.Value, error) {
	amt, err := value.ForceNumInRange(amount, 0, 1, node.Right.Location())
	if err != nil {
		return nil, err
	}

	comp := Component{colormath.SpaceLab, 'l'}
	if op == OpDesaturate || op == OpSaturate {
		comp = Component{colormath.SpaceLCH, 'c'}
	}
	factor := 1 - amt
	if op == OpSaturate || op == OpLighten {
		factor = 1 + amt
	}

	cur, err := col.Get(comp.Space, comp.Index())
	if err != nil {
		return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
	}
	res, err := col.Set(comp.Space, comp.Index(), cur*factor)
	if err != nil {
		return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
	}
	return value.NewColor(res), nil
}
