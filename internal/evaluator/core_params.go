package evaluator

import (
	"math"
	"strconv"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

func (c *CoreEvaluator) Param(id ParamID, op ParamOp, node *ast.ParamExpr, obj value.Value) (value.Value, error) {
	switch o := obj.(type) {
	case value.Color:
		return c.colorParam(id, op, node, o.Color)
	case *value.ColorScale:
		return c.scaleParam(id, node, o)
	case value.Array:
		return c.element(node, o)
	}
	return nil, nil
}

func (c *CoreEvaluator) colorParam(id ParamID, op ParamOp, node *ast.ParamExpr, col colormath.Color) (value.Value, error) {
	switch id {
	case ParamNumber:
		cur := col.Num()
		if op == ParamGet {
			return value.Number(cur), nil
		}
		n, err := c.setValue(node, cur, 0, MaxColorNumber)
		if err != nil {
			return nil, err
		}
		return value.NewColor(colormath.FromNumber(n).WithAlpha(col.A)), nil

	case ParamTemperature:
		cur := col.Temperature()
		if op == ParamGet {
			return value.Number(cur), nil
		}
		k, err := c.setValue(node, cur, 0, MaxTemperature)
		if err != nil {
			return nil, err
		}
		return value.NewColor(colormath.FromTemperature(k)), nil

	case ParamLuminance:
		cur := col.Luminance()
		if op == ParamGet {
			return value.Number(cur), nil
		}
		lum, err := c.setValue(node, cur, 0, 1)
		if err != nil {
			return nil, err
		}
		res, err := col.WithLuminance(lum, LuminanceSpace(node.Name))
		if err != nil {
			return nil, wrap(diagnostics.ErrUnsupported, node.Loc, err)
		}
		return value.NewColor(res), nil

	case ParamAlpha:
		if op == ParamGet {
			return value.Number(col.A), nil
		}
		var a float64
		var err error
		switch node.RelativeOperator() {
		case "*", "/":
			var n float64
			if n, err = c.number(node.Value); err == nil {
				a, err = c.relative(node, col.A, n)
			}
		default:
			a, err = c.setValue(node, col.A, 0, 1)
		}
		if err != nil {
			return nil, err
		}
		return value.NewColor(col.WithAlpha(clamp(a, 0, 1))), nil
	}

	comp, ok := id.Component()
	if !ok {
		return nil, nil
	}
	cur, err := col.Get(comp.Space, comp.Index())
	if err != nil {
		return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
	}
	if op == ParamGet {
		return value.Number(cur), nil
	}

	ranges, err := colormath.Ranges(comp.Space)
	if err != nil {
		return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
	}
	r := ranges[comp.Index()]
	n, err := c.numInRange(node.Value, r.Min, r.Max)
	if err != nil {
		return nil, err
	}
	if op == ParamSetRelative {
		if math.IsNaN(cur) {
			cur = 0
		}
		if n, err = c.relative(node, cur, n); err != nil {
			return nil, err
		}
		// hue wraps around the circle, everything else saturates
		if comp.Letter != 'h' {
			n = clamp(n, r.Min, r.Max)
		}
	}
	res, err := col.Set(comp.Space, comp.Index(), n)
	if err != nil {
		return nil, wrap(diagnostics.ErrInternal, node.Loc, err)
	}
	return value.NewColor(res), nil
}

// setValue evaluates the new value of a numeric parameter. An absolute
// value must be within [min, max]; a relative one is applied to cur and
// the result is clamped.
func (c *CoreEvaluator) setValue(node *ast.ParamExpr, cur, min, max float64) (float64, error) {
	n, err := c.numInRange(node.Value, min, max)
	if err != nil {
		return 0, err
	}
	if node.RelativeOperator() == "" {
		return n, nil
	}
	n, err = c.relative(node, cur, n)
	if err != nil {
		return 0, err
	}
	return clamp(n, min, max), nil
}

func (c *CoreEvaluator) relative(node *ast.ParamExpr, cur, n float64) (float64, error) {
	f, err := colormath.ArithFunc(node.RelativeOperator())
	if err != nil {
		return 0, wrap(diagnostics.ErrInternal, node.Loc, err)
	}
	return f(cur, n), nil
}

func (c *CoreEvaluator) scaleParam(id ParamID, node *ast.ParamExpr, sc *value.ColorScale) (value.Value, error) {
	v, err := ast.Evaluate(node.Value, c)
	if err != nil {
		return nil, err
	}
	loc := node.Value.Location()

	switch id {
	case ParamPadding:
		p, err := numberOrRange(v, loc)
		if err != nil {
			return nil, err
		}
		return sc.WithScale("padding", p), nil

	case ParamDomain:
		if err := value.Check(v, loc, value.NumberArrayKind); err != nil {
			return nil, err
		}
		if len(v.(value.Array)) < 2 {
			return nil, diagnostics.Newf(diagnostics.ErrArity, loc, "'domain' parameter should contain at least two elements")
		}
		return sc.WithScale("domain", value.Clone(v)), nil

	case ParamStart:
		n, err := value.ForceNumInRange(v, 0, 360, loc)
		if err != nil {
			return nil, err
		}
		return sc.With("start", value.Number(n)), nil

	case ParamRotations, ParamGamma:
		n, err := value.ForceNumber(v, loc)
		if err != nil {
			return nil, err
		}
		name := "rotations"
		if id == ParamGamma {
			name = "gamma"
		}
		return sc.With(name, value.Number(n)), nil

	case ParamHue:
		p, err := numberOrRange(v, loc)
		if err != nil {
			return nil, err
		}
		return sc.With("hue", p), nil

	case ParamLightness:
		r, err := value.ForceRange(v, loc)
		if err != nil {
			return nil, err
		}
		if r[0] == r[1] {
			return nil, diagnostics.Newf(diagnostics.ErrRange, loc, "empty 'lightness' range")
		}
		return sc.With("lightness", value.NumberArray(r[0], r[1])), nil
	}
	return nil, nil
}

func numberOrRange(v value.Value, loc *token.Loc) (value.Value, error) {
	if _, ok := v.(value.Array); ok {
		r, err := value.ForceRange(v, loc)
		if err != nil {
			return nil, err
		}
		return value.NumberArray(r[0], r[1]), nil
	}
	n, err := value.ForceNumber(v, loc)
	if err != nil {
		return nil, err
	}
	return value.Number(n), nil
}

func (c *CoreEvaluator) element(node *ast.ParamExpr, arr value.Array) (value.Value, error) {
	idx, err := strconv.ParseFloat(node.Name, 64)
	if err != nil {
		return nil, diagnostics.Newf(diagnostics.ErrSyntax, node.Loc, "invalid element index '%s'", node.Name)
	}
	if _, err := value.ForceNumInRange(value.Number(idx), 0, float64(len(arr)-1), node.Loc); err != nil {
		return nil, err
	}
	return arr[int(idx)], nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
