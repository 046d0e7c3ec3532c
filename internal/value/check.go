package value

import (
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/token"
)

// Check succeeds when v satisfies at least one of kinds.
func Check(v Value, loc *token.Loc, kinds ...Kind) error {
	k := TypeOf(v)
	for _, want := range kinds {
		if k.Satisfies(want) {
			return nil
		}
	}
	return diagnostics.Newf(diagnostics.ErrOperandType, loc, "value is not %s", describeAll(kinds))
}

func ForceNumber(v Value, loc *token.Loc) (float64, error) {
	if err := Check(v, loc, NumberKind); err != nil {
		return 0, err
	}
	return float64(v.(Number)), nil
}

func ForceColor(v Value, loc *token.Loc) (colormath.Color, error) {
	if err := Check(v, loc, ColorKind); err != nil {
		return colormath.Color{}, err
	}
	return v.(Color).Color, nil
}

func ForceColorScale(v Value, loc *token.Loc) (*ColorScale, error) {
	if err := Check(v, loc, ColorScaleKind); err != nil {
		return nil, err
	}
	return v.(*ColorScale), nil
}

func ForceArray(v Value, loc *token.Loc) (Array, error) {
	if err := Check(v, loc, ArrayKind); err != nil {
		return nil, err
	}
	return v.(Array), nil
}

// ForceNumInRange requires a number within [min, max].
func ForceNumInRange(v Value, min, max float64, loc *token.Loc) (float64, error) {
	n, err := ForceNumber(v, loc)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, diagnostics.Newf(diagnostics.ErrRange, loc,
			"number in a range [%s..%s] is expected, you provided: %s",
			Literal(min), Literal(max), Literal(n))
	}
	return n, nil
}

// ForceRange requires a two-element number array.
func ForceRange(v Value, loc *token.Loc) ([2]float64, error) {
	a, ok := v.(Array)
	if !ok || a.Kind() != NumberArrayKind || len(a) != 2 {
		return [2]float64{}, diagnostics.Newf(diagnostics.ErrOperandType, loc, "operand is not valid numeric range")
	}
	return [2]float64{float64(a[0].(Number)), float64(a[1].(Number))}, nil
}
