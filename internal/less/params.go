package less

import (
	"strconv"
	"strings"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/value"
)

// componentFuncs are the LESS channel getters.
var componentFuncs = map[evaluator.ParamID]string{
	evaluator.ParamRgbR: "red",
	evaluator.ParamRgbG: "green",
	evaluator.ParamRgbB: "blue",
	evaluator.ParamHslH: "hue",
	evaluator.ParamHslS: "saturation",
	evaluator.ParamHslL: "lightness",
	evaluator.ParamHsvH: "hsvhue",
	evaluator.ParamHsvS: "hsvsaturation",
	evaluator.ParamHsvV: "hsvvalue",
}

var alphaFuncs = map[string]string{
	"":  "fade",
	"+": "fadein",
	"-": "fadeout",
}

func (l *Evaluator) Param(id evaluator.ParamID, op evaluator.ParamOp, node *ast.ParamExpr, obj value.Value) (value.Value, error) {
	switch obj.(type) {
	case *value.ColorScale:
		return nil, unsupportedScale(node.Loc)
	case value.Array:
		return l.element(node)
	}

	switch id {
	case evaluator.ParamNumber:
		return nil, unsupported(node.Loc, "defining color by number is not supported by LESS")
	case evaluator.ParamTemperature:
		return nil, unsupported(node.Loc, "defining color by temperature is not supported by LESS")

	case evaluator.ParamLuminance:
		if op != evaluator.ParamGet {
			return nil, unsupported(node.Loc, "setting luminance is not supported by LESS")
		}
		return l.getter("luma", unwrap(node.Obj))

	case evaluator.ParamAlpha:
		if op == evaluator.ParamGet {
			return l.getter("alpha", unwrap(node.Obj))
		}
		fn, ok := alphaFuncs[node.RelativeOperator()]
		if !ok {
			return nil, unsupported(node.Loc, "assignment operator '%s' for alpha channel is not supported by LESS", node.Operator)
		}
		return l.call(fn, node.Obj, node.Value, true, false)
	}

	comp, ok := id.Component()
	if !ok {
		return nil, nil
	}
	fn, ok := componentFuncs[id]
	if !ok {
		return nil, unsupportedSpace(string(comp.Space), node.Loc)
	}
	if op != evaluator.ParamGet {
		return nil, unsupported(node.Loc, "setting components in %s color space is not supported by LESS",
			strings.ToUpper(string(comp.Space)))
	}
	return l.getter(fn, node.Obj)
}

func (l *Evaluator) getter(fn string, obj ast.Expression) (value.Value, error) {
	s, err := l.text(obj)
	if err != nil {
		return nil, err
	}
	return value.Text(fn + "(" + s + ")"), nil
}

// element emits extract(); LESS lists are indexed from one.
func (l *Evaluator) element(node *ast.ParamExpr) (value.Value, error) {
	list, err := l.text(unwrap(node.Obj))
	if err != nil {
		return nil, err
	}
	idx, err := strconv.ParseFloat(node.Name, 64)
	if err != nil {
		return nil, diagnostics.Newf(diagnostics.ErrSyntax, node.Loc, "invalid element index '%s'", node.Name)
	}
	return value.Text("extract(" + list + ", " + strconv.Itoa(int(idx)+1) + ")"), nil
}
