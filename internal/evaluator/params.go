package evaluator

import (
	"regexp"
	"strings"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/value"
)

// ParamOp is the kind of parameter access a ParamExpr performs.
type ParamOp int

const (
	ParamGet ParamOp = iota + 1
	ParamSet
	ParamSetRelative
)

func (op ParamOp) String() string {
	switch op {
	case ParamGet:
		return "get"
	case ParamSet:
		return "set"
	case ParamSetRelative:
		return "relative set"
	}
	return "unknown"
}

// OpOf derives the access kind from the node shape.
func OpOf(node *ast.ParamExpr) ParamOp {
	switch {
	case node.Value == nil:
		return ParamGet
	case node.RelativeOperator() == "":
		return ParamSet
	}
	return ParamSetRelative
}

// ParamID identifies a resolved parameter.
type ParamID int

const (
	ParamNumber ParamID = iota + 1
	ParamTemperature
	ParamLuminance
	ParamAlpha

	ParamRgbR
	ParamRgbG
	ParamRgbB
	ParamCmykC
	ParamCmykM
	ParamCmykY
	ParamCmykK
	ParamHslH
	ParamHslS
	ParamHslL
	ParamHsvH
	ParamHsvS
	ParamHsvV
	ParamHsiH
	ParamHsiS
	ParamHsiI
	ParamLabL
	ParamLabA
	ParamLabB
	ParamLchL
	ParamLchC
	ParamLchH

	ParamPadding
	ParamDomain
	ParamStart
	ParamRotations
	ParamHue
	ParamGamma
	ParamLightness

	ParamElement
)

// Component is a single channel of a color space.
type Component struct {
	Space  colormath.Space
	Letter byte
}

func (c Component) Index() int {
	return c.Space.Index(c.Letter)
}

func (c Component) String() string {
	return string(c.Space) + "." + string(c.Letter)
}

var components = map[ParamID]Component{
	ParamRgbR:  {colormath.SpaceRGB, 'r'},
	ParamRgbG:  {colormath.SpaceRGB, 'g'},
	ParamRgbB:  {colormath.SpaceRGB, 'b'},
	ParamCmykC: {colormath.SpaceCMYK, 'c'},
	ParamCmykM: {colormath.SpaceCMYK, 'm'},
	ParamCmykY: {colormath.SpaceCMYK, 'y'},
	ParamCmykK: {colormath.SpaceCMYK, 'k'},
	ParamHslH:  {colormath.SpaceHSL, 'h'},
	ParamHslS:  {colormath.SpaceHSL, 's'},
	ParamHslL:  {colormath.SpaceHSL, 'l'},
	ParamHsvH:  {colormath.SpaceHSV, 'h'},
	ParamHsvS:  {colormath.SpaceHSV, 's'},
	ParamHsvV:  {colormath.SpaceHSV, 'v'},
	ParamHsiH:  {colormath.SpaceHSI, 'h'},
	ParamHsiS:  {colormath.SpaceHSI, 's'},
	ParamHsiI:  {colormath.SpaceHSI, 'i'},
	ParamLabL:  {colormath.SpaceLab, 'l'},
	ParamLabA:  {colormath.SpaceLab, 'a'},
	ParamLabB:  {colormath.SpaceLab, 'b'},
	ParamLchL:  {colormath.SpaceLCH, 'l'},
	ParamLchC:  {colormath.SpaceLCH, 'c'},
	ParamLchH:  {colormath.SpaceLCH, 'h'},
}

// Component returns the color channel behind id.
func (id ParamID) Component() (Component, bool) {
	c, ok := components[id]
	return c, ok
}

// ParamDef is one row of a parameter table. Resolve maps the matched
// name onto a parameter, Ops lists the supported access kinds.
type ParamDef struct {
	Pattern *regexp.Regexp
	Resolve func(name string) ParamID
	Ops     []ParamOp
}

func (d ParamDef) supports(op ParamOp) bool {
	for _, o := range d.Ops {
		if o == op {
			return true
		}
	}
	return false
}

var (
	manage  = []ParamOp{ParamGet, ParamSet, ParamSetRelative}
	setOnly = []ParamOp{ParamSet}
	getOnly = []ParamOp{ParamGet}

	hsvName    = regexp.MustCompile(`(?i)hsv`)
	hsiName    = regexp.MustCompile(`(?i)hsi`)
	labName    = regexp.MustCompile(`(?i)lab`)
	lchName    = regexp.MustCompile(`(?i)lch|hcl`)
	qualifiers = regexp.MustCompile(`(?i)^((\w+)\.)?\w+`)
)

func def(pattern string, ops []ParamOp, id ParamID) ParamDef {
	return ParamDef{
		Pattern: regexp.MustCompile("(?i)" + pattern),
		Resolve: func(string) ParamID { return id },
		Ops:     ops,
	}
}

func defFunc(pattern string, ops []ParamOp, resolve func(string) ParamID) ParamDef {
	return ParamDef{Pattern: regexp.MustCompile("(?i)" + pattern), Resolve: resolve, Ops: ops}
}

// colorParams is matched in order, first hit wins.
var colorParams = []ParamDef{
	def(`^(number|num|n)$`, manage, ParamNumber),
	def(`^(temperature|temp|t)$`, manage, ParamTemperature),
	def(`^((rgb|cmyk|hsl|hsv|hsi|lab|lch|hcl)\.)?(luminance|lum)$`, manage, ParamLuminance),
	def(`^(alpha|a)$`, manage, ParamAlpha),
	def(`^(rgb\.)?(red|r)$`, manage, ParamRgbR),
	def(`^(rgb\.)?(green|g)$`, manage, ParamRgbG),
	def(`^(rgb\.)?(blue|b)$`, manage, ParamRgbB),
	def(`^(cmyk\.)?(cyan|c)$`, manage, ParamCmykC),
	def(`^(cmyk\.)?(magenta|mag|m)$`, manage, ParamCmykM),
	def(`^(cmyk\.)?(yellow|yel|y)$`, manage, ParamCmykY),
	def(`^(cmyk\.)?(key|k)$`, manage, ParamCmykK),
	defFunc(`^((hsl|hsv|hsi|lch|hcl)\.)?(hue|h)$`, manage, func(name string) ParamID {
		switch {
		case hsvName.MatchString(name):
			return ParamHsvH
		case hsiName.MatchString(name):
			return ParamHsiH
		case lchName.MatchString(name):
			return ParamLchH
		}
		return ParamHslH
	}),
	defFunc(`^((hsl|hsv|hsi)\.)?(saturation|sat|s)$`, manage, func(name string) ParamID {
		switch {
		case hsvName.MatchString(name):
			return ParamHsvS
		case hsiName.MatchString(name):
			return ParamHsiS
		}
		return ParamHslS
	}),
	defFunc(`^((hsl|lab|lch|hcl)\.)?(lightness|ltns|lt|l)$`, manage, func(name string) ParamID {
		switch {
		case labName.MatchString(name):
			return ParamLabL
		case lchName.MatchString(name):
			return ParamLchL
		}
		return ParamHslL
	}),
	def(`^(hsv\.)?(value|val|v)$`, manage, ParamHsvV),
	def(`^(hsi\.)?(intensity|int|i)$`, manage, ParamHsiI),
	def(`^lab\.a$`, manage, ParamLabA),
	def(`^lab\.b$`, manage, ParamLabB),
	def(`^((((lch|hcl)\.)?(chroma|chr|ch))|lch\.c|hcl\.c)$`, manage, ParamLchC),
}

var (
	paddingParam   = def(`^(padding|pad|p)$`, setOnly, ParamPadding)
	domainParam    = def(`^(domain|dom|d)$`, setOnly, ParamDomain)
	cubehelixParam = []ParamDef{
		def(`^(start|s)$`, setOnly, ParamStart),
		def(`^(rotations|rot|r)$`, setOnly, ParamRotations),
		def(`^(hue|h)$`, setOnly, ParamHue),
		def(`^(gamma|g)$`, setOnly, ParamGamma),
		def(`^(lightness|lt|l)$`, setOnly, ParamLightness),
	}
	scaleParams     = []ParamDef{paddingParam, domainParam}
	bezierParams    = []ParamDef{paddingParam}
	cubehelixParams = append([]ParamDef{paddingParam}, cubehelixParam...)

	arrayParams = []ParamDef{def(`^\d+$`, getOnly, ParamElement)}
)

// paramDefs selects the table for the runtime kind of obj.
func paramDefs(obj value.Value) []ParamDef {
	switch v := obj.(type) {
	case value.Color:
		return colorParams
	case *value.ColorScale:
		switch v.Name {
		case value.ScaleLinear:
			return scaleParams
		case value.ScaleCubehelix:
			return cubehelixParams
		}
		return bezierParams
	case value.Array:
		return arrayParams
	}
	return nil
}

// LuminanceSpace returns the interpolation space named by the qualifier
// of a luminance parameter, e.g. "lab" for "lab.lum"; rgb by default.
func LuminanceSpace(name string) colormath.Space {
	m := qualifiers.FindStringSubmatch(name)
	if m != nil && m[2] != "" {
		if s, ok := colormath.ParseSpace(m[2]); ok {
			return s
		}
	}
	return colormath.SpaceRGB
}

// DispatchParam evaluates the target object with the core backend, looks
// the parameter name up in the table for its kind and hands the resolved
// parameter to e.
func DispatchParam(e Evaluator, node *ast.ParamExpr) (value.Value, error) {
	obj, err := ast.Evaluate(node.Obj, e.Core())
	if err != nil {
		return nil, err
	}
	op := OpOf(node)

	for _, d := range paramDefs(obj) {
		if !d.Pattern.MatchString(node.Name) {
			continue
		}
		if !d.supports(op) {
			return nil, diagnostics.Newf(diagnostics.ErrUnsupported, node.Loc,
				"operation '%s' is not supported for parameter '%s'", op, node.Name)
		}
		id := d.Resolve(node.Name)
		if id == ParamLuminance && op == ParamGet && strings.Contains(node.Name, ".") {
			return nil, diagnostics.Newf(diagnostics.ErrUnsupported, node.Loc,
				"color space should not be specified when retrieving luminance")
		}

		result, err := e.Param(id, op, node, obj)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return nil, diagnostics.Newf(diagnostics.ErrUnsupported, node.Loc,
				"operation '%s' for parameter '%s' is not supported by '%s'", op, node.Name, e.Name())
		}
		return result, nil
	}
	return nil, diagnostics.Newf(diagnostics.ErrUnknownIdentifier, node.Loc, "unknown parameter name '%s'", node.Name)
}
