package value

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/colormath"
)

// Scale constructor names.
const (
	ScaleLinear    = "scale"
	ScaleBezier    = "bezier"
	ScaleCubehelix = "cubehelix"
)

// Param is a named scale setting. A nil Value is a flag set to true.
type Param struct {
	Name  string
	Value Value
}

// ColorScale is a recipe for a gradient: a constructor name, its
// construction parameters and the parameters applied to the resulting
// scale, both in application order.
type ColorScale struct {
	Name        string
	Params      []Param
	ScaleParams []Param
}

func NewColorScale(name string, params, scaleParams []Param) *ColorScale {
	return &ColorScale{
		Name:        strings.ToLower(name),
		Params:      params,
		ScaleParams: scaleParams,
	}
}

func (*ColorScale) Kind() Kind        { return ColorScaleKind }
func (s *ColorScale) Inspect() string { return "<colorScale." + s.Name + ">" }
func (s *ColorScale) String() string  { return s.Inspect() }
func (*ColorScale) isValue()          {}

// Clone copies the parameter lists; parameter values are shared.
func (s *ColorScale) Clone() *ColorScale {
	return &ColorScale{
		Name:        s.Name,
		Params:      append([]Param(nil), s.Params...),
		ScaleParams: append([]Param(nil), s.ScaleParams...),
	}
}

// With returns a copy where the construction parameter name is moved to
// the end with the new value.
func (s *ColorScale) With(name string, v Value) *ColorScale {
	c := s.Clone()
	c.Params = replaceParam(c.Params, name, v)
	return c
}

// WithScale is With for scale parameters.
func (s *ColorScale) WithScale(name string, v Value) *ColorScale {
	c := s.Clone()
	c.ScaleParams = replaceParam(c.ScaleParams, name, v)
	return c
}

// Lookup returns the value of a scale parameter.
func (s *ColorScale) Lookup(name string) (Value, bool) {
	for _, p := range s.ScaleParams {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func replaceParam(params []Param, name string, v Value) []Param {
	for i, p := range params {
		if p.Name == name {
			params = append(params[:i:i], params[i+1:]...)
			break
		}
	}
	return append(params, Param{Name: name, Value: v})
}

// Build realizes the recipe.
func (s *ColorScale) Build() (*colormath.Scale, error) {
	var colors []colormath.Color
	if v, ok := s.Lookup("colors"); ok {
		if a, ok := v.(Array); ok {
			colors = a.Colors()
		}
	}

	var sc *colormath.Scale
	switch s.Name {
	case ScaleLinear:
		if len(colors) == 0 {
			return nil, errors.New("two or more colors are required for interpolation")
		}
		sc = colormath.NewScale(colors)
	case ScaleBezier:
		fn, err := colormath.Bezier(colors)
		if err != nil {
			return nil, err
		}
		sc = colormath.NewFuncScale(fn)
	case ScaleCubehelix:
		h := colormath.NewCubehelix()
		for _, p := range s.Params {
			applyHelixParam(h, p)
		}
		sc = h.Scale()
	default:
		return nil, errors.Newf("unknown color scale '%s'", s.Name)
	}

	for _, p := range s.ScaleParams {
		if err := applyScaleParam(sc, p); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func applyHelixParam(h *colormath.Cubehelix, p Param) {
	switch v := p.Value.(type) {
	case Number:
		n := float64(v)
		switch p.Name {
		case "start":
			h.Start = n
		case "rotations":
			h.Rotations = n
		case "hue":
			h.SetHue(n)
		case "gamma":
			h.Gamma = n
		case "lightness":
			h.Lightness = [2]float64{n, n}
		}
	case Array:
		ns := v.Numbers()
		if len(ns) != 2 {
			return
		}
		switch p.Name {
		case "hue":
			h.SetHueRange(ns[0], ns[1])
		case "lightness":
			h.Lightness = [2]float64{ns[0], ns[1]}
		}
	}
}

func applyScaleParam(sc *colormath.Scale, p Param) error {
	switch p.Name {
	case "colors":
	case "domain":
		if a, ok := p.Value.(Array); ok {
			sc.Domain(a.Numbers())
		}
	case "mode":
		if p.Value == nil {
			return nil
		}
		space, ok := colormath.ParseSpace(p.Value.Inspect())
		if !ok {
			return errors.Newf("interpolation mode '%s' is not supported", p.Value.Inspect())
		}
		sc.Mode(space)
	case "padding":
		switch v := p.Value.(type) {
		case Number:
			sc.Padding(float64(v), float64(v))
		case Array:
			if ns := v.Numbers(); len(ns) == 2 {
				sc.Padding(ns[0], ns[1])
			}
		}
	case "correctLightness":
		sc.CorrectLightness(true)
	}
	return nil
}
