package colormath

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Bezier returns a generator running a Bezier curve through 2 to 5
// colors in Lab space. Five colors are joined from two quadratic pieces.
func Bezier(colors []Color) (func(t float64) Color, error) {
	labs := make([][]float64, len(colors))
	for i, c := range colors {
		l, err := Components(c, SpaceLab)
		if err != nil {
			return nil, err
		}
		labs[i] = l
	}
	fromLab := func(f func(i int) float64) Color {
		c, _ := FromSpace(SpaceLab, []float64{f(0), f(1), f(2)}, 1)
		return c
	}

	switch len(colors) {
	case 2:
		l0, l1 := labs[0], labs[1]
		return func(t float64) Color {
			return fromLab(func(i int) float64 { return lerp(l0[i], l1[i], t) })
		}, nil
	case 3:
		l0, l1, l2 := labs[0], labs[1], labs[2]
		return func(t float64) Color {
			return fromLab(func(i int) float64 {
				return (1-t)*(1-t)*l0[i] + 2*(1-t)*t*l1[i] + t*t*l2[i]
			})
		}, nil
	case 4:
		l0, l1, l2, l3 := labs[0], labs[1], labs[2], labs[3]
		return func(t float64) Color {
			return fromLab(func(i int) float64 {
				u := 1 - t
				return u*u*u*l0[i] + 3*u*u*t*l1[i] + 3*u*t*t*l2[i] + t*t*t*l3[i]
			})
		}, nil
	case 5:
		first, err := Bezier(colors[:3])
		if err != nil {
			return nil, err
		}
		second, err := Bezier(colors[2:])
		if err != nil {
			return nil, err
		}
		return func(t float64) Color {
			if t < 0.5 {
				return first(t * 2)
			}
			return second((t - 0.5) * 2)
		}, nil
	}
	return nil, errors.Newf("bezier interpolate supports from 2 to 5 colors, you provided: %d", len(colors))
}

// Cubehelix is Dave Green's monotonic-lightness color helix.
type Cubehelix struct {
	Start     float64
	Rotations float64
	// Hue is the amplitude; when HueRange is set it runs from Hue to HueEnd.
	Hue, HueEnd float64
	HueRange    bool
	Gamma       float64
	Lightness   [2]float64
}

// NewCubehelix returns the helix with its conventional defaults.
func NewCubehelix() *Cubehelix {
	return &Cubehelix{Start: 300, Rotations: -1.5, Hue: 1, Gamma: 1, Lightness: [2]float64{0, 1}}
}

// SetHue sets a constant amplitude.
func (h *Cubehelix) SetHue(v float64) {
	h.Hue, h.HueRange = v, false
}

// SetHueRange sets an amplitude running from lo to hi. An empty range
// collapses to a constant.
func (h *Cubehelix) SetHueRange(lo, hi float64) {
	if hi == lo {
		h.SetHue(hi)
		return
	}
	h.Hue, h.HueEnd, h.HueRange = lo, hi, true
}

// At returns the helix color at fraction f in [0, 1].
func (h *Cubehelix) At(f float64) Color {
	a := 2 * math.Pi * ((h.Start+120)/360 + h.Rotations*f)
	l := math.Pow(h.Lightness[0]+(h.Lightness[1]-h.Lightness[0])*f, h.Gamma)
	hue := h.Hue
	if h.HueRange {
		hue = h.Hue + f*(h.HueEnd-h.Hue)
	}
	amp := hue * l * (1 - l) / 2
	cosA, sinA := math.Cos(a), math.Sin(a)
	r := l + amp*(-0.14861*cosA+1.78277*sinA)
	g := l + amp*(-0.29227*cosA-0.90649*sinA)
	b := l + amp*(1.97294*cosA)
	return RGB(r*255, g*255, b*255)
}

// Scale turns the helix into a scale.
func (h *Cubehelix) Scale() *Scale {
	cp := *h
	return NewFuncScale(cp.At)
}
