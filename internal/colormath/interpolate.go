package colormath

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Interpolate blends a towards b by t in the given mode. Hue based modes
// take the shorter way around the hue circle; alpha is always linear.
func Interpolate(a, b Color, t float64, mode Space) (Color, error) {
	var res Color
	var err error

	switch mode {
	case SpaceRGB, "":
		res = New(lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t), 1)
	case SpaceLab:
		res, err = interpolateLinear(a, b, t, mode)
	case SpaceHSL, SpaceHSV, SpaceHSI, SpaceLCH, SpaceHCL:
		res, err = interpolateHue(a, b, t, mode)
	default:
		return Color{}, errors.Newf("interpolation mode '%s' is not supported", strings.ToLower(string(mode)))
	}
	if err != nil {
		return Color{}, err
	}
	return res.WithAlpha(lerp(a.A, b.A, t)), nil
}

// Mix returns the color at ratio between a and b. Ratios outside 0..1
// extrapolate and are clamped per channel.
func Mix(a, b Color, ratio float64, mode Space) (Color, error) {
	return Interpolate(a, b, ratio, mode)
}

func interpolateLinear(a, b Color, t float64, mode Space) (Color, error) {
	ca, err := Components(a, mode)
	if err != nil {
		return Color{}, err
	}
	cb, err := Components(b, mode)
	if err != nil {
		return Color{}, err
	}
	out := make([]float64, len(ca))
	for i := range ca {
		out[i] = lerp(ca[i], cb[i], t)
	}
	return FromSpace(mode, out, 1)
}

// interpolateHue works on (hue, saturation/chroma, lightness-like)
// triples, so lch is handled through its hcl ordering.
func interpolateHue(a, b Color, t float64, mode Space) (Color, error) {
	space := mode
	if space == SpaceLCH {
		space = SpaceHCL
	}
	ca, err := Components(a, space)
	if err != nil {
		return Color{}, err
	}
	cb, err := Components(b, space)
	if err != nil {
		return Color{}, err
	}
	h0, s0, l0 := ca[0], ca[1], ca[2]
	h1, s1, l1 := cb[0], cb[1], cb[2]

	var hue float64
	sat := math.NaN()
	switch {
	case !math.IsNaN(h0) && !math.IsNaN(h1):
		var dh float64
		switch {
		case h1 > h0 && h1-h0 > 180:
			dh = h1 - (h0 + 360)
		case h1 < h0 && h0-h1 > 180:
			dh = h1 + 360 - h0
		default:
			dh = h1 - h0
		}
		hue = h0 + t*dh
	case !math.IsNaN(h0):
		hue = h0
		if (l1 == 1 || l1 == 0) && space != SpaceHSV {
			sat = s0
		}
	case !math.IsNaN(h1):
		hue = h1
		if (l0 == 1 || l0 == 0) && space != SpaceHSV {
			sat = s1
		}
	default:
		hue = math.NaN()
	}
	if math.IsNaN(sat) {
		sat = lerp(s0, s1, t)
	}
	return FromSpace(space, []float64{hue, sat, lerp(l0, l1, t)}, 1)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
