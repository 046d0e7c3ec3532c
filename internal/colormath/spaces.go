package colormath

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Space names a color model whose components can be read and written.
type Space string

const (
	SpaceRGB  Space = "rgb"
	SpaceCMY  Space = "cmy"
	SpaceCMYK Space = "cmyk"
	SpaceHSL  Space = "hsl"
	SpaceHSV  Space = "hsv"
	SpaceHSI  Space = "hsi"
	SpaceLab  Space = "lab"
	SpaceLCH  Space = "lch"
	SpaceHCL  Space = "hcl"
	SpaceGL   Space = "gl"
)

var spaceComponents = map[Space]string{
	SpaceRGB:  "rgb",
	SpaceCMY:  "cmy",
	SpaceCMYK: "cmyk",
	SpaceHSL:  "hsl",
	SpaceHSV:  "hsv",
	SpaceHSI:  "hsi",
	SpaceLab:  "lab",
	SpaceLCH:  "lch",
	SpaceHCL:  "hcl",
	SpaceGL:   "rgb",
}

// ParseSpace maps a case-insensitive name onto a Space.
func ParseSpace(name string) (Space, bool) {
	s := Space(strings.ToLower(name))
	_, ok := spaceComponents[s]
	return s, ok
}

// Arity is the number of components, alpha excluded.
func (s Space) Arity() int {
	return len(spaceComponents[s])
}

// Index returns the position of the component letter within the space,
// e.g. 'h' in hcl is 0 and in lch is 2.
func (s Space) Index(letter byte) int {
	return strings.IndexByte(spaceComponents[s], letter)
}

// Components converts c into the given space. Hue is NaN for achromatic
// colors in hsl, hsv, hsi, lch and hcl.
func Components(c Color, s Space) ([]float64, error) {
	r, g, b := c.R/255, c.G/255, c.B/255
	cf := colorful.Color{R: r, G: g, B: b}

	switch s {
	case SpaceRGB:
		return []float64{c.R, c.G, c.B}, nil
	case SpaceGL:
		return []float64{r, g, b}, nil
	case SpaceCMY:
		return []float64{1 - r, 1 - g, 1 - b}, nil
	case SpaceCMYK:
		return rgbToCmyk(r, g, b), nil
	case SpaceHSL:
		h, sat, l := cf.Hsl()
		if achromatic(r, g, b) {
			h, sat = math.NaN(), 0
		}
		return []float64{h, sat, l}, nil
	case SpaceHSV:
		h, sat, v := cf.Hsv()
		if achromatic(r, g, b) {
			h, sat = math.NaN(), 0
		}
		return []float64{h, sat, v}, nil
	case SpaceHSI:
		return rgbToHsi(r, g, b), nil
	case SpaceLab:
		l, a, bb := cf.Lab()
		return []float64{l * 100, a * 100, bb * 100}, nil
	case SpaceLCH, SpaceHCL:
		h, ch, l := cf.Hcl()
		ch *= 100
		if math.Round(ch*10000) == 0 {
			h = math.NaN()
		}
		if s == SpaceLCH {
			return []float64{l * 100, ch, h}, nil
		}
		return []float64{h, ch, l * 100}, nil
	}
	return nil, errors.Newf("unknown namespace: %s", strings.ToUpper(string(s)))
}

// FromSpace builds a color from components of the given space.
// A NaN hue is treated as 0.
func FromSpace(s Space, comps []float64, alpha float64) (Color, error) {
	if len(comps) != s.Arity() {
		return Color{}, errors.Newf("invalid number of params for color space %s", strings.ToUpper(string(s)))
	}
	v := make([]float64, len(comps))
	for i, x := range comps {
		if math.IsNaN(x) {
			x = 0
		}
		v[i] = x
	}

	var cf colorful.Color
	switch s {
	case SpaceRGB:
		return New(v[0], v[1], v[2], alpha), nil
	case SpaceGL:
		return New(v[0]*255, v[1]*255, v[2]*255, alpha), nil
	case SpaceCMY:
		return FromSpace(SpaceCMYK, CmyToCmyk(v[0], v[1], v[2]), alpha)
	case SpaceCMYK:
		r, g, b := cmykToRgb(v[0], v[1], v[2], v[3])
		return New(r, g, b, alpha), nil
	case SpaceHSL:
		cf = colorful.Hsl(normHue(v[0]), v[1], v[2])
	case SpaceHSV:
		cf = colorful.Hsv(normHue(v[0]), v[1], v[2])
	case SpaceHSI:
		r, g, b := hsiToRgb(v[0], v[1], v[2])
		return New(r*255, g*255, b*255, alpha), nil
	case SpaceLab:
		cf = colorful.Lab(v[0]/100, v[1]/100, v[2]/100)
	case SpaceLCH:
		cf = colorful.Hcl(normHue(v[2]), v[1]/100, v[0]/100)
	case SpaceHCL:
		cf = colorful.Hcl(normHue(v[0]), v[1]/100, v[2]/100)
	default:
		return Color{}, errors.Newf("unknown namespace: %s", strings.ToUpper(string(s)))
	}
	return New(cf.R*255, cf.G*255, cf.B*255, alpha), nil
}

// Get reads a single component of c in the given space.
func (c Color) Get(s Space, index int) (float64, error) {
	comps, err := Components(c, s)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(comps) {
		return 0, errors.Newf("component %d is out of range for color space %s", index, strings.ToUpper(string(s)))
	}
	return comps[index], nil
}

// Set writes a single component of c in the given space and keeps alpha.
func (c Color) Set(s Space, index int, v float64) (Color, error) {
	comps, err := Components(c, s)
	if err != nil {
		return Color{}, err
	}
	if index < 0 || index >= len(comps) {
		return Color{}, errors.Newf("component %d is out of range for color space %s", index, strings.ToUpper(string(s)))
	}
	comps[index] = v
	return FromSpace(s, comps, c.A)
}

// CmyToCmyk extracts the shared black component out of c, m and y.
func CmyToCmyk(c, m, y float64) []float64 {
	k := math.Min(1, math.Min(c, math.Min(m, y)))
	if k == 1 {
		return []float64{0, 0, 0, 1}
	}
	return []float64{(c - k) / (1 - k), (m - k) / (1 - k), (y - k) / (1 - k), k}
}

func rgbToCmyk(r, g, b float64) []float64 {
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return []float64{0, 0, 0, 1}
	}
	f := 1 / (1 - k)
	return []float64{(1 - r - k) * f, (1 - g - k) * f, (1 - b - k) * f, k}
}

func cmykToRgb(c, m, y, k float64) (float64, float64, float64) {
	if k >= 1 {
		return 0, 0, 0
	}
	ch := func(x float64) float64 {
		if x >= 1 {
			return 0
		}
		return 255 * (1 - x) * (1 - k)
	}
	return ch(c), ch(m), ch(y)
}

func rgbToHsi(r, g, b float64) []float64 {
	i := (r + g + b) / 3
	s := 0.0
	if i > 0 {
		s = 1 - math.Min(r, math.Min(g, b))/i
	}
	if s == 0 {
		return []float64{math.NaN(), 0, i}
	}
	h := ((r - g) + (r - b)) / 2
	h /= math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	h = math.Acos(math.Max(-1, math.Min(1, h)))
	if b > g {
		h = 2*math.Pi - h
	}
	return []float64{h / (2 * math.Pi) * 360, s, i}
}

func hsiToRgb(h, s, i float64) (float64, float64, float64) {
	h = normHue(h) / 360
	third := func(x float64) float64 {
		return (1 + s*math.Cos(2*math.Pi*x)/math.Cos(math.Pi/3-2*math.Pi*x)) / 3
	}
	var r, g, b float64
	switch {
	case h < 1.0/3:
		b = (1 - s) / 3
		r = third(h)
		g = 1 - (b + r)
	case h < 2.0/3:
		r = (1 - s) / 3
		g = third(h - 1.0/3)
		b = 1 - (r + g)
	default:
		g = (1 - s) / 3
		b = third(h - 2.0/3)
		r = 1 - (g + b)
	}
	lim := func(x float64) float64 { return clamp(i*x*3, 0, 1) }
	return lim(r), lim(g), lim(b)
}

func achromatic(r, g, b float64) bool {
	return math.Max(r, math.Max(g, b)) == math.Min(r, math.Min(g, b))
}

func normHue(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
