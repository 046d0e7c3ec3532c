// Package colormath holds the color algebra used by the evaluators:
// color construction in many notations, component access across color
// spaces, blend modes, interpolation and gradient builders.
package colormath

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Color is an sRGB color with straight alpha. Channels are kept in 0..255
// and alpha in 0..1; every constructor clamps.
type Color struct {
	R, G, B float64
	A       float64
}

// New returns a clamped color.
func New(r, g, b, a float64) Color {
	if math.IsNaN(a) {
		a = 1
	}
	return Color{R: clamp(r, 0, 255), G: clamp(g, 0, 255), B: clamp(b, 0, 255), A: clamp(a, 0, 1)}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// FromHex parses 3, 4, 6 or 8 hex digits with or without a leading '#'.
func FromHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.ToLower(s), "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, ch := range h {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, errors.Newf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Newf("invalid hex color %q", s)
	}
	if len(h) == 6 {
		return RGB(float64(n>>16&0xff), float64(n>>8&0xff), float64(n&0xff)), nil
	}
	return New(float64(n>>24&0xff), float64(n>>16&0xff), float64(n>>8&0xff), float64(n&0xff)/255), nil
}

// FromNumber interprets n as 0xRRGGBB. The fractional part is dropped.
func FromNumber(n float64) Color {
	v := int64(n)
	return RGB(float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff))
}

// Random returns an opaque color uniformly distributed over 24-bit RGB.
func Random(r *rand.Rand) Color {
	var n uint32
	if r == nil {
		n = rand.Uint32N(0x1000000)
	} else {
		n = r.Uint32N(0x1000000)
	}
	return FromNumber(float64(n))
}

// Rounded rounds each RGB channel to an integer and keeps alpha as is.
func (c Color) Rounded() Color {
	return Color{R: math.Round(c.R), G: math.Round(c.G), B: math.Round(c.B), A: c.A}
}

// Hex renders #rrggbb, or #rrggbbaa when withAlpha is set.
func (c Color) Hex(withAlpha bool) string {
	r := c.Rounded()
	s := fmt.Sprintf("#%02x%02x%02x", int(r.R), int(r.G), int(r.B))
	if withAlpha {
		s += fmt.Sprintf("%02x", int(math.Round(c.A*255)))
	}
	return s
}

// Num returns the color as 0xRRGGBB, ignoring alpha.
func (c Color) Num() float64 {
	r := c.Rounded()
	return r.R*65536 + r.G*256 + r.B
}

// WithAlpha returns the color with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	return New(c.R, c.G, c.B, a)
}

// Inverse flips every RGB channel (255-x) and keeps alpha.
func Inverse(c Color) Color {
	return New(255-c.R, 255-c.G, 255-c.B, c.A)
}

// Arith applies "+", "-", "*" or "/" with n to each RGB channel.
func Arith(c Color, op string, n float64) (Color, error) {
	f, err := ArithFunc(op)
	if err != nil {
		return Color{}, err
	}
	return New(f(c.R, n), f(c.G, n), f(c.B, n), c.A), nil
}

// ArithFunc returns the numeric function behind an arithmetic operator.
func ArithFunc(op string) (func(a, b float64) float64, error) {
	switch op {
	case "+":
		return func(a, b float64) float64 { return a + b }, nil
	case "-":
		return func(a, b float64) float64 { return a - b }, nil
	case "*":
		return func(a, b float64) float64 { return a * b }, nil
	case "/":
		return func(a, b float64) float64 { return a / b }, nil
	}
	return nil, errors.Newf("invalid arithmetic operator provided: '%s'", op)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
