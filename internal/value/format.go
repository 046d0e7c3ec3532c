package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/funvibe/colorexpr/internal/colormath"
)

// FormatNumber prints integers as is and other numbers with at most
// four decimals.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	case n == math.Trunc(n):
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return TrimFraction(strconv.FormatFloat(n, 'f', 4, 64))
}

// Literal prints the shortest decimal form of n that parses back exactly.
func Literal(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// TrimFraction drops trailing zeros of a fixed-point string and the
// decimal point if nothing is left after it.
func TrimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatColor prints #rrggbb, or #rrggbbaa for translucent colors,
// optionally followed by the color name.
func FormatColor(c colormath.Color, appendName bool) string {
	r := c.Rounded()
	s := r.Hex(r.A != 1)
	if appendName {
		if name, ok := r.Name(); ok {
			s += " (" + name + ")"
		}
	}
	return s
}

// Format renders any value for display.
func Format(v Value, appendNames bool) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Number:
		return FormatNumber(float64(x))
	case Color:
		return FormatColor(x.Color, appendNames)
	case Array:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e, appendNames)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return v.Inspect()
}
