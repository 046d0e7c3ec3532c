package value

import "strings"

// Kind is a bit set classifying values. Array refinements include the
// Array bit, so NumberArray&Array == Array.
type Kind int

const (
	NumberKind      Kind = 1 << 0
	ColorKind       Kind = 1 << 1
	ColorScaleKind  Kind = 1 << 2
	ArrayKind       Kind = 1 << 3
	NumberArrayKind      = 1<<4 | ArrayKind
	ColorArrayKind       = 1<<5 | ArrayKind

	// TextKind marks transpiled source; it satisfies no constraint.
	TextKind Kind = 1 << 6
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "Number"
	case ColorKind:
		return "Color"
	case ColorScaleKind:
		return "ColorScale"
	case ArrayKind:
		return "Array"
	case NumberArrayKind:
		return "NumberArray"
	case ColorArrayKind:
		return "ColorArray"
	case TextKind:
		return "Text"
	}
	return "Undefined"
}

// Describe is the human phrase used in type errors.
func (k Kind) Describe() string {
	switch k {
	case NumberKind:
		return "a number"
	case ColorKind:
		return "a color"
	case ColorScaleKind:
		return "a color scale"
	case ArrayKind:
		return "an array"
	case NumberArrayKind:
		return "a number array"
	case ColorArrayKind:
		return "a color array"
	}
	return "a value"
}

// Satisfies reports whether k meets the constraint c.
func (k Kind) Satisfies(c Kind) bool {
	return c != 0 && k&c == c && k != TextKind
}

func describeAll(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.Describe()
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
