// Package value defines the runtime values produced by evaluators.
package value

import (
	"github.com/funvibe/colorexpr/internal/colormath"
)

// Value is one of Number, Color, *ColorScale, Array or Text.
type Value interface {
	Kind() Kind
	Inspect() string
	isValue()
}

type Number float64

func (Number) Kind() Kind        { return NumberKind }
func (n Number) Inspect() string { return FormatNumber(float64(n)) }
func (Number) isValue()          {}

type Color struct {
	colormath.Color
}

func NewColor(c colormath.Color) Color {
	return Color{Color: c}
}

func (Color) Kind() Kind        { return ColorKind }
func (c Color) Inspect() string { return FormatColor(c.Color, false) }
func (Color) isValue()          {}

// Array is an ordered list of values. Its kind is refined by content.
type Array []Value

func (a Array) Kind() Kind {
	if len(a) == 0 {
		return ArrayKind
	}
	all := func(k Kind) bool {
		for _, v := range a {
			if v == nil || v.Kind() != k {
				return false
			}
		}
		return true
	}
	switch {
	case all(NumberKind):
		return NumberArrayKind
	case all(ColorKind):
		return ColorArrayKind
	}
	return ArrayKind
}

func (a Array) Inspect() string { return Format(a, false) }
func (Array) isValue()          {}

// Numbers extracts the payload of a number array.
func (a Array) Numbers() []float64 {
	out := make([]float64, 0, len(a))
	for _, v := range a {
		if n, ok := v.(Number); ok {
			out = append(out, float64(n))
		}
	}
	return out
}

// Colors extracts the payload of a color array.
func (a Array) Colors() []colormath.Color {
	out := make([]colormath.Color, 0, len(a))
	for _, v := range a {
		if c, ok := v.(Color); ok {
			out = append(out, c.Color)
		}
	}
	return out
}

// Text is source code emitted by a transpiling evaluator.
type Text string

func (Text) Kind() Kind        { return TextKind }
func (t Text) Inspect() string { return string(t) }
func (Text) isValue()          {}

// TypeOf returns the kind of v, or 0 for nil.
func TypeOf(v Value) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}

// Clone copies v. Arrays are copied element by element; scales get
// fresh parameter lists.
func Clone(v Value) Value {
	switch x := v.(type) {
	case Array:
		out := make(Array, len(x))
		for i, e := range x {
			out[i] = Clone(e)
		}
		return out
	case *ColorScale:
		return x.Clone()
	}
	return v
}

// NumberArray wraps numbers.
func NumberArray(ns ...float64) Array {
	out := make(Array, len(ns))
	for i, n := range ns {
		out[i] = Number(n)
	}
	return out
}

// ColorArray wraps colors.
func ColorArray(cs ...colormath.Color) Array {
	out := make(Array, len(cs))
	for i, c := range cs {
		out[i] = NewColor(c)
	}
	return out
}
