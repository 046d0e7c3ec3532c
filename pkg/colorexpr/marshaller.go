package colorexpr

import (
	"image/color"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/value"
)

// Marshaller handles conversion between Go values and colorexpr values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to a colorexpr value. Numbers become
// Number, strings are read as a color name or hex code, image/color
// values become Color and slices become Array.
func (m *Marshaller) ToValue(val any) (value.Value, error) {
	if val == nil {
		return nil, errors.New("cannot convert nil")
	}

	// Check if already a value
	if v, ok := val.(value.Value); ok {
		return value.Clone(v), nil
	}

	switch x := val.(type) {
	case colormath.Color:
		return value.NewColor(x), nil
	case color.Color:
		return value.NewColor(fromImageColor(x)), nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Number(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return value.Number(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return value.Number(v.Float()), nil
	case reflect.String:
		return m.stringToColor(v.String())
	case reflect.Slice, reflect.Array:
		return m.sliceToArray(v)
	}
	return nil, errors.Newf("cannot convert %T", val)
}

// FromValue converts a colorexpr value to a Go value: float64 for
// numbers, colormath.Color for colors, []any for arrays and string for
// everything else.
func (m *Marshaller) FromValue(v value.Value) any {
	switch x := v.(type) {
	case nil:
		return nil
	case value.Number:
		return float64(x)
	case value.Color:
		return x.Color
	case value.Array:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = m.FromValue(e)
		}
		return out
	}
	return v.Inspect()
}

func (m *Marshaller) stringToColor(s string) (value.Value, error) {
	if c, ok := colormath.FromName(s); ok {
		return value.NewColor(c), nil
	}
	c, err := colormath.FromHex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "%q is neither a color name nor a hex code", s)
	}
	return value.NewColor(c), nil
}

func (m *Marshaller) sliceToArray(v reflect.Value) (value.Value, error) {
	out := make(value.Array, v.Len())
	for i := range v.Len() {
		e, err := m.ToValue(v.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = e
	}
	return out, nil
}

// fromImageColor undoes alpha premultiplication.
func fromImageColor(c color.Color) colormath.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colormath.New(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}
