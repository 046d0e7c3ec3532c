package less_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/less"
	"github.com/funvibe/colorexpr/internal/parser"
	"github.com/funvibe/colorexpr/internal/value"
)

func transpile(t *testing.T, src string) (string, error) {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err, src)
	v, err := ast.Evaluate(program, less.New(evaluator.NewCore()))
	if err != nil {
		return "", err
	}
	return v.Inspect(), nil
}

func TestTranspile(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// literals
		{"#ffcc00", "#ffcc00"},
		{"ffcc00", "#ffcc00"},
		{"#fc0", "#fc0"},
		{"fc0", "#fc0"},
		{"aquamarine", "aquamarine"},
		{"SkyBlue", "SkyBlue"},

		// color spaces
		{"rgb 127 255 212", "rgb(127, 255, 212)"},
		{"rgba 135 206 235 75%", "rgba(135, 206, 235, 75%)"},
		{"argb .7 255 99 71", "argb(0.7, 255, 99, 71)"},
		{"hsl 159.8 100% 75%", "hsl(159.8, 100%, 75%)"},
		{"hsla 197 .71 .73 55%", "hsla(197, 0.71, 0.73, 55%)"},
		{"hsv 160 .5 1", "hsv(160, 0.5, 1)"},
		{"hsb 197 .43 .92", "hsv(197, 0.43, 0.92)"},
		{"hsva 9 .72 1 50%", "hsva(9, 0.72, 1, 50%)"},

		// color operations
		{"#444 * 2", "#444 * 2"},
		{"skyblue - 0xf", "skyblue - 15"},
		{"~red", "(#fff - red)"},
		{"red | green", "mix(red, green)"},
		{"red | {25%} green", "mix(red, green, 25%)"},
		{"red | {.3 rgb} green", "mix(red, green, 30%)"},
		{"$r = .2; white | {$r} green", "@r: 0.2;\ntint(green, percentage(@r));"},
		{"#000 | (red)", "shade(red)"},
		{"hotpink << 50%", "desaturate(hotpink, 50%, relative)"},
		{"rgb 165 42 42 >> .2", "saturate(rgb(165, 42, 42), 20%, relative)"},
		{"red <<< 30%", "darken(red, 30%, relative)"},
		{"#fc0 >>> 70%", "lighten(#fc0, 70%, relative)"},

		// blends
		{"#222 + #444", "#222 + #444"},
		{"#ccc - #111", "#ccc - #111"},
		{"#ff6600 * #ccc", "multiply(#ff6600, #ccc)"},
		{"#222 / #444", "#222 / #444"},
		{"#ff6600 !* #00ff00", "screen(#ff6600, #00ff00)"},
		{"#ff6600 ** #999", "overlay(#ff6600, #999)"},
		{"olive <* pink", "hardlight(olive, pink)"},
		{"olive *> pink", "softlight(olive, pink)"},
		{"ffcc00 ^* ccc", "difference(#ffcc00, #ccc)"},
		{"ffcc00 ^^ ccc", "exclusion(#ffcc00, #ccc)"},
		{"ffcc00 !^ ccc", "negation(#ffcc00, #ccc)"},

		// channels
		{"brown @red", "red(brown)"},
		{"#ffcc00 @g", "green(#ffcc00)"},
		{"olive @a", "alpha(olive)"},
		{"(olive) @lum", "luma(olive)"},
		{"red @hsv.h", "hsvhue(red)"},
		{"aquamarine @a = .3", "fade(aquamarine, 30%)"},
		{"red @a += 10%", "fadein(red, 10%)"},
		{"red @a -= .1", "fadeout(red, 10%)"},
		{"(red blue) @1", "extract(red blue, 2)"},

		// numbers
		{"0b01101001", "105"},
		{"0o151", "105"},
		{"0x69", "105"},
		{"55%", "55%"},
		{"1 / 3", "1 / 3"},
		{"0.333333333333", "0.33333333"},
		{"-360 * 0.5 + (100 - 40)", "-360 * 0.5 + (100 - 40)"},
		{"0xf / 0b1010", "15 / 10"},
		{"2 ^ 14", "pow(2, 14)"},
		{"4 ^ (2 / 4)", "pow(4, 2 / 4)"},

		// lists and constants
		{"red 0f0 blue", "red #0f0 blue"},
		{"(pink >> .5) gold", "(saturate(pink, 50%, relative)) gold"},
		{"YlOrBr", "#ffffe5 #fff7bc #fee391 #fec44f #fe9929 #ec7014 #cc4c02 #993404 #662506"},

		// variables and statements
		{"$col = rgb 255 204 0", "@col: rgb(255, 204, 0)"},
		{"$num = 2^8 - 1", "@num: pow(2, 8) - 1"},
		{"$lst = #444 #888", "@lst: #444 #888"},
		{"$a = red; $a | blue", "@a: red;\nmix(@a, blue);"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := transpile(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandom(t *testing.T) {
	got, err := transpile(t, "rand")
	require.NoError(t, err)
	assert.Equal(t, less.RandomColor, got)
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"num 33023", "defining color by number is not supported by LESS"},
		{"t 3500", "defining color by temperature is not supported by LESS"},
		{"wl 560", "defining color by wavelength is not supported by LESS"},
		{"cmyk .43 .12 0 .8", "color space 'CMYK' is not supported by LESS"},
		{"lab 92 10 9.7", "color space 'LAB' is not supported by LESS"},
		{"scale (red blue)", "color scales are not supported by LESS"},
		{"cubehelix", "color scales are not supported by LESS"},
		{"scale (red blue) -> 3", "color scales are not supported by LESS"},
		{"+scale (red blue)", "color scales are not supported by LESS"},
		{"cubehelix @start 10", "color scales are not supported by LESS"},
		{"pink %% hotpink", "calculating numeric contrast value is not supported by LESS"},
		{"red | {hsl} blue", "LESS supports mixing colors only in RGB color space"},
		{"indigo << red", "'ColorBurn' blending function is not supported by LESS"},
		{"indigo >>> red", "'Lighten' blending function is not supported by LESS"},
		{"red @n", "defining color by number is not supported by LESS"},
		{"red @lum .5", "setting luminance is not supported by LESS"},
		{"red @a *= 2", "assignment operator '*=' for alpha channel is not supported by LESS"},
		{"red @r 10", "setting components in RGB color space is not supported by LESS"},
		{"red @lab.l", "color space 'LAB' is not supported by LESS"},
		{"red @c", "color space 'CMYK' is not supported by LESS"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := transpile(t, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, diagnostics.ErrUnsupported), "%v", err)
			d, ok := diagnostics.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.msg, d.Message)
		})
	}
}

func TestCoreValidationRunsFirst(t *testing.T) {
	_, err := transpile(t, "rgb 300 0 0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostics.ErrRange))

	_, err = transpile(t, "red + (red blue)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostics.ErrOperandType))
}

func TestSharedEnvironment(t *testing.T) {
	core := evaluator.NewCore()
	program, err := parser.Parse("$c = red")
	require.NoError(t, err)
	_, err = ast.Evaluate(program, less.New(core))
	require.NoError(t, err)

	_, ok := core.Environment().Get("c")
	assert.True(t, ok)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "105", less.FormatNumber(105))
	assert.Equal(t, "0.5", less.FormatNumber(0.5))
	assert.Equal(t, "2", less.FormatNumber(2.000000001))
	assert.Equal(t, "-1.25", less.FormatNumber(-1.25))
}

func TestInvalidElementIndex(t *testing.T) {
	list := &ast.ArrayLiteral{Elements: []ast.Expression{
		&ast.ColorNameLiteral{Name: "red"},
		&ast.ColorNameLiteral{Name: "blue"},
	}}
	node := &ast.ParamExpr{Obj: list, Name: "first"}
	arr := value.Array{value.NewColor(colormath.RGB(255, 0, 0)), value.NewColor(colormath.RGB(0, 0, 255))}

	_, err := less.New(evaluator.NewCore()).Param(0, evaluator.ParamGet, node, arr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostics.ErrSyntax), "%v", err)
	d, ok := diagnostics.As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid element index 'first'", d.Message)
}
