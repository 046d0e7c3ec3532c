package evaluator

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/value"
)

func TestResolveBinary(t *testing.T) {
	n, c, s := value.NumberKind, value.ColorKind, value.ColorScaleKind
	tests := []struct {
		operator    string
		left, right value.Kind
		want        Operation
	}{
		{"+", n, n, OpNumbersAdd},
		{"+", c, c, OpBlendAdd},
		{"+", n, c, OpColorNumberAdd},
		{"-", c, n, OpColorNumberSubtract},
		{"*", n, c, OpColorNumberMultiply},
		{"/", c, c, OpBlendDivide},
		{"^", n, n, OpNumberPower},
		{"%%", c, c, OpContrast},
		{"|", c, c, OpMix},
		{"->", s, n, OpSample},
		{"<<", c, n, OpDesaturate},
		{"<<", c, c, OpBlendColorBurn},
		{">>>", c, n, OpLighten},
		{">>>", c, c, OpBlendLighten},
		{"!^", c, c, OpBlendNegate},
	}
	for _, tt := range tests {
		t.Run(tt.operator+" "+tt.left.String()+" "+tt.right.String(), func(t *testing.T) {
			op, err := ResolveBinary(tt.operator, tt.left, tt.right, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestResolveBinaryErrors(t *testing.T) {
	_, err := ResolveBinary("/", value.NumberKind, value.ColorKind, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostics.ErrOperandType))
	assert.EqualError(t, err, "Error: Number and Color is invalid operand types or sequence for operator '/'.")

	_, err = ResolveBinary("^", value.ColorKind, value.ColorKind, nil)
	assert.True(t, errors.Is(err, diagnostics.ErrOperandType))

	_, err = ResolveBinary("??", value.NumberKind, value.NumberKind, nil)
	assert.True(t, errors.Is(err, diagnostics.ErrInternal))
}

func TestResolveUnary(t *testing.T) {
	op, err := ResolveUnary("~", value.NewColor(colormath.RGB(1, 2, 3)), nil)
	require.NoError(t, err)
	assert.Equal(t, OpColorInverse, op)

	op, err = ResolveUnary("+", value.NewColorScale(value.ScaleCubehelix, nil, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, OpCorrectLightness, op)

	_, err = ResolveUnary("~", value.Number(1), nil)
	assert.True(t, errors.Is(err, diagnostics.ErrOperandType))

	_, err = ResolveUnary("!", value.Number(1), nil)
	assert.True(t, errors.Is(err, diagnostics.ErrInternal))
}

func TestOperationNames(t *testing.T) {
	assert.Equal(t, "NumbersAddition", OpNumbersAdd.String())
	assert.Equal(t, "ColorsMix", OpMix.String())
	mode, ok := OpBlendScreen.BlendMode()
	require.True(t, ok)
	assert.Equal(t, colormath.BlendScreen, mode)
	_, ok = OpMix.BlendMode()
	assert.False(t, ok)
}

func resolveColorParam(name string) (ParamID, bool) {
	for _, d := range colorParams {
		if d.Pattern.MatchString(name) {
			return d.Resolve(name), true
		}
	}
	return 0, false
}

func TestColorParamResolution(t *testing.T) {
	tests := []struct {
		name string
		want ParamID
	}{
		{"n", ParamNumber},
		{"Temp", ParamTemperature},
		{"lab.lum", ParamLuminance},
		{"a", ParamAlpha},
		{"rgb.red", ParamRgbR},
		{"g", ParamRgbG},
		{"b", ParamRgbB},
		{"mag", ParamCmykM},
		{"k", ParamCmykK},
		{"h", ParamHslH},
		{"hsv.hue", ParamHsvH},
		{"hsi.h", ParamHsiH},
		{"hcl.h", ParamLchH},
		{"sat", ParamHslS},
		{"hsv.s", ParamHsvS},
		{"l", ParamHslL},
		{"lab.l", ParamLabL},
		{"lch.lightness", ParamLchL},
		{"v", ParamHsvV},
		{"int", ParamHsiI},
		{"lab.a", ParamLabA},
		{"lab.b", ParamLabB},
		{"chroma", ParamLchC},
		{"hcl.c", ParamLchC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := resolveColorParam(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, id)
		})
	}

	_, ok := resolveColorParam("lab.h")
	assert.False(t, ok)
}

func TestLuminanceSpace(t *testing.T) {
	assert.Equal(t, colormath.SpaceRGB, LuminanceSpace("lum"))
	assert.Equal(t, colormath.SpaceLab, LuminanceSpace("lab.lum"))
	assert.Equal(t, colormath.SpaceHCL, LuminanceSpace("HCL.luminance"))
}

func TestComponentIndex(t *testing.T) {
	c, ok := ParamLchH.Component()
	require.True(t, ok)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "lch.h", c.String())

	_, ok = ParamAlpha.Component()
	assert.False(t, ok)
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	assert.True(t, env.Set("$Col", value.Number(1)))
	assert.False(t, env.Set("x", nil))

	v, ok := env.Get("col")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)

	assert.Equal(t, "$", Key("$"))
	assert.Equal(t, "abc", Key("$ABC"))
	assert.Equal(t, []string{"col"}, env.Names())

	store := env.GetStore()
	delete(store, "col")
	_, ok = env.Get("col")
	assert.True(t, ok)

	_, ok = env.Delete("$COL")
	assert.True(t, ok)
	assert.Empty(t, env.Names())
}
