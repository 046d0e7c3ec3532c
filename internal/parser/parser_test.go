package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/parser"
	"github.com/funvibe/colorexpr/internal/pipeline"
)

// sexpr renders a tree compactly so expectations stay readable.
func sexpr(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Program:
		parts := make([]string, len(x.Statements))
		for i, s := range x.Statements {
			parts[i] = sexpr(s)
		}
		return strings.Join(parts, "; ")
	case *ast.Statement:
		return sexpr(x.Expr)
	case *ast.ParenthesesExpr:
		return "(group " + sexpr(x.Expr) + ")"
	case *ast.NumberLiteral:
		return x.Value
	case *ast.PercentExpr:
		return sexpr(x.Value) + "%"
	case *ast.ArrayLiteral:
		return "[" + list(x.Elements) + "]"
	case *ast.ColorNameLiteral:
		return x.Name
	case *ast.ColorHexLiteral:
		return x.Hex
	case *ast.ColorByNumber:
		return "(num " + sexpr(x.Value) + ")"
	case *ast.ColorByTemperature:
		return "(temp " + sexpr(x.Value) + ")"
	case *ast.ColorByWavelength:
		return "(wl " + sexpr(x.Value) + ")"
	case *ast.ColorBySpaceParams:
		return "(" + x.Space + " " + list(x.Params) + ")"
	case *ast.RandomColor:
		return "rand"
	case *ast.ScaleExpr:
		head := "(scale"
		if x.Mode != "" {
			head += "{" + x.Mode + "}"
		}
		if x.Source != nil {
			return head + " " + sexpr(x.Source) + ")"
		}
		stops := make([]string, len(x.Colors))
		for i, c := range x.Colors {
			stops[i] = sexpr(c)
			if x.Domain != nil {
				stops[i] += ":" + sexpr(x.Domain[i])
			}
		}
		return head + " [" + strings.Join(stops, " ") + "])"
	case *ast.BezierExpr:
		return "(bezier " + sexpr(x.Colors) + ")"
	case *ast.CubehelixExpr:
		return "cubehelix"
	case *ast.BrewerConst:
		return "brewer:" + x.Name
	case *ast.ParamExpr:
		switch {
		case x.Value == nil:
			return fmt.Sprintf("(@%s %s)", x.Name, sexpr(x.Obj))
		case x.Operator == "":
			return fmt.Sprintf("(@%s %s %s)", x.Name, sexpr(x.Obj), sexpr(x.Value))
		}
		return fmt.Sprintf("(@%s %s %s %s)", x.Name, x.Operator, sexpr(x.Obj), sexpr(x.Value))
	case *ast.UnaryExpr:
		return "(" + x.Operator + " " + sexpr(x.Value) + ")"
	case *ast.BinaryExpr:
		op := x.Operator
		if x.Options != nil {
			var opts []string
			if x.Options.Ratio != nil {
				opts = append(opts, sexpr(x.Options.Ratio))
			}
			if x.Options.Mode != "" {
				opts = append(opts, x.Options.Mode)
			}
			op += "{" + strings.Join(opts, " ") + "}"
		}
		return "(" + op + " " + sexpr(x.Left) + " " + sexpr(x.Right) + ")"
	case *ast.GetVar:
		return x.Name
	case *ast.SetVar:
		return "(= " + x.Name + " " + sexpr(x.Value) + ")"
	}
	return fmt.Sprintf("<%T>", n)
}

func list(es []ast.Expression) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = sexpr(e)
	}
	return strings.Join(parts, " ")
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"sum", "5 + 10", "(+ 5 10)"},
		{"product_binds_tighter", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"prefix_and_group", "-360 * 0.5 + (100 - 40)", "(+ (* (- 360) 0.5) (group (- 100 40)))"},
		{"power_right_assoc", "2 ^ 3 ^ 2", "(^ 2 (^ 3 2))"},
		{"power_before_sum", "$num = 2^8 - 1", "(= $num (- (^ 2 8) 1))"},
		{"radix_literals", "0x69 0b01101001 0o151", "[0x69 0b01101001 0o151]"},
		{"percent", "55%", "55%"},
		{"list", "red 0f0 blue", "[red 0f0 blue]"},
		{"list_with_group", "(pink >> .5) gold", "[(group (>> pink .5)) gold]"},
		{"hex", "#fc0", "#fc0"},
		{"bare_hex", "ffcc00 ^* ccc", "(^* ffcc00 ccc)"},
		{"color_name_keeps_case", "SkyBlue", "SkyBlue"},
		{"brewer", "ylorbr", "brewer:YlOrBr"},
		{"random", "random", "rand"},
		{"by_number", "num 33023", "(num 33023)"},
		{"by_temperature", "t 3500", "(temp 3500)"},
		{"by_wavelength", "wavelength 560", "(wl 560)"},
		{"space", "rgb 127 255 212", "(rgb 127 255 212)"},
		{"space_alpha_suffix", "hsla 197 .71 .73 55%", "(hsl 197 .71 .73 55%)"},
		{"space_argb", "argb .7 255 99 71", "(argb .7 255 99 71)"},
		{"space_cmyka", "cmyka 0 .61 .72 0 60%", "(cmyk 0 .61 .72 0 60%)"},
		{"space_hsb", "hsb 197 .43 .92", "(hsv 197 .43 .92)"},
		{"space_negative_param", "lab 92 (-46) 9.7", "(lab 92 (group (- 46)) 9.7)"},
		{"param_after_space", "rgb 5 7 9 @hsl.h 90", "(@hsl.h (rgb 5 7 9) 90)"},
		{"param_get", "olive @n", "(@n olive)"},
		{"param_relative", "red @a /= 2", "(@a /= red 2)"},
		{"param_assign", "aquamarine @a = .3", "(@a = aquamarine .3)"},
		{"param_percent", "#000 @lightness 50%", "(@lightness #000 50%)"},
		{"param_after_keyword", "t 5000 @cmyk.y", "(@cmyk.y (temp 5000))"},
		{"inverse", "~red", "(~ red)"},
		{"mix", "red | green", "(| red green)"},
		{"mix_ratio_mode", "red | {25% hsl} green", "(|{25% hsl} red green)"},
		{"mix_mode", "red | {hsl} green", "(|{hsl} red green)"},
		{"mix_ratio", "red | {.3} green", "(|{.3} red green)"},
		{"adjust_before_mix", "red << .5 | blue", "(| (<< red .5) blue)"},
		{"contrast", "pink %% hotpink", "(%% pink hotpink)"},
		{"blend_before_adjust", "indigo << red !* blue", "(<< indigo (!* red blue))"},
		{"scale", "scale (red 0f0 blue) -> 10", "(-> (scale [red 0f0 blue]) 10)"},
		{"scale_positions", "scale (red:.2 0f0:50%) -> 10", "(-> (scale [red:.2 0f0:50%]) 10)"},
		{"scale_mode_source", "scale {lab} $colors", "(scale{lab} $colors)"},
		{"scale_single_source", "scale ($colors)", "(scale $colors)"},
		{"scale_params", "scale (red 0f0) @domain (.2 .5) -> 10", "(-> (@domain (scale [red 0f0]) (group [.2 .5])) 10)"},
		{"bezier", "bezier (ff0 red #000) -> 10", "(-> (bezier (group [ff0 red #000])) 10)"},
		{"cubehelix_chain", "cubehelix @start 200 @rot .5 -> 10", "(-> (@rot (@start cubehelix 200) .5) 10)"},
		{"cubehelix_negative", "cubehelix @rot (-.5)", "(@rot cubehelix (group (- .5)))"},
		{"corrected_scale", "+scale (black red yellow) -> 10", "(-> (+ (scale [black red yellow])) 10)"},
		{"statements", "$my = yellow black; bezier $my -> 10", "(= $my [yellow black]); (-> (bezier $my) 10)"},
		{"newlines", "\nred\n\n// comment\nblue\n", "red; blue"},
		{"last_value", "$", "$"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program, err := parser.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sexpr(program))
		})
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "unexpected end of input"},
		{"only_separators", " ;\n; ", "unexpected end of input"},
		{"dangling_operator", "1 +", "unexpected end of input"},
		{"unclosed_paren", "(1 + 2", "expected ')', got end of input"},
		{"missing_space_param", "rgb 1 2", "unexpected end of input"},
		{"suggestion", "redd", "unknown identifier 'redd', did you mean 'red'?"},
		{"no_suggestion", "qqqqqqq", "unknown identifier 'qqqqqqq'"},
		{"bad_hex", "#ff", "invalid hex color '#ff'"},
		{"illegal_char", "1 ! 2", "unexpected character '!'"},
		{"partial_positions", "scale (red:.2 blue)", "either every color or none should have a position"},
		{"bad_scale_mode", "scale {xyz} (red blue)", "unknown interpolation mode 'xyz'"},
		{"assignment_without_value", "red @a =", "unexpected end of input"},
		{"unclosed_options", "red | {.5 hsl green", "expected '}', got 'green'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, diagnostics.ErrSyntax))
			de, ok := diagnostics.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, de.Message)
			assert.NotNil(t, de.Loc)
		})
	}
}

func TestLocations(t *testing.T) {
	program, err := parser.Parse("5 + 10\n$x = red")
	require.NoError(t, err)

	assert.Equal(t, "1:0,0..2:8,15", program.Loc.String())
	require.Len(t, program.Statements, 2)
	assert.Equal(t, "1:0,0..1:6,6", program.Statements[0].Loc.String())

	bin := program.Statements[0].Expr.(*ast.BinaryExpr)
	assert.Equal(t, "1:4,4..1:6,6", bin.Right.Location().String())

	set := program.Statements[1].Expr.(*ast.SetVar)
	assert.Equal(t, "2:0,7..2:8,15", set.Loc.String())
	assert.Equal(t, "2:5,12..2:8,15", set.Value.Location().String())
}

func TestErrorLocation(t *testing.T) {
	_, err := parser.Parse("red\nbluee")
	require.Error(t, err)
	assert.Equal(t, "Error (2:0,4..2:5,9): unknown identifier 'bluee', did you mean 'blue'?.", err.Error())
}

func TestProcessorCache(t *testing.T) {
	pp, err := parser.NewProcessor(8)
	require.NoError(t, err)

	first := pp.Process(pipeline.NewPipelineContext("red | blue"))
	require.NoError(t, first.Err())
	assert.False(t, first.Cached)

	second := pp.Process(pipeline.NewPipelineContext("red | blue"))
	require.NoError(t, second.Err())
	assert.True(t, second.Cached)
	assert.Same(t, first.Program, second.Program)
	assert.Equal(t, 1, pp.Len())

	failed := pp.Process(pipeline.NewPipelineContext("red |"))
	assert.Error(t, failed.Err())
	assert.Nil(t, failed.Program)
	assert.Equal(t, 1, pp.Len())

	pp.Purge()
	assert.Zero(t, pp.Len())
}

func TestProcessorWithoutCache(t *testing.T) {
	pp, err := parser.NewProcessor(0)
	require.NoError(t, err)

	ctx := pp.Process(pipeline.NewPipelineContext("red"))
	require.NoError(t, ctx.Err())
	ctx = pp.Process(pipeline.NewPipelineContext("red"))
	assert.False(t, ctx.Cached)
}
