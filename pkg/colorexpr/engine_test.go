package colorexpr_test

import (
	"bytes"
	"image/color"
	"log/slog"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/config"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/pkg/colorexpr"
)

func newEngine(t *testing.T, opts ...colorexpr.EngineOption) *colorexpr.Engine {
	t.Helper()
	e, err := colorexpr.New(opts...)
	require.NoError(t, err)
	return e
}

func TestEvaluate(t *testing.T) {
	e := newEngine(t)
	tests := []struct {
		input string
		opts  colorexpr.Options
		want  string
	}{
		{"red", colorexpr.Options{}, "#ff0000"},
		{"red", colorexpr.Options{AppendNames: true}, "#ff0000 (red)"},
		{"red | {25%} blue", colorexpr.Options{}, "#bf0040"},
		{"1 / 4", colorexpr.Options{}, "0.25"},
		{"red 0f0", colorexpr.Options{AppendNames: true}, "[#ff0000 (red), #00ff00 (lime)]"},
		{"red | blue", colorexpr.Options{Evaluator: colorexpr.EvaluatorLess}, "mix(red, blue)"},
		{"scale (red blue)", colorexpr.Options{}, "<colorScale.scale>"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := e.Evaluate(tt.input, tt.opts)
			require.False(t, r.Failed(), r.Error)
			assert.Equal(t, tt.input, r.Expr)
			assert.Equal(t, tt.want, r.ResultStr)
			assert.NotNil(t, r.Program)
			assert.NotNil(t, r.Result)
			assert.Empty(t, r.AstStr)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	e := newEngine(t)
	tests := []struct {
		input string
		opts  colorexpr.Options
		kind  error
		msg   string
	}{
		{"rgb 300 0 0", colorexpr.Options{}, diagnostics.ErrRange, "number in a range [0..255] is expected, you provided: 300"},
		{"$nope", colorexpr.Options{}, diagnostics.ErrUnknownIdentifier, "variable $nope is not defined"},
		{"redd", colorexpr.Options{}, diagnostics.ErrSyntax, "did you mean 'red'?"},
		{"t 3500", colorexpr.Options{Evaluator: colorexpr.EvaluatorLess}, diagnostics.ErrUnsupported, "defining color by temperature is not supported by LESS"},
		{"red", colorexpr.Options{Evaluator: "vm"}, diagnostics.ErrUnsupported, "unknown evaluator 'vm'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := e.Evaluate(tt.input, tt.opts)
			require.True(t, r.Failed())
			assert.True(t, errors.Is(r.Err, tt.kind), "%v", r.Err)
			assert.Contains(t, r.Error, tt.msg)
			assert.Regexp(t, `^Error( \(.+\))?: .+\.$`, r.Error)
			assert.Empty(t, r.ResultStr)
			assert.Empty(t, r.AstStr)
			assert.Nil(t, r.Result)
		})
	}
}

func TestAstDump(t *testing.T) {
	e := newEngine(t)

	r := e.Evaluate("red | {.3 hsl} blue", colorexpr.Options{WithAst: true})
	require.False(t, r.Failed(), r.Error)
	assert.Equal(t, "program", gjson.Get(r.AstStr, "$type").String())
	expr := gjson.Get(r.AstStr, "statements.0.expr")
	assert.Equal(t, "expr.operation.binary", expr.Get("$type").String())
	assert.Equal(t, "hsl", expr.Get("options.mode").String())
	assert.Equal(t, "blue", expr.Get("right.value").String())
	assert.NotContains(t, r.AstStr, "$loc")

	r = e.Evaluate("red", colorexpr.Options{WithAst: true, AstWithLocs: true})
	require.False(t, r.Failed(), r.Error)
	assert.True(t, gjson.Get(r.AstStr, "statements.0.expr.$loc").Exists())
}

func TestVariablesPersist(t *testing.T) {
	e := newEngine(t)

	r := e.Evaluate("$base = #336699", colorexpr.Options{})
	require.False(t, r.Failed(), r.Error)
	r = e.Evaluate("$base @a .5", colorexpr.Options{})
	require.False(t, r.Failed(), r.Error)
	assert.Equal(t, "#33669980", r.ResultStr)

	r = e.Evaluate("$base", colorexpr.Options{Evaluator: colorexpr.EvaluatorLess})
	require.False(t, r.Failed(), r.Error)
	assert.Equal(t, "@base", r.ResultStr)

	assert.Equal(t, []string{"$", "base"}, e.Variables())
	s, ok := e.Inspect("$", false)
	require.True(t, ok)
	assert.Equal(t, "#336699", s)
	_, ok = e.Inspect("missing", false)
	assert.False(t, ok)

	assert.True(t, e.Unset("$BASE"))
	assert.False(t, e.Unset("base"))
	assert.True(t, e.Evaluate("$base", colorexpr.Options{}).Failed())
}

func TestSetAndGet(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.Set("n", 3))
	require.NoError(t, e.Set("c", "gold"))
	require.NoError(t, e.Set("h", "#0000ff"))
	require.NoError(t, e.Set("img", color.NRGBA{R: 255, A: 128}))
	require.NoError(t, e.Set("list", []any{1, "red"}))
	assert.Error(t, e.Set("bad", "notacolor"))
	assert.Error(t, e.Set("bad", struct{}{}))

	r := e.Evaluate("$c | {$n / 10} $h", colorexpr.Options{})
	require.False(t, r.Failed(), r.Error)

	v, ok := e.Get("n")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = e.Get("img")
	require.True(t, ok)
	c := v.(colormath.Color)
	assert.Equal(t, 255.0, c.R)
	assert.InDelta(t, 0.5, c.A, 0.01)

	v, ok = e.Get("list")
	require.True(t, ok)
	assert.Equal(t, []any{1.0, colormath.RGB(255, 0, 0)}, v)

	_, ok = e.Get("missing")
	assert.False(t, ok)
}

func TestSeededRandom(t *testing.T) {
	a := newEngine(t, colorexpr.WithSeed(42))
	b := newEngine(t, colorexpr.WithSeed(42))
	ra := a.Evaluate("rand rand rand", colorexpr.Options{})
	rb := b.Evaluate("rand rand rand", colorexpr.Options{})
	require.False(t, ra.Failed(), ra.Error)
	assert.Equal(t, ra.ResultStr, rb.ResultStr)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newEngine(t, colorexpr.WithLogger(logger))

	e.Evaluate("red", colorexpr.Options{})
	e.Evaluate("red", colorexpr.Options{})
	e.Evaluate("rgb 300 0 0", colorexpr.Options{})

	out := buf.String()
	assert.Contains(t, out, "session="+e.Session().String())
	assert.Contains(t, out, "evaluator=core")
	assert.Contains(t, out, "cached=true")
	assert.Contains(t, out, "code=RANGE")
}

func TestConfigOptions(t *testing.T) {
	cfg, err := config.ParseConfig([]byte("evaluator: less\ncache_size: -1\n"), "test.yaml")
	require.NoError(t, err)

	e := newEngine(t, colorexpr.WithConfig(cfg))
	opts := colorexpr.OptionsFromConfig(cfg)
	assert.Equal(t, colorexpr.EvaluatorLess, opts.Evaluator)

	r := e.Evaluate("red @a = .5", opts)
	require.False(t, r.Failed(), r.Error)
	assert.Equal(t, "fade(red, 50%)", r.ResultStr)
}

func TestConcurrentEvaluate(t *testing.T) {
	e := newEngine(t, colorexpr.WithCacheSize(4))
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := []string{"red | blue", "2 ^ 10", "YlOrBr", "rand"}[i%4]
			r := e.Evaluate(src, colorexpr.Options{})
			assert.False(t, r.Failed(), r.Error)
		}()
	}
	wg.Wait()
	e.Purge()
}

func TestFormat(t *testing.T) {
	e := newEngine(t)

	out, err := e.Format("RED|{.3 HSL} fc0;  $X =  2 ^ 8")
	require.NoError(t, err)
	assert.Equal(t, "red | {.3 hsl} #fc0; $X = 2 ^ 8", out)
	assert.Empty(t, e.Variables(), "formatting does not evaluate")

	_, err = e.Format("red +")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostics.ErrSyntax))
}
