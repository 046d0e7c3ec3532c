package backend_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/colorexpr/internal/backend"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/evaluator"
	"github.com/funvibe/colorexpr/internal/parser"
	"github.com/funvibe/colorexpr/internal/pipeline"
	"github.com/funvibe/colorexpr/internal/value"
)

func run(t *testing.T, b backend.Backend, src string) *pipeline.PipelineContext {
	t.Helper()
	pp, err := parser.NewProcessor(0)
	require.NoError(t, err)
	p := pipeline.New(pp, backend.NewExecutionProcessor(b, nil))
	return p.Run(pipeline.NewPipelineContext(src))
}

func TestNew(t *testing.T) {
	core := evaluator.NewCore()

	b, err := backend.New("core", core)
	require.NoError(t, err)
	assert.Equal(t, "core", b.Name())

	b, err = backend.New("", core)
	require.NoError(t, err)
	assert.Equal(t, "core", b.Name())

	b, err = backend.New("less", core)
	require.NoError(t, err)
	assert.Equal(t, "less", b.Name())

	_, err = backend.New("vm", core)
	assert.EqualError(t, err, `unknown evaluator "vm"`)
}

func TestBackends(t *testing.T) {
	tests := []struct {
		backend string
		input   string
		want    string
	}{
		{"core", "red", "#ff0000"},
		{"core", "2 ^ 8 - 1", "255"},
		{"core", "red | blue", "#800080"},
		{"less", "red | blue", "mix(red, blue)"},
		{"less", "2 ^ 8 - 1", "pow(2, 8) - 1"},
	}
	for _, tt := range tests {
		t.Run(tt.backend+"/"+tt.input, func(t *testing.T) {
			b, err := backend.New(tt.backend, nil)
			require.NoError(t, err)
			ctx := run(t, b, tt.input)
			require.NoError(t, ctx.Err())
			assert.Equal(t, tt.want, ctx.Result.Inspect())
		})
	}
}

func TestSharedCore(t *testing.T) {
	core := evaluator.NewCore()
	ctx := run(t, backend.NewLess(core), "$c = #123456")
	require.NoError(t, ctx.Err())
	assert.Equal(t, "@c: #123456", ctx.Result.Inspect())

	ctx = run(t, backend.NewCore(core), "$c")
	require.NoError(t, ctx.Err())
	assert.Equal(t, "#123456", ctx.Result.Inspect())
}

func TestRunProgram(t *testing.T) {
	program, err := parser.Parse("$x = 3; $x * 2")
	require.NoError(t, err)

	b := backend.NewCore(nil)
	v, err := b.RunProgram(program)
	require.NoError(t, err)
	assert.Equal(t, value.Number(6), v)

	last, ok := b.Evaluator().Environment().Get("$")
	require.True(t, ok)
	assert.Equal(t, value.Number(6), last)
}

func TestProcessorSkipsFailedContext(t *testing.T) {
	ctx := run(t, backend.NewCore(nil), "red +")
	require.Error(t, ctx.Err())
	assert.True(t, errors.Is(ctx.Err(), diagnostics.ErrSyntax))
	assert.Nil(t, ctx.Result)

	p := backend.NewExecutionProcessor(backend.NewCore(nil), nil)
	empty := p.Process(pipeline.NewPipelineContext(""))
	assert.False(t, empty.Failed())
	assert.Nil(t, empty.Result)
}

func TestProcessorKeepsEvaluationErrors(t *testing.T) {
	ctx := run(t, backend.NewCore(nil), "rgb 300 0 0")
	require.True(t, ctx.Failed())
	assert.True(t, errors.Is(ctx.Err(), diagnostics.ErrRange))
	d, ok := diagnostics.As(ctx.Err())
	require.True(t, ok)
	assert.NotNil(t, d.Loc)
}

type brokenBackend struct{ result value.Value }

func (b brokenBackend) Run(*pipeline.PipelineContext) (value.Value, error) {
	if b.result != nil {
		return b.result, nil
	}
	return nil, errors.New("boom")
}

func (brokenBackend) Name() string { return "broken" }

func TestProcessorWrapsForeignErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pp, err := parser.NewProcessor(0)
	require.NoError(t, err)
	ctx := pipeline.New(pp, backend.NewExecutionProcessor(brokenBackend{}, logger)).
		Run(pipeline.NewPipelineContext("red"))

	require.True(t, ctx.Failed())
	assert.True(t, errors.Is(ctx.Err(), diagnostics.ErrInternal))
	assert.Equal(t, "Error: boom.", ctx.Err().Error())
	assert.Contains(t, buf.String(), "evaluator=broken")
	assert.Contains(t, buf.String(), "error=")

	ctx = pipeline.New(pp, backend.NewExecutionProcessor(brokenBackend{result: value.Number(1)}, logger)).
		Run(pipeline.NewPipelineContext("red"))
	require.NoError(t, ctx.Err())
	assert.Equal(t, value.Number(1), ctx.Result)
}
