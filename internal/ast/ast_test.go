package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

func loc(from, to int) *token.Loc {
	return &token.Loc{
		Start: token.Pos{Line: 1, Column: from, Offset: from},
		End:   token.Pos{Line: 1, Column: to, Offset: to},
	}
}

// red | {25% hsl} #0f0
func mixProgram() *ast.Program {
	bin := &ast.BinaryExpr{
		Loc:      loc(0, 20),
		Operator: "|",
		Options: &ast.MixOptions{
			Ratio: &ast.PercentExpr{Loc: loc(7, 10), Value: &ast.NumberLiteral{Loc: loc(7, 9), Value: "25"}},
			Mode:  "hsl",
		},
		Left:  &ast.ColorNameLiteral{Loc: loc(0, 3), Name: "red"},
		Right: &ast.ColorHexLiteral{Loc: loc(16, 20), Hex: "#0f0"},
	}
	stmt := &ast.Statement{Loc: loc(0, 20), Expr: bin}
	return &ast.Program{Loc: loc(0, 20), Statements: []*ast.Statement{stmt}}
}

func TestDumpJSON(t *testing.T) {
	js, err := ast.DumpJSON(mixProgram(), true)
	require.NoError(t, err)

	assert.Equal(t, "program", gjson.Get(js, "$type").String())
	assert.Equal(t, "1:0,0..1:20,20", gjson.Get(js, "$loc").String())

	expr := gjson.Get(js, "statements.0.expr")
	assert.Equal(t, "expr.operation.binary", expr.Get("$type").String())
	assert.Equal(t, "|", expr.Get("operator").String())
	assert.Equal(t, "hsl", expr.Get("options.mode").String())
	assert.Equal(t, "25", expr.Get("options.ratio.value.value").String())
	assert.Equal(t, "red", expr.Get("left.value").String())
	assert.Equal(t, "#0f0", expr.Get("right.value").String())

	var keys []string
	expr.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, []string{"$type", "$loc", "operator", "options", "left", "right"}, keys)
	assert.Contains(t, js, "\n  \"statements\"")
}

func TestDumpWithoutLocs(t *testing.T) {
	js, err := ast.DumpJSON(mixProgram(), false)
	require.NoError(t, err)
	assert.NotContains(t, js, "$loc")
}

func TestParamNodeType(t *testing.T) {
	obj := &ast.ColorNameLiteral{Name: "red"}
	get := &ast.ParamExpr{Obj: obj, Name: "a"}
	set := &ast.ParamExpr{Obj: obj, Name: "a", Value: &ast.NumberLiteral{Value: ".5"}, Operator: "*="}

	assert.Equal(t, "expr.getParam", get.Type())
	assert.Equal(t, "expr.setParam", set.Type())
	assert.Equal(t, "", get.RelativeOperator())
	assert.Equal(t, "*", set.RelativeOperator())

	js, err := ast.DumpJSON(get, false)
	require.NoError(t, err)
	assert.False(t, gjson.Get(js, "value").Exists())
	assert.False(t, gjson.Get(js, "operator").Exists())
}

type numbersOnly struct {
	ast.Visitor
}

func (numbersOnly) Name() string { return "numbers" }

func (numbersOnly) VisitNumberLiteral(*ast.NumberLiteral) (value.Value, error) {
	return value.Number(1), nil
}

func (numbersOnly) VisitRandomColor(*ast.RandomColor) (value.Value, error) {
	return nil, nil
}

func TestEvaluate(t *testing.T) {
	v, err := ast.Evaluate(&ast.NumberLiteral{Value: "1"}, numbersOnly{})
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)

	_, err = ast.Evaluate(&ast.RandomColor{Loc: loc(0, 4)}, numbersOnly{})
	assert.EqualError(t, err, "Error (1:0,0..1:4,4): evaluation of 'expr.randomColor' is not supported by 'numbers'.")
}
