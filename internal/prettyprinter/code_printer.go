// Package prettyprinter renders syntax trees back to canonical source:
// lowercase keywords, '#' on every hex color, single spaces around
// operators and only the parentheses the grammar needs.
package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/pipeline"
	"github.com/funvibe/colorexpr/internal/value"
)

// --- Code Printer (Output looks like source code) ---

// Binding strength, mirroring the parser (higher = binds tighter).
const (
	precAssign = iota + 1
	precList
	precSample
	precMix
	precContrast
	precAdjust
	precBlend
	precSum
	precProduct
	precPower
	precPrefix
	precPostfix
	precPrimary
)

var operatorPrecedence = map[string]int{
	"->":  precSample,
	"|":   precMix,
	"%%":  precContrast,
	"<<":  precAdjust,
	">>":  precAdjust,
	"<<<": precAdjust,
	">>>": precAdjust,
	"!*":  precBlend,
	"**":  precBlend,
	"<*":  precBlend,
	"*>":  precBlend,
	"^*":  precBlend,
	"^^":  precBlend,
	"!^":  precBlend,
	"+":   precSum,
	"-":   precSum,
	"*":   precProduct,
	"/":   precProduct,
	"^":   precPower,
}

// Right-associative operators
var rightAssoc = map[string]bool{
	"^": true,
}

// spaceArity is the operand count without alpha.
var spaceArity = map[string]int{"cmyk": 4, "argb": 4}

func precedence(e ast.Expression) int {
	switch x := e.(type) {
	case *ast.SetVar:
		return precAssign
	case *ast.ArrayLiteral:
		return precList
	case *ast.BinaryExpr:
		if p, ok := operatorPrecedence[x.Operator]; ok {
			return p
		}
		return precList
	case *ast.UnaryExpr:
		return precPrefix
	case *ast.ParamExpr:
		return precPostfix
	}
	return precPrimary
}

// CodePrinter is an ast.Visitor producing value.Text. It needs no
// evaluator, so it also formats programs that would fail to evaluate.
type CodePrinter struct {
	buf bytes.Buffer

	// Separator joins statements; "; " unless set.
	Separator string
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{Separator: "; "}
}

// Print formats n.
func Print(n ast.Node) (string, error) {
	v, err := ast.Evaluate(n, NewCodePrinter())
	if err != nil {
		return "", err
	}
	return v.Inspect(), nil
}

func (p *CodePrinter) Name() string { return "prettyprinter" }

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

// printExpr prints an expression, adding parentheses only if its
// precedence is below min.
func (p *CodePrinter) printExpr(e ast.Expression, min int) {
	if e == nil {
		p.write("<???>")
		return
	}
	if precedence(e) < min {
		p.parens(e)
		return
	}
	p.node(e)
}

func (p *CodePrinter) parens(e ast.Expression) {
	p.write("(")
	p.node(e)
	p.write(")")
}

// printOperand prints an operand read by a keyword or a parameter. A
// prefix expression can stand there bare; anything looser needs
// parentheses.
func (p *CodePrinter) printOperand(e ast.Expression) {
	if _, ok := e.(*ast.UnaryExpr); ok {
		p.node(e)
		return
	}
	p.printExpr(e, precPrimary)
}

// printJuxtaposed prints an operand that is recognized only by starting
// like one. '-' and '+' would read as infix operators there, and when
// more operands follow, a trailing bare parameter would swallow the next.
func (p *CodePrinter) printJuxtaposed(e ast.Expression, min int, followed bool) {
	if u, ok := e.(*ast.UnaryExpr); (ok && u.Operator != "~") || (followed && trailingGetParam(e)) {
		p.parens(e)
		return
	}
	p.printExpr(e, min)
}

// trailingGetParam reports whether the printed form of e ends with a
// parameter read such as "@alpha".
func trailingGetParam(e ast.Expression) bool {
	switch x := e.(type) {
	case *ast.ParamExpr:
		if x.Value == nil {
			return true
		}
		return bareTrailing(x.Value)
	case *ast.UnaryExpr:
		return trailingGetParam(x.Value)
	case *ast.BinaryExpr:
		return precedence(x.Right) >= precedence(x) && trailingGetParam(x.Right)
	case *ast.SetVar:
		return trailingGetParam(x.Value)
	case *ast.ArrayLiteral:
		return len(x.Elements) > 0 && trailingGetParam(x.Elements[len(x.Elements)-1])
	case *ast.ColorByNumber:
		return bareTrailing(x.Value)
	case *ast.ColorByTemperature:
		return bareTrailing(x.Value)
	case *ast.ColorByWavelength:
		return bareTrailing(x.Value)
	case *ast.BezierExpr:
		return bareTrailing(x.Colors)
	case *ast.ScaleExpr:
		return x.Source != nil && bareTrailing(x.Source)
	case *ast.ColorBySpaceParams:
		return len(x.Params) > 0 && bareTrailing(x.Params[len(x.Params)-1])
	}
	return false
}

// bareTrailing is trailingGetParam for operands printed by printOperand.
func bareTrailing(e ast.Expression) bool {
	if _, ok := e.(*ast.UnaryExpr); ok {
		return trailingGetParam(e)
	}
	return false
}

func (p *CodePrinter) node(n ast.Node) {
	switch x := n.(type) {
	case *ast.Program:
		for i, s := range x.Statements {
			if i > 0 {
				p.write(p.Separator)
			}
			p.node(s)
		}
	case *ast.Statement:
		p.printExpr(x.Expr, precAssign)
	case *ast.ParenthesesExpr:
		p.write("(")
		p.printExpr(x.Expr, precAssign)
		p.write(")")
	case *ast.NumberLiteral:
		p.write(strings.ToLower(x.Value))
	case *ast.PercentExpr:
		p.printExpr(x.Value, precPrimary)
		p.write("%")
	case *ast.ArrayLiteral:
		p.printElements(x.Elements, nil)
	case *ast.ColorNameLiteral:
		p.write(strings.ToLower(x.Name))
	case *ast.ColorHexLiteral:
		p.write("#" + strings.ToLower(strings.TrimPrefix(x.Hex, "#")))
	case *ast.ColorByNumber:
		p.keyword("num", x.Value)
	case *ast.ColorByTemperature:
		p.keyword("temp", x.Value)
	case *ast.ColorByWavelength:
		p.keyword("wl", x.Value)
	case *ast.ColorBySpaceParams:
		p.printSpace(x)
	case *ast.RandomColor:
		p.write("rand")
	case *ast.ScaleExpr:
		p.printScale(x)
	case *ast.BezierExpr:
		p.keyword("bezier", x.Colors)
	case *ast.CubehelixExpr:
		p.write("cubehelix")
	case *ast.BrewerConst:
		p.write(x.Name)
	case *ast.ParamExpr:
		p.printParam(x)
	case *ast.UnaryExpr:
		p.write(x.Operator)
		p.printExpr(x.Value, precPostfix)
	case *ast.BinaryExpr:
		p.printBinary(x)
	case *ast.GetVar:
		p.write(variable(x.Name))
	case *ast.SetVar:
		p.write(variable(x.Name) + " = ")
		p.printExpr(x.Value, precAssign)
	}
}

func variable(name string) string {
	return "$" + strings.TrimPrefix(name, "$")
}

func (p *CodePrinter) keyword(word string, operand ast.Expression) {
	p.write(word + " ")
	p.printOperand(operand)
}

func (p *CodePrinter) printSpace(x *ast.ColorBySpaceParams) {
	arity, ok := spaceArity[x.Space]
	if !ok {
		arity = 3
	}
	p.write(x.Space)
	if len(x.Params) > arity {
		p.write("a")
	}
	for _, e := range x.Params {
		p.write(" ")
		p.printOperand(e)
	}
}

func (p *CodePrinter) printScale(x *ast.ScaleExpr) {
	p.write("scale ")
	if x.Mode != "" {
		p.write("{" + x.Mode + "} ")
	}
	if x.Source != nil {
		p.printOperand(x.Source)
		return
	}
	p.write("(")
	p.printElements(x.Colors, x.Domain)
	p.write(")")
}

// printElements prints whitespace separated operands, each optionally
// followed by ":position".
func (p *CodePrinter) printElements(elems, positions []ast.Expression) {
	for i, e := range elems {
		var pos ast.Expression
		if i < len(positions) {
			pos = positions[i]
		}
		followed := i < len(elems)-1 && pos == nil
		switch {
		case i > 0:
			p.write(" ")
			p.printJuxtaposed(e, precList+1, followed)
		case followed && trailingGetParam(e):
			p.parens(e)
		default:
			p.printExpr(e, precList+1)
		}
		if pos != nil {
			p.write(":")
			p.printOperand(pos)
		}
	}
}

func (p *CodePrinter) printParam(x *ast.ParamExpr) {
	p.printExpr(x.Obj, precPostfix)
	p.write(" @" + strings.ToLower(x.Name))
	if x.Value == nil {
		return
	}
	if x.Operator != "" {
		p.write(" " + x.Operator + " ")
		p.printOperand(x.Value)
		return
	}
	p.write(" ")
	if u, ok := x.Value.(*ast.UnaryExpr); ok && u.Operator != "~" {
		p.parens(u)
		return
	}
	p.printOperand(x.Value)
}

func (p *CodePrinter) printBinary(x *ast.BinaryExpr) {
	prec := precedence(x)
	left, right := prec, prec+1
	if rightAssoc[x.Operator] {
		left, right = prec+1, prec
	}

	p.printExpr(x.Left, left)
	p.write(" " + x.Operator + " ")
	if x.Options != nil {
		p.write("{")
		if x.Options.Ratio != nil {
			if x.Options.Mode != "" && trailingGetParam(x.Options.Ratio) {
				p.parens(x.Options.Ratio)
				p.write(" ")
			} else {
				p.printExpr(x.Options.Ratio, precList+1)
				if x.Options.Mode != "" {
					p.write(" ")
				}
			}
		}
		p.write(x.Options.Mode + "} ")
	}
	p.printExpr(x.Right, right)
}

// Every visit resets the buffer and prints the node as a whole.
func (p *CodePrinter) visit(n ast.Node) (value.Value, error) {
	p.buf.Reset()
	p.node(n)
	return value.Text(p.String()), nil
}

func (p *CodePrinter) VisitProgram(n *ast.Program) (value.Value, error)     { return p.visit(n) }
func (p *CodePrinter) VisitStatement(n *ast.Statement) (value.Value, error) { return p.visit(n) }
func (p *CodePrinter) VisitParentheses(n *ast.ParenthesesExpr) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitNumberLiteral(n *ast.NumberLiteral) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitPercent(n *ast.PercentExpr) (value.Value, error)       { return p.visit(n) }
func (p *CodePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) (value.Value, error) { return p.visit(n) }
func (p *CodePrinter) VisitColorNameLiteral(n *ast.ColorNameLiteral) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitColorHexLiteral(n *ast.ColorHexLiteral) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitColorByNumber(n *ast.ColorByNumber) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitColorByTemperature(n *ast.ColorByTemperature) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitColorByWavelength(n *ast.ColorByWavelength) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitColorBySpaceParams(n *ast.ColorBySpaceParams) (value.Value, error) {
	return p.visit(n)
}
func (p *CodePrinter) VisitRandomColor(n *ast.RandomColor) (value.Value, error) { return p.visit(n) }
func (p *CodePrinter) VisitScale(n *ast.ScaleExpr) (value.Value, error)         { return p.visit(n) }
func (p *CodePrinter) VisitBezier(n *ast.BezierExpr) (value.Value, error)       { return p.visit(n) }
func (p *CodePrinter) VisitCubehelix(n *ast.CubehelixExpr) (value.Value, error) { return p.visit(n) }
func (p *CodePrinter) VisitBrewerConst(n *ast.BrewerConst) (value.Value, error) { return p.visit(n) }
func (p *CodePrinter) VisitParam(n *ast.ParamExpr) (value.Value, error)         { return p.visit(n) }
func (p *CodePrinter) VisitUnary(n *ast.UnaryExpr) (value.Value, error)         { return p.visit(n) }
func (p *CodePrinter) VisitBinary(n *ast.BinaryExpr) (value.Value, error)       { return p.visit(n) }
func (p *CodePrinter) VisitGetVar(n *ast.GetVar) (value.Value, error)           { return p.visit(n) }
func (p *CodePrinter) VisitSetVar(n *ast.SetVar) (value.Value, error)           { return p.visit(n) }

// Processor is the pipeline stage that formats ctx.Program into
// ctx.Result as value.Text.
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil || ctx.Failed() {
		return ctx
	}
	out, err := Print(ctx.Program)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Result = value.Text(out)
	return ctx
}
