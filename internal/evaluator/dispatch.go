package evaluator

import (
	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/token"
	"github.com/funvibe/colorexpr/internal/value"
)

// operands classifies a pair of operand kinds.
type operands int

const (
	numbers operands = iota
	colors
	colorAndNumber
	numberAndColor
	scaleAndNumber
)

func classify(left, right value.Kind) (operands, bool) {
	switch {
	case left == value.NumberKind && right == value.NumberKind:
		return numbers, true
	case left == value.ColorKind && right == value.ColorKind:
		return colors, true
	case left == value.ColorKind && right == value.NumberKind:
		return colorAndNumber, true
	case left == value.NumberKind && right == value.ColorKind:
		return numberAndColor, true
	case left == value.ColorScaleKind && right == value.NumberKind:
		return scaleAndNumber, true
	}
	return 0, false
}

// binaryTable lists, per operator symbol, which operand pairs it accepts
// and what they resolve to.
var binaryTable = map[string]map[operands]Operation{
	"+": {
		numbers:        OpNumbersAdd,
		colors:         OpBlendAdd,
		colorAndNumber: OpColorNumberAdd,
		numberAndColor: OpColorNumberAdd,
	},
	"-": {
		numbers:        OpNumbersSubtract,
		colors:         OpBlendSubtract,
		colorAndNumber: OpColorNumberSubtract,
	},
	"*": {
		numbers:        OpNumbersMultiply,
		colors:         OpBlendMultiply,
		colorAndNumber: OpColorNumberMultiply,
		numberAndColor: OpColorNumberMultiply,
	},
	"/": {
		numbers:        OpNumbersDivide,
		colors:         OpBlendDivide,
		colorAndNumber: OpColorNumberDivide,
	},
	"^":   {numbers: OpNumberPower},
	"%%":  {colors: OpContrast},
	"|":   {colors: OpMix},
	"->":  {scaleAndNumber: OpSample},
	"<<":  {colorAndNumber: OpDesaturate, colors: OpBlendColorBurn},
	">>":  {colorAndNumber: OpSaturate, colors: OpBlendColorDodge},
	"<<<": {colorAndNumber: OpDarken, colors: OpBlendDarken},
	">>>": {colorAndNumber: OpLighten, colors: OpBlendLighten},
	"!*":  {colors: OpBlendScreen},
	"**":  {colors: OpBlendOverlay},
	"<*":  {colors: OpBlendHardLight},
	"*>":  {colors: OpBlendSoftLight},
	"^*":  {colors: OpBlendDifference},
	"^^":  {colors: OpBlendExclusion},
	"!^":  {colors: OpBlendNegate},
}

// ResolveBinary picks the operation for an operator and the kinds of its
// operands.
func ResolveBinary(operator string, left, right value.Kind, loc *token.Loc) (Operation, error) {
	table, ok := binaryTable[operator]
	if !ok {
		return 0, diagnostics.Newf(diagnostics.ErrInternal, loc, "invalid operator '%s'", operator)
	}
	if pair, ok := classify(left, right); ok {
		if op, ok := table[pair]; ok {
			return op, nil
		}
	}
	return 0, diagnostics.Newf(diagnostics.ErrOperandType, loc,
		"%s and %s is invalid operand types or sequence for operator '%s'", left, right, operator)
}

var unaryTable = map[string]struct {
	op   UnaryOperation
	kind value.Kind
}{
	"-": {OpUnaryMinus, value.NumberKind},
	"~": {OpColorInverse, value.ColorKind},
	"+": {OpCorrectLightness, value.ColorScaleKind},
}

// ResolveUnary picks the operation for a prefix operator and checks the
// operand. loc is the operand location.
func ResolveUnary(operator string, operand value.Value, loc *token.Loc) (UnaryOperation, error) {
	entry, ok := unaryTable[operator]
	if !ok {
		return 0, diagnostics.Newf(diagnostics.ErrInternal, loc, "invalid operator: %s", operator)
	}
	if err := value.Check(operand, loc, entry.kind); err != nil {
		return 0, err
	}
	return entry.op, nil
}

// DispatchBinary evaluates both operands with the core backend, resolves
// the operation from their kinds and hands it to e.
func DispatchBinary(e Evaluator, node *ast.BinaryExpr) (value.Value, error) {
	core := e.Core()
	left, err := ast.Evaluate(node.Left, core)
	if err != nil {
		return nil, err
	}
	right, err := ast.Evaluate(node.Right, core)
	if err != nil {
		return nil, err
	}
	op, err := ResolveBinary(node.Operator, value.TypeOf(left), value.TypeOf(right), node.Loc)
	if err != nil {
		return nil, err
	}
	return e.Binary(op, node, left, right)
}

func DispatchUnary(e Evaluator, node *ast.UnaryExpr) (value.Value, error) {
	operand, err := ast.Evaluate(node.Value, e.Core())
	if err != nil {
		return nil, err
	}
	op, err := ResolveUnary(node.Operator, operand, node.Value.Location())
	if err != nil {
		return nil, err
	}
	return e.Unary(op, node, operand)
}
