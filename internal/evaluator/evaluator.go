// Package evaluator defines the contract shared by the backends and
// implements the core backend, which interprets a tree into values.
//
// Operator and parameter resolution is shared: a backend only receives
// an already resolved Operation, UnaryOperation or ParamID together with
// the operand values computed by the core backend.
package evaluator

import (
	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/value"
)

// Evaluator is a backend. Left, right, operand and obj values handed to
// Binary, Unary and Param were produced by Core.
type Evaluator interface {
	ast.Visitor

	Core() *CoreEvaluator
	Binary(op Operation, node *ast.BinaryExpr, left, right value.Value) (value.Value, error)
	Unary(op UnaryOperation, node *ast.UnaryExpr, operand value.Value) (value.Value, error)
	Param(id ParamID, op ParamOp, node *ast.ParamExpr, obj value.Value) (value.Value, error)
}

// Operation is a resolved binary operation.
type Operation int

const (
	OpNumbersAdd Operation = iota + 1
	OpNumbersSubtract
	OpNumbersMultiply
	OpNumbersDivide
	OpNumberPower
	OpColorNumberAdd
	OpColorNumberSubtract
	OpColorNumberMultiply
	OpColorNumberDivide
	OpContrast
	OpMix
	OpSample
	OpDesaturate
	OpSaturate
	OpDarken
	OpLighten
	OpBlendAdd
	OpBlendSubtract
	OpBlendMultiply
	OpBlendDivide
	OpBlendColorBurn
	OpBlendColorDodge
	OpBlendDarken
	OpBlendLighten
	OpBlendScreen
	OpBlendOverlay
	OpBlendHardLight
	OpBlendSoftLight
	OpBlendDifference
	OpBlendExclusion
	OpBlendNegate
)

var operationNames = map[Operation]string{
	OpNumbersAdd:          "NumbersAddition",
	OpNumbersSubtract:     "NumbersSubtraction",
	OpNumbersMultiply:     "NumbersMultiplication",
	OpNumbersDivide:       "NumbersDivision",
	OpNumberPower:         "NumberPower",
	OpColorNumberAdd:      "ColorAndNumberAddition",
	OpColorNumberSubtract: "ColorAndNumberSubtraction",
	OpColorNumberMultiply: "ColorAndNumberMultiplication",
	OpColorNumberDivide:   "ColorAndNumberDivision",
	OpContrast:            "ColorsContrast",
	OpMix:                 "ColorsMix",
	OpSample:              "ColorsFromScaleProduction",
	OpDesaturate:          "ColorDesaturate",
	OpSaturate:            "ColorSaturate",
	OpDarken:              "ColorDarken",
	OpLighten:             "ColorLighten",
}

var blendOperations = map[Operation]colormath.BlendMode{
	OpBlendAdd:        colormath.BlendAdd,
	OpBlendSubtract:   colormath.BlendSubtract,
	OpBlendMultiply:   colormath.BlendMultiply,
	OpBlendDivide:     colormath.BlendDivide,
	OpBlendColorBurn:  colormath.BlendColorBurn,
	OpBlendColorDodge: colormath.BlendColorDodge,
	OpBlendDarken:     colormath.BlendDarken,
	OpBlendLighten:    colormath.BlendLighten,
	OpBlendScreen:     colormath.BlendScreen,
	OpBlendOverlay:    colormath.BlendOverlay,
	OpBlendHardLight:  colormath.BlendHardLight,
	OpBlendSoftLight:  colormath.BlendSoftLight,
	OpBlendDifference: colormath.BlendDifference,
	OpBlendExclusion:  colormath.BlendExclusion,
	OpBlendNegate:     colormath.BlendNegate,
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	if mode, ok := blendOperations[op]; ok {
		return mode.String() + "Blend"
	}
	return "UnknownOperation"
}

// BlendMode returns the blend behind a color,color operation.
func (op Operation) BlendMode() (colormath.BlendMode, bool) {
	mode, ok := blendOperations[op]
	return mode, ok
}

type UnaryOperation int

const (
	OpUnaryMinus UnaryOperation = iota + 1
	OpColorInverse
	OpCorrectLightness
)

func (op UnaryOperation) String() string {
	switch op {
	case OpUnaryMinus:
		return "UnaryMinus"
	case OpColorInverse:
		return "ColorInverse"
	case OpCorrectLightness:
		return "CorrectLightness"
	}
	return "UnknownUnaryOperation"
}
