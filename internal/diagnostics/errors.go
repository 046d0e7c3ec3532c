package diagnostics

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/token"
)

// Error categories. Every *Error is marked with exactly one of them so
// callers can test the category with errors.Is.
var (
	ErrOperandType       = errors.New("operand type mismatch")
	ErrRange             = errors.New("number out of range")
	ErrArity             = errors.New("wrong number of operands")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrUnsupported       = errors.New("not supported by evaluator")
	ErrInvalidAssignment = errors.New("invalid assignment")
	ErrInvariant         = errors.New("invariant violated")
	ErrSyntax            = errors.New("syntax error")
	ErrInternal          = errors.New("internal error")
)

// Error is the single user-facing evaluation error: a message and an
// optional source span.
type Error struct {
	Message string
	Loc     *token.Loc
}

func (e *Error) Error() string {
	if e.Loc == nil {
		return fmt.Sprintf("Error: %s.", e.Message)
	}
	return fmt.Sprintf("Error (%s): %s.", e.Loc, e.Message)
}

// Newf builds an *Error with the given category and location.
func Newf(kind error, loc *token.Loc, format string, args ...any) error {
	return errors.Mark(&Error{Message: fmt.Sprintf(format, args...), Loc: loc}, kind)
}

// As extracts the *Error carried by err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

type errorAndCode struct {
	err  error
	code string
}

var errorCodes = []errorAndCode{
	{ErrOperandType, "OPERAND_TYPE"},
	{ErrRange, "RANGE"},
	{ErrArity, "ARITY"},
	{ErrUnknownIdentifier, "UNKNOWN_IDENTIFIER"},
	{ErrUnsupported, "UNSUPPORTED"},
	{ErrInvalidAssignment, "INVALID_ASSIGNMENT"},
	{ErrInvariant, "INVARIANT"},
	{ErrSyntax, "SYNTAX"},
	{ErrInternal, "INTERNAL"},
}

// Code maps an error to a stable machine-readable category name.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return "UNEXPECTED_ERROR"
}
