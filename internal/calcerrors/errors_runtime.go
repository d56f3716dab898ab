package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	ErrEvalMissingOperand   = fmt.Errorf("%w operator is missing an operand", ErrMalformedExpression)
	ErrEvalDanglingOperands = fmt.Errorf("%w operands left without an operator", ErrMalformedExpression)
	ErrEvalUnexpectedToken  = fmt.Errorf("%w brackets are not allowed in postfix form", ErrMalformedExpression)
	ErrUnboundVariable      = fmt.Errorf("%w unbound variable", ErrMalformedExpression)

	ErrInvalidRange = errors.New("invalid range.")
)

func ErrInvalidRangeStep(step float64) error {
	return fmt.Errorf("%w step must be a positive finite number, got %v", ErrInvalidRange, step)
}

func ErrInvalidRangeBounds(start, end float64) error {
	return fmt.Errorf("%w bounds must be finite, got [%v, %v]", ErrInvalidRange, start, end)
}

func NewEvalError(tok *token.Token, cause error) error {
	return &EvalError{tok, cause}
}

type EvalError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (e *EvalError) Error() string {
	if e.tok == nil {
		return fmt.Sprintf("evaluation error: %v", e.cause)
	}
	return fmt.Sprintf("evaluation error at '%s': %v", e.tok.Text, e.cause)
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

// Span implements Spanned.
func (e *EvalError) Span() token.Span {
	if e.tok == nil {
		return token.Span{Start: -1, End: -1}
	}
	return e.tok.Span
}

var _ error = (*EvalError)(nil)
var _ unwrapInterface = (*EvalError)(nil)
var _ Spanned = (*EvalError)(nil)
