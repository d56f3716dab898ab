package expr

import (
	"context"
	"fmt"

	"github.com/leonardinius/gocalc/internal/batch"
	"github.com/leonardinius/gocalc/internal/interpreter"
)

// Expression is a compiled expression: tokenized, converted and with its
// x-independent prefix folded. It is safe for concurrent use.
type Expression struct {
	source string
	rpn    RPN
	tmpl   *interpreter.Template
}

// Compile parses, converts and reduces expression.
func Compile(expression string) (*Expression, error) {
	tokens, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	rpn, err := ToRPN(tokens)
	if err != nil {
		return nil, err
	}
	tmpl, err := interpreter.Reduce(rpn)
	if err != nil {
		return nil, err
	}

	return &Expression{source: expression, rpn: rpn, tmpl: tmpl}, nil
}

// MustCompile is like Compile but panics if the expression cannot be compiled.
func MustCompile(expression string) *Expression {
	e, err := Compile(expression)
	if err != nil {
		panic(fmt.Sprintf("expr: Compile(%q): %v", expression, err))
	}
	return e
}

// Eval evaluates an expression without x. An expression that uses x fails
// with calcerrors.ErrUnboundVariable.
func (e *Expression) Eval() (float64, error) {
	return interpreter.NewInterpreter().Evaluate(e.tmpl.RPN())
}

func (e *Expression) EvalAt(x float64) (float64, error) {
	return e.tmpl.Evaluate(x)
}

// EvalOver evaluates the expression at every x of xs, in order.
func (e *Expression) EvalOver(ctx context.Context, xs []float64, parallel bool) ([]float64, error) {
	return batch.NewScheduler(batch.WithParallel(parallel)).Evaluate(ctx, e.tmpl, xs)
}

func (e *Expression) EvalInterval(ctx context.Context, interval Interval, parallel bool) ([]float64, error) {
	xs, err := interval.Samples()
	if err != nil {
		return nil, err
	}
	return e.EvalOver(ctx, xs, parallel)
}

// HasVariable reports whether x is left after folding.
func (e *Expression) HasVariable() bool {
	return e.tmpl.Unknowns() > 0
}

// RPN returns a copy of the full postfix form.
func (e *Expression) RPN() RPN {
	return e.rpn.Clone()
}

// Reduced returns the postfix form with the x-independent prefix folded.
func (e *Expression) Reduced() string {
	return e.tmpl.String()
}

// String returns the source expression.
func (e *Expression) String() string {
	return e.source
}

var _ fmt.Stringer = (*Expression)(nil)
