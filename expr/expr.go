// Package expr parses infix expressions over one free variable x, converts
// them to postfix form and evaluates them, once or over many values of x.
package expr

import (
	"context"

	"github.com/leonardinius/gocalc/internal/batch"
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

type (
	// Token is a lexical unit of an expression.
	Token = token.Token

	// RPN is a postfix token sequence.
	RPN = parser.RPN
)

// Parse tokenizes expression. The expression is trimmed, lower-cased and
// wrapped in one pair of brackets first.
//
// Unbalanced brackets are reported together with the best-effort tokens.
func Parse(expression string) ([]Token, error) {
	return scanner.NewScanner(expression).Scan()
}

// ToRPN converts infix tokens to postfix order.
func ToRPN(tokens []Token) (RPN, error) {
	return parser.NewParser(tokens).Parse()
}

// Evaluate reduces rpn to a single number. Division by zero and other numeric
// degeneracies yield NaN rather than an error.
func Evaluate(rpn RPN) (float64, error) {
	return interpreter.NewInterpreter().Evaluate(rpn)
}

// EvaluateAt evaluates rpn with every occurrence of x bound to value.
// rpn itself is left untouched.
func EvaluateAt(rpn RPN, x float64) (float64, error) {
	return interpreter.NewInterpreter().EvaluateAt(rpn, x)
}

// EvaluateOverRange evaluates rpn at every x of xs. The result has the same
// length and order as xs regardless of parallel.
func EvaluateOverRange(ctx context.Context, rpn RPN, xs []float64, parallel bool) ([]float64, error) {
	tmpl, err := interpreter.Reduce(rpn)
	if err != nil {
		return nil, err
	}
	return batch.NewScheduler(batch.WithParallel(parallel)).Evaluate(ctx, tmpl, xs)
}

// EvaluateOverRangeFunc calls onSample for every x of xs in ascending index order.
func EvaluateOverRangeFunc(ctx context.Context, rpn RPN, xs []float64, parallel bool, onSample func(x, y float64)) error {
	tmpl, err := interpreter.Reduce(rpn)
	if err != nil {
		return err
	}
	return batch.NewScheduler(batch.WithParallel(parallel)).EvaluateFunc(ctx, tmpl, xs, onSample)
}

// EvaluateOverInterval evaluates rpn at every sample of interval.
func EvaluateOverInterval(ctx context.Context, rpn RPN, interval Interval, parallel bool) ([]float64, error) {
	xs, err := interval.Samples()
	if err != nil {
		return nil, err
	}
	return EvaluateOverRange(ctx, rpn, xs, parallel)
}

// EvaluateOverIntervalFunc is EvaluateOverRangeFunc for the samples of interval.
func EvaluateOverIntervalFunc(ctx context.Context, rpn RPN, interval Interval, parallel bool, onSample func(x, y float64)) error {
	xs, err := interval.Samples()
	if err != nil {
		return err
	}
	return EvaluateOverRangeFunc(ctx, rpn, xs, parallel, onSample)
}

// Functions lists the supported function names, sorted.
func Functions() []string {
	return scanner.FunctionNames()
}

// Constants lists the supported named constants, sorted.
func Constants() []string {
	return scanner.ConstantNames()
}
