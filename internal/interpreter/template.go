package interpreter

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/token"
)

// Template is a partially evaluated postfix sequence ready to be evaluated
// for many values of the free variable. It is immutable and safe to share
// between goroutines; every Binder works on its own copy.
type Template struct {
	rpn      parser.RPN
	unknowns []int
}

// Reduce folds the leading variable-independent part of rpn.
//
// Operators are folded left to right until the first one with an Unknown
// operand; that operator and everything after it is kept as is, even
// constant subexpressions further right.
func Reduce(rpn parser.RPN) (*Template, error) {
	if err := Validate(rpn); err != nil {
		return nil, err
	}

	out := make(parser.RPN, 0, len(rpn))
	for n, tok := range rpn {
		if tok.Kind != token.Operator {
			out = append(out, tok)
			continue
		}

		operands := out[len(out)-token.Arity(tok.Text):]
		if hasUnknown(operands) {
			out = append(out, rpn[n:]...)
			break
		}

		args := make([]float64, len(operands))
		for i, operand := range operands {
			args[i] = operand.Value
		}
		out = append(out[:len(out)-len(operands)], token.NewNumber(Apply(tok.Text, args...)))
	}

	t := &Template{rpn: out}
	for n, tok := range out {
		if tok.Kind == token.Unknown {
			t.unknowns = append(t.unknowns, n)
		}
	}
	return t, nil
}

// Validate checks that rpn is well-formed: every operator finds its operands,
// exactly one value remains, and no brackets are left.
func Validate(rpn parser.RPN) error {
	depth := 0
	for n := range rpn {
		tok := &rpn[n]
		switch {
		case tok.Kind == token.Operator:
			arity := token.Arity(tok.Text)
			if depth < arity {
				return calcerrors.NewEvalError(tok, calcerrors.ErrEvalMissingOperand)
			}
			depth -= arity - 1
		case tok.IsOperand():
			depth++
		default:
			return calcerrors.NewEvalError(tok, calcerrors.ErrEvalUnexpectedToken)
		}
	}

	switch {
	case depth == 0:
		return calcerrors.NewEvalError(nil, calcerrors.ErrParseEmptyExpression)
	case depth > 1:
		return calcerrors.NewEvalError(nil, calcerrors.ErrEvalDanglingOperands)
	}
	return nil
}

func hasUnknown(tokens []token.Token) bool {
	for _, tok := range tokens {
		if tok.Kind == token.Unknown {
			return true
		}
	}
	return false
}

// RPN returns a copy of the reduced sequence.
func (t *Template) RPN() parser.RPN {
	return t.rpn.Clone()
}

// Unknowns returns how many Unknown occurrences are left to bind.
func (t *Template) Unknowns() int {
	return len(t.unknowns)
}

// String implements fmt.Stringer.
func (t *Template) String() string {
	return t.rpn.String()
}

// Evaluate evaluates the template once at x.
func (t *Template) Evaluate(x float64) (float64, error) {
	return t.Binder().Evaluate(x)
}

// Binder returns a private working copy of the template.
func (t *Template) Binder(options ...InterpreterOption) *Binder {
	return &Binder{
		work:     t.rpn.Clone(),
		unknowns: t.unknowns,
		interp:   newInterpreter(options...),
	}
}

// Binder evaluates one template copy for successive values of x.
// Each goroutine needs its own Binder.
type Binder struct {
	work     parser.RPN
	unknowns []int
	interp   *interpreter
}

// Bind sets every Unknown occurrence of the working copy to x.
func (b *Binder) Bind(x float64) {
	for _, n := range b.unknowns {
		b.work[n] = b.work[n].Bind(x)
	}
}

// Evaluate binds x and evaluates the working copy.
func (b *Binder) Evaluate(x float64) (float64, error) {
	b.Bind(x)
	return b.interp.Evaluate(b.work)
}

var _ fmt.Stringer = (*Template)(nil)
