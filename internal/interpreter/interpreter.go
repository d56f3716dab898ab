package interpreter

import (
	"fmt"
	"strings"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/stack"
	"github.com/leonardinius/gocalc/internal/token"
)

type Interpreter interface {
	// Evaluate reduces a postfix sequence to a single number.
	// Every Unknown must already be bound.
	// Division by zero and unknown operators produce NaN, not an error;
	// a sequence that does not reduce to exactly one value is malformed.
	//
	// Not thread safe.
	// The sequence itself is never modified.
	Evaluate(rpn parser.RPN) (float64, error)

	// EvaluateAt binds every Unknown in a private copy of rpn to x and evaluates it.
	//
	// Not thread safe.
	EvaluateAt(rpn parser.RPN, x float64) (float64, error)
}

type interpreter struct {
	opts     *interpreterOpts
	operands *stack.Stack[float64]
	args     [2]float64
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return newInterpreter(options...)
}

func newInterpreter(options ...InterpreterOption) *interpreter {
	return &interpreter{
		opts:     newInterpreterOpts(options...),
		operands: stack.New[float64](8),
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(rpn parser.RPN) (float64, error) {
	i.operands.Reset()

	for n := range rpn {
		tok := &rpn[n]
		switch tok.Kind {
		case token.Number, token.Constant, token.Unknown:
			if !tok.Resolved {
				return 0, calcerrors.NewEvalError(tok, calcerrors.ErrUnboundVariable)
			}
			i.operands.Push(tok.Value)
		case token.Operator:
			if err := i.apply(tok); err != nil {
				return 0, err
			}
		default:
			return 0, calcerrors.NewEvalError(tok, calcerrors.ErrEvalUnexpectedToken)
		}
	}

	switch i.operands.Len() {
	case 1:
		value, _ := i.operands.Pop()
		return value, nil
	case 0:
		return 0, calcerrors.NewEvalError(nil, calcerrors.ErrParseEmptyExpression)
	default:
		return 0, calcerrors.NewEvalError(nil, calcerrors.ErrEvalDanglingOperands)
	}
}

// EvaluateAt implements Interpreter.
func (i *interpreter) EvaluateAt(rpn parser.RPN, x float64) (float64, error) {
	return i.Evaluate(bindAll(rpn.Clone(), x))
}

func (i *interpreter) apply(tok *token.Token) error {
	args := i.args[:token.Arity(tok.Text)]
	for n := len(args) - 1; n >= 0; n-- {
		value, ok := i.operands.Pop()
		if !ok {
			return calcerrors.NewEvalError(tok, calcerrors.ErrEvalMissingOperand)
		}
		args[n] = value
	}

	result := Apply(tok.Text, args...)
	i.trace(tok, args, result)
	i.operands.Push(result)
	return nil
}

func (i *interpreter) trace(tok *token.Token, args []float64, result float64) {
	if i.opts.trace == nil {
		return
	}

	text := make([]string, len(args))
	for n, arg := range args {
		text[n] = token.FormatNumber(arg)
	}
	fmt.Fprintf(i.opts.trace, "%s %s = %s\n", tok.Text, strings.Join(text, " "), token.FormatNumber(result))
}

// bindAll resolves every Unknown in rpn to x in place.
func bindAll(rpn parser.RPN, x float64) parser.RPN {
	for n := range rpn {
		if rpn[n].Kind == token.Unknown {
			rpn[n] = rpn[n].Bind(x)
		}
	}
	return rpn
}

var _ Interpreter = (*interpreter)(nil)
