package parser

import (
	"strings"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/stack"
	"github.com/leonardinius/gocalc/internal/token"
)

// InfixPrinter renders a postfix sequence back into a fully parenthesized
// infix form, e.g. "1 2 3 * +" prints as "(1 + (2 * 3))".
type InfixPrinter struct{}

func NewInfixPrinter() *InfixPrinter {
	return &InfixPrinter{}
}

type infixTerm struct {
	text   string
	binary bool
}

func (p *InfixPrinter) Print(rpn RPN) (string, error) {
	operands := stack.New[infixTerm](len(rpn))

	for i := range rpn {
		tok := &rpn[i]
		if tok.Kind != token.Operator {
			if !tok.IsOperand() {
				return "", calcerrors.NewParseError(tok, calcerrors.ErrEvalUnexpectedToken)
			}
			operands.Push(infixTerm{text: tok.Text})
			continue
		}

		args := make([]infixTerm, token.Arity(tok.Text))
		for j := len(args) - 1; j >= 0; j-- {
			arg, ok := operands.Pop()
			if !ok {
				return "", calcerrors.NewParseError(tok, calcerrors.ErrEvalMissingOperand)
			}
			args[j] = arg
		}

		if len(args) == 2 {
			text := p.operand(args[0]) + " " + tok.Text + " " + p.operand(args[1])
			operands.Push(infixTerm{text: text, binary: true})
		} else {
			operands.Push(infixTerm{text: tok.Text + "(" + args[0].text + ")"})
		}
	}

	if operands.Len() != 1 {
		return "", calcerrors.NewParseError(nil, calcerrors.ErrEvalDanglingOperands)
	}
	out, _ := operands.Pop()
	return p.operand(out), nil
}

// operand parenthesizes binary subterms.
func (p *InfixPrinter) operand(term infixTerm) string {
	if !term.binary {
		return term.text
	}
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(term.text)
	_, _ = out.WriteString(")")
	return out.String()
}
