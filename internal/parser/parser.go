package parser

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/stack"
	"github.com/leonardinius/gocalc/internal/token"
)

// Parser converts an infix token sequence into postfix (RPN) order.
type Parser interface {
	Parse() (RPN, error)
}

type parser struct {
	tokens    []token.Token
	operators *stack.Stack[token.Token]
	output    RPN
	err       error
}

func NewParser(tokens []token.Token) Parser {
	return &parser{
		tokens:    tokens,
		operators: stack.New[token.Token](len(tokens) / 2),
		output:    make(RPN, 0, len(tokens)),
	}
}

// Precedence of an operator. Ties flush the stack, so every operator,
// '^' included, associates to the left.
func Precedence(op token.Token) int {
	switch op.Text {
	case "*", "/", "^":
		return 100
	case "+", "-":
		return 1
	default:
		return 10
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, output: %#v, err: %#v}", p.tokens, p.output, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, output: %d, err: %v}", len(p.tokens), len(p.output), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (RPN, error) {
	for i := range p.tokens {
		if p.err != nil {
			return nil, p.err
		}
		p.convert(&p.tokens[i])
	}

	p.drain()
	if p.err != nil {
		return nil, p.err
	}

	if len(p.output) == 0 {
		return nil, calcerrors.NewParseError(nil, calcerrors.ErrParseEmptyExpression)
	}

	return p.output, nil
}

func (p *parser) convert(tok *token.Token) {
	switch tok.Kind {
	case token.LeftBracket:
		p.operators.Push(*tok)
	case token.RightBracket:
		p.closeBracket(tok)
	case token.Number, token.Constant, token.Unknown:
		p.output = append(p.output, *tok)
	case token.Operator:
		p.operator(*tok)
	default:
		p.err = calcerrors.NewParseError(tok, fmt.Errorf("%w unexpected token %s", calcerrors.ErrMalformedExpression, tok.Kind))
	}
}

func (p *parser) closeBracket(tok *token.Token) {
	for {
		top, ok := p.operators.Pop()
		if !ok {
			p.err = calcerrors.NewParseError(tok, calcerrors.ErrParseUnmatchedRightBracket)
			return
		}
		if top.Kind == token.LeftBracket {
			break
		}
		p.output = append(p.output, top)
	}

	// the bracket closed a function argument list, so sin(x)*2 is 2*sin(x), never sin(2*x)
	if fn, ok := p.operators.Peek(); ok && isFunction(fn) {
		p.operators.Pop()
		p.output = append(p.output, fn)
	}
}

func (p *parser) operator(op token.Token) {
	// a function has no left operand, nothing to flush
	if isFunction(op) {
		p.operators.Push(op)
		return
	}

	top, ok := p.operators.Peek()
	if !ok || top.Kind != token.Operator || Precedence(top) < Precedence(op) {
		p.operators.Push(op)
		return
	}

	for ok && top.Kind == token.Operator && Precedence(top) >= Precedence(op) {
		p.operators.Pop()
		p.output = append(p.output, top)
		top, ok = p.operators.Peek()
	}
	p.operators.Push(op)
}

func isFunction(tok token.Token) bool {
	return tok.Kind == token.Operator && !token.IsBinaryOperator(tok.Text)
}

// drain empties the operator stack into the output at end of input.
func (p *parser) drain() {
	for !p.operators.IsEmpty() {
		top, _ := p.operators.Pop()
		if top.Kind == token.LeftBracket {
			p.err = calcerrors.NewParseError(&top, calcerrors.ErrParseUnclosedLeftBracket)
			return
		}
		p.output = append(p.output, top)
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
