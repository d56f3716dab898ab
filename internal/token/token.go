package token

import (
	"fmt"
	"strconv"
)

// Span is a half-open [Start, End) character range in the scanned expression.
type Span struct {
	Start, End int
}

// Token represents a lexical token.
//
// Value is meaningful only when Resolved is set: always for Number and Constant,
// never for Operator and brackets, and for Unknown once a value is bound.
type Token struct {
	Kind     Kind
	Span     Span
	Text     string
	Value    float64
	Resolved bool
}

func NewToken(kind Kind, span Span, text string) Token {
	return Token{Kind: kind, Span: span, Text: text}
}

func NewValueToken(kind Kind, span Span, text string, value float64) Token {
	return Token{Kind: kind, Span: span, Text: text, Value: value, Resolved: true}
}

// NewNumber synthesizes a Number token holding value, e.g. a folded subexpression.
func NewNumber(value float64) Token {
	return NewValueToken(Number, Span{}, FormatNumber(value), value)
}

// Bind returns a copy of an Unknown token resolved to value.
func (t Token) Bind(value float64) Token {
	t.Value = value
	t.Resolved = true
	return t
}

// IsOperand reports whether the token can stand as an operand in an RPN sequence.
func (t Token) IsOperand() bool {
	switch t.Kind {
	case Number, Constant, Unknown:
		return true
	}
	return false
}

// FormatNumber renders a float the way synthesized tokens carry it in Text.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.Resolved {
		return fmt.Sprintf("%s %s %v", t.Kind, t.Text, t.Value)
	}
	return fmt.Sprintf("%s %s", t.Kind, t.Text)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	value := "<nil>"
	if t.Resolved {
		value = FormatNumber(t.Value)
	}
	return fmt.Sprintf("{Kind: %s, Text: %q, Value: %s, Span: %d:%d}", t.Kind, t.Text, value, t.Span.Start, t.Span.End)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)

var binaryOperators = map[string]struct{}{"+": {}, "-": {}, "*": {}, "/": {}, "^": {}}

// IsBinaryOperator reports whether text is one of + - * / ^. Every other
// operator, i.e. every named function, is unary.
func IsBinaryOperator(text string) bool {
	_, ok := binaryOperators[text]
	return ok
}

// Arity returns 2 for binary operators and 1 otherwise.
func Arity(text string) int {
	if IsBinaryOperator(text) {
		return 2
	}
	return 1
}
