package token

import "fmt"

type Kind uint8

const (
	Number Kind = iota
	Constant
	// Operator covers binary arithmetic operators and unary named functions.
	Operator
	LeftBracket
	RightBracket
	// Unknown is the free variable placeholder.
	Unknown
)

var kindNames = [...]string{
	Number:       "NUMBER",
	Constant:     "CONSTANT",
	Operator:     "OPERATOR",
	LeftBracket:  "LEFT_BRACKET",
	RightBracket: "RIGHT_BRACKET",
	Unknown:      "UNKNOWN",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var _ fmt.Stringer = Kind(0)
