package parser

import (
	"fmt"
	"strings"

	"github.com/leonardinius/gocalc/internal/token"
)

// RPN is a token sequence in postfix order.
type RPN []token.Token

// Clone returns an independent copy safe to mutate.
func (r RPN) Clone() RPN {
	if r == nil {
		return nil
	}
	out := make(RPN, len(r))
	copy(out, r)
	return out
}

// String implements fmt.Stringer, e.g. "1 2 3 * +".
func (r RPN) String() string {
	return NewRPNPrinter().Print(r)
}

type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(rpn RPN) string {
	out := new(strings.Builder)
	for i, tok := range rpn {
		if i > 0 {
			_, _ = out.WriteString(" ")
		}
		_, _ = out.WriteString(tok.Text)
	}
	return out.String()
}

var _ fmt.Stringer = RPN(nil)
