package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	ErrMalformedExpression = errors.New("malformed expression.")

	ErrParseUnmatchedRightBracket = fmt.Errorf("%w expected '(' before ')'", ErrMalformedExpression)
	ErrParseUnclosedLeftBracket   = fmt.Errorf("%w expected ')' after expression", ErrMalformedExpression)
	ErrParseEmptyExpression       = fmt.Errorf("%w expected expression", ErrMalformedExpression)
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok != nil {
		where = fmt.Sprintf("at '%s'", p.tok.Text)
	}
	return fmt.Sprintf("parse error %s: %v", where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

// Span implements Spanned.
func (p *ParserError) Span() token.Span {
	if p.tok == nil {
		return token.Span{Start: -1, End: -1}
	}
	return p.tok.Span
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
var _ Spanned = (*ParserError)(nil)
