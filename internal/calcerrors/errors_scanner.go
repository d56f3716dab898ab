package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	ErrUnbalancedBrackets      = errors.New("unbalanced brackets in the expression.")
	ErrPatternCompile          = errors.New("invalid lexical pattern.")
	ErrScanUnexpectedCharacter = errors.New("unexpected character.")
)

type ScannerError struct {
	pos     int
	cause   error
	details string
}

func NewScanError(pos int, cause error, details string) *ScannerError {
	return &ScannerError{pos, cause, details}
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[pos %d] syntax error: %v%s", s.pos, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

// Span implements Spanned.
func (s *ScannerError) Span() token.Span {
	return token.Span{Start: s.pos, End: s.pos + 1}
}

// BracketError reports an expression whose '(' and ')' counts differ.
// It is not fatal: the scanner still returns its best-effort tokens alongside it.
type BracketError struct {
	Open, Close int
}

func NewBracketError(open, close int) *BracketError {
	return &BracketError{Open: open, Close: close}
}

// Error implements error.
func (b *BracketError) Error() string {
	return fmt.Sprintf("syntax error: %v %s", ErrUnbalancedBrackets, b.Reason())
}

func (b *BracketError) Unwrap() error {
	return ErrUnbalancedBrackets
}

// Description is the short human-readable summary.
func (b *BracketError) Description() string {
	return "Unbalanced brackets in the expression."
}

// Reason says which side is missing.
func (b *BracketError) Reason() string {
	switch {
	case b.Open > b.Close:
		return fmt.Sprintf("Missing %d closing bracket(s).", b.Open-b.Close)
	case b.Close > b.Open:
		return fmt.Sprintf("Missing %d opening bracket(s).", b.Close-b.Open)
	}
	return "Brackets are balanced."
}

func (b *BracketError) Suggestion() string {
	return "Please check if the expression is correct and contains all the brackets."
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
var _ Spanned = (*ScannerError)(nil)
var _ error = (*BracketError)(nil)
var _ unwrapInterface = (*BracketError)(nil)
