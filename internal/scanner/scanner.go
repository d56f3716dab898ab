package scanner

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Scanner turns an infix expression into tokens ordered by position.
type Scanner interface {
	// Scan returns the tokens and an error if any.
	// Unbalanced brackets and unexpected characters are reported together with the
	// best-effort token list; only a broken keyword table returns no tokens.
	Scan() ([]token.Token, error)

	// Source is the normalized expression the token spans point into.
	Source() string
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
	errs           []error
}

var lower = cases.Lower(language.Und)

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	source, bracketErr := normalize(input)
	s := &scanner{source: []rune(source)}
	if bracketErr != nil {
		s.errs = append(s.errs, bracketErr)
	}
	return s
}

// Normalize returns the expression exactly as the scanner sees it: trimmed,
// lower-cased and wrapped in one outer bracket pair.
func Normalize(input string) string {
	source, _ := normalize(input)
	return source
}

func normalize(input string) (string, error) {
	source := lower.String(strings.TrimSpace(input))

	open, close := strings.Count(source, "("), strings.Count(source, ")")
	if open != close {
		return source, calcerrors.NewBracketError(open, close)
	}

	if !isWrapped(source) {
		source = "(" + source + ")"
	}
	return source, nil
}

// isWrapped reports whether the opening bracket at the start closes at the very end.
func isWrapped(source string) bool {
	if !strings.HasPrefix(source, "(") || !strings.HasSuffix(source, ")") {
		return false
	}
	depth := 0
	for i, r := range source {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(source)-1
			}
		}
	}
	return false
}

// Source implements Scanner.
func (s *scanner) Source() string {
	return string(s.source)
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	if keywordsErr != nil {
		return nil, keywordsErr
	}

	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	return s.tokens, errors.Join(s.errs...)
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LeftBracket)
	case ')':
		s.addToken(token.RightBracket)
	case '+', '-':
		s.sign()
	case '*', '/', '^':
		s.addToken(token.Operator)
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.word()
		} else {
			s.reportUnexpectedCharacter(s.start, c)
		}
	}
}

// sign handles '+' and '-'. Right after '(' a sign followed by digits is part of
// the number; any other operand after '(' gets an implicit 0 on its left.
func (s *scanner) sign() {
	if !s.afterLeftBracket() {
		s.addToken(token.Operator)
		return
	}

	if isDigit(s.peek()) {
		s.advance()
		s.number()
		return
	}

	s.tokens = append(s.tokens, token.NewValueToken(token.Number, token.Span{Start: s.start, End: s.start}, "0", 0))
	s.addToken(token.Operator)
}

func (s *scanner) afterLeftBracket() bool {
	if len(s.tokens) == 0 {
		return false
	}
	return s.tokens[len(s.tokens)-1].Kind == token.LeftBracket
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) addToken(kind token.Kind) {
	s.tokens = append(s.tokens, token.NewToken(kind, s.span(), s.lexeme()))
}

func (s *scanner) addTokenValue(kind token.Kind, value float64) {
	s.tokens = append(s.tokens, token.NewValueToken(kind, s.span(), s.lexeme(), value))
}

func (s *scanner) span() token.Span {
	return token.Span{Start: s.start, End: s.current}
}

func (s *scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

func (s *scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' || s.peek() == ',' {
		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := strings.Replace(s.lexeme(), ",", ".", 1)
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		s.errs = append(s.errs, calcerrors.NewScanError(s.start, err, strconv.Quote(s.lexeme())))
		return
	}
	s.addTokenValue(token.Number, value)
}

// word splits a run of letters into keywords, longest match first.
func (s *scanner) word() {
	for isAlpha(s.peek()) {
		s.advance()
	}

	end := s.current
	for pos := s.start; pos < end; {
		kw, ok := matchKeyword(keywords, s.source[pos:end])
		if !ok {
			s.reportUnexpectedCharacter(pos, s.source[pos])
			pos++
			continue
		}

		s.start, s.current = pos, pos+len(kw.text)
		if kw.kind == token.Constant {
			s.addTokenValue(kw.kind, kw.value)
		} else {
			s.addToken(kw.kind)
		}
		pos = s.current
	}
	s.current = end
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func (s *scanner) reportUnexpectedCharacter(pos int, c rune) {
	s.errs = append(s.errs, calcerrors.NewScanError(pos, calcerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c)))
}

var _ Scanner = (*scanner)(nil)
