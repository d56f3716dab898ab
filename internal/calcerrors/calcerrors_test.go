package calcerrors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChains(t *testing.T) {
	t.Parallel()

	tok := token.NewToken(token.Operator, token.Span{Start: 2, End: 3}, "+")
	testcases := []struct {
		name     string
		err      error
		target   error
		expected string
	}{
		{"scan", calcerrors.NewScanError(4, calcerrors.ErrScanUnexpectedCharacter, "'#'"), calcerrors.ErrScanUnexpectedCharacter, "[pos 4] syntax error: unexpected character. '#'"},
		{"brackets", calcerrors.NewBracketError(2, 1), calcerrors.ErrUnbalancedBrackets, "syntax error: unbalanced brackets in the expression. Missing 1 closing bracket(s)."},
		{"parse", calcerrors.NewParseError(&tok, calcerrors.ErrParseUnmatchedRightBracket), calcerrors.ErrMalformedExpression, "parse error at '+': malformed expression. expected '(' before ')'"},
		{"parse at end", calcerrors.NewParseError(nil, calcerrors.ErrParseUnclosedLeftBracket), calcerrors.ErrMalformedExpression, "parse error at end: malformed expression. expected ')' after expression"},
		{"eval", calcerrors.NewEvalError(&tok, calcerrors.ErrEvalMissingOperand), calcerrors.ErrMalformedExpression, "evaluation error at '+': malformed expression. operator is missing an operand"},
		{"unbound", calcerrors.NewEvalError(nil, calcerrors.ErrUnboundVariable), calcerrors.ErrMalformedExpression, "evaluation error: malformed expression. unbound variable"},
		{"range", calcerrors.ErrInvalidRangeStep(0), calcerrors.ErrInvalidRange, "invalid range. step must be a positive finite number, got 0"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.target)
			assert.EqualError(t, tc.err, tc.expected)
		})
	}
}

func TestBracketErrorTriad(t *testing.T) {
	t.Parallel()

	err := calcerrors.NewBracketError(1, 3)
	assert.Equal(t, "Unbalanced brackets in the expression.", err.Description())
	assert.Equal(t, "Missing 2 opening bracket(s).", err.Reason())
	assert.NotEmpty(t, err.Suggestion())

	var target *calcerrors.BracketError
	require.True(t, errors.As(errors.Join(errors.New("other"), err), &target))
	assert.Equal(t, 3, target.Close)
}

func TestCaret(t *testing.T) {
	t.Parallel()

	tok := token.NewToken(token.Operator, token.Span{Start: 3, End: 6}, "sin")
	out := calcerrors.Caret("(1+sin)", calcerrors.NewEvalError(&tok, calcerrors.ErrEvalMissingOperand))
	assert.Equal(t, "(1+sin)\n   ^^^", out)

	out = calcerrors.Caret("(ü#)", calcerrors.NewScanError(2, calcerrors.ErrScanUnexpectedCharacter, ""))
	assert.Equal(t, "(ü#)\n  ^", out)

	assert.Empty(t, calcerrors.Caret("(1)", errors.New("plain")))
	assert.Empty(t, calcerrors.Caret("(1)", calcerrors.NewParseError(nil, calcerrors.ErrParseUnclosedLeftBracket)))
}

func TestReporter(t *testing.T) {
	t.Parallel()

	out := new(strings.Builder)
	r := calcerrors.NewErrReporter(out)
	r.ReportError(errors.New("boom"))
	r.ReportPanic(errors.New("bang"))

	assert.Equal(t, "ERROR boom\nFATAL bang\n", out.String())
}
