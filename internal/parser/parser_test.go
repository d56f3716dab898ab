package parser_test

import (
	"testing"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string // Input
		rpn  string // Expected postfix
		err  string // Expected error
	}{
		{name: `precedence`, in: `1+2*3`, rpn: `1 2 3 * +`},
		{name: `left to right`, in: `8-3-2`, rpn: `8 3 - 2 -`},
		{name: `power is left associative`, in: `2^3^2`, rpn: `2 3 ^ 2 ^`},
		{name: `grouping`, in: `(300+23)*(43-21)/(84+7)`, rpn: `300 23 + 43 21 - * 84 7 + /`},
		{name: `nested functions`, in: `cos(sin(pi/2))`, rpn: `pi 2 / sin cos`},
		{name: `functions and variable`, in: `10 ^ 2 + (7 * 8) + cos(x)`, rpn: `10 2 ^ 7 8 * + x cos +`},
		{name: `function after product`, in: `2*sin(x)`, rpn: `2 x sin *`},
		{name: `function before product`, in: `sin(x)*2`, rpn: `x sin 2 *`},
		{name: `function without brackets`, in: `sin x + 1`, rpn: `x sin 1 +`},
		{name: `function without brackets binds looser than product`, in: `sin x * 2`, rpn: `x 2 * sin`},
		{name: `signed literal`, in: `abs(-2.5)`, rpn: `-2.5 abs`},
		{name: `negated function`, in: `(-sin(pi))`, rpn: `0 pi sin -`},
		{name: `sum of functions`, in: `sqrt(2) + abs(2)`, rpn: `2 sqrt 2 abs +`},
		{name: `unmatched right bracket`, in: `))((`, err: `parse error at ')': malformed expression. expected '(' before ')'`},
		{name: `empty`, in: ``, err: `parse error at end: malformed expression. expected expression`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := scanner.NewScanner(tc.in).Scan()
			require.NoError(t, err)

			rpn, err := parser.NewParser(tokens).Parse()
			if tc.err != "" {
				assert.ErrorIs(t, err, calcerrors.ErrMalformedExpression)
				assert.EqualError(t, err, tc.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.rpn, rpn.String())
			}
		})
	}
}

func TestParseKeepsOperandTokens(t *testing.T) {
	t.Parallel()

	tokens, err := scanner.NewScanner("x*x").Scan()
	require.NoError(t, err)

	rpn, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)
	require.Len(t, rpn, 3)

	assert.Equal(t, token.Unknown, rpn[0].Kind)
	assert.Equal(t, token.Unknown, rpn[1].Kind)
	assert.NotEqual(t, rpn[0].Span, rpn[1].Span)

	// tokens are values: rebinding one occurrence leaves the others alone
	clone := rpn.Clone()
	clone[0] = clone[0].Bind(3)
	assert.False(t, rpn[0].Resolved)
	assert.False(t, clone[1].Resolved)
}

func TestParseUnclosedBracket(t *testing.T) {
	t.Parallel()

	// unbalanced input: the scanner reports it and still returns tokens
	tokens, scanErr := scanner.NewScanner("(1+2").Scan()
	require.ErrorIs(t, scanErr, calcerrors.ErrUnbalancedBrackets)

	_, err := parser.NewParser(tokens).Parse()
	assert.ErrorIs(t, err, calcerrors.ErrMalformedExpression)
	assert.ErrorContains(t, err, "parse error at '(': malformed expression. expected ')' after expression")
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	op := func(text string) token.Token {
		return token.NewToken(token.Operator, token.Span{}, text)
	}
	assert.Equal(t, 100, parser.Precedence(op("*")))
	assert.Equal(t, 100, parser.Precedence(op("/")))
	assert.Equal(t, 100, parser.Precedence(op("^")))
	assert.Equal(t, 1, parser.Precedence(op("+")))
	assert.Equal(t, 1, parser.Precedence(op("-")))
	assert.Equal(t, 10, parser.Precedence(op("sin")))
	assert.Equal(t, 10, parser.Precedence(op("sqrt")))
}
