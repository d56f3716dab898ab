package interpreter_test

import (
	"math"
	"strings"
	"testing"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, expression string) parser.RPN {
	t.Helper()

	tokens, err := scanner.NewScanner(expression).Scan()
	require.NoError(t, err)

	rpn, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)
	return rpn
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string  // Input
		eval float64 // Expected eval
	}{
		{name: `precedence`, in: `1+2*3`, eval: 7},
		{name: `mixed`, in: `3+4*5/6`, eval: 3 + 20.0/6},
		{name: `grouping`, in: `(300+23)*(43-21)/(84+7)`, eval: 7106.0 / 91},
		{name: `nested grouping`, in: `(4+8)*(6-5)/((3-2)*(2+2))`, eval: 3},
		{name: `spaces`, in: `((10 * 2) + (4 - 5)) / 2`, eval: 9.5},
		{name: `negative divisor`, in: `(7 / 3) / ((1 - 4) * 2) + 1`, eval: 7.0/3/-6 + 1},
		{name: `nested functions`, in: `cos(sin(pi/2))`, eval: math.Cos(1)},
		{name: `function sum`, in: `sqrt(2) + abs(2)`, eval: math.Sqrt2 + 2},
		{name: `constants`, in: `ln(e) + sin(pi/2)`, eval: 2},
		{name: `large numbers`, in: `1234769.1234*1238746-1234*(12^2)`, eval: 1529565134839.2563},
		{name: `signed literal`, in: `abs(-2.5)`, eval: 2.5},
		{name: `power left associative`, in: `2^3^2`, eval: 64},
		{name: `base ten log`, in: `log(100)`, eval: 2},
		{name: `exp`, in: `exp(1)`, eval: math.E},
		{name: `tan`, in: `tan(0)`, eval: 0},
		{name: `function times`, in: `2*sin(pi/2)`, eval: 2},
		{name: `negated function`, in: `(-cos(0))`, eval: -1},
		{name: `decimal comma`, in: `1,5*2`, eval: 3},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := interpreter.NewInterpreter().Evaluate(compile(t, tc.in))
			require.NoError(t, err)
			assert.InDelta(t, tc.eval, value, 1e-9*math.Max(1, math.Abs(tc.eval)))
		})
	}
}

func TestEvaluateNaN(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`1/0`, `(1/0)+5`, `sqrt(-1)`, `2*(0/0)`} {
		t.Run(in, func(t *testing.T) {
			value, err := interpreter.NewInterpreter().Evaluate(compile(t, in))
			require.NoError(t, err)
			assert.True(t, math.IsNaN(value), "expected NaN, got %v", value)
		})
	}

	// unknown operator text evaluates to NaN
	rpn := parser.RPN{
		token.NewValueToken(token.Number, token.Span{}, "1", 1),
		token.NewToken(token.Operator, token.Span{}, "log10"),
	}
	value, err := interpreter.NewInterpreter().Evaluate(rpn)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(value))
}

func TestEvaluateMalformed(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		rpn  parser.RPN
		err  error
		msg  string
	}{
		{name: `unary minus outside brackets`, rpn: compile(t, `3 - -2`), err: calcerrors.ErrEvalMissingOperand, msg: `evaluation error at '-': malformed expression. operator is missing an operand`},
		{name: `unbound`, rpn: compile(t, `x+1`), err: calcerrors.ErrUnboundVariable, msg: `evaluation error at 'x': malformed expression. unbound variable`},
		{name: `dangling`, rpn: compile(t, `(1)(2)`), err: calcerrors.ErrEvalDanglingOperands, msg: `evaluation error: malformed expression. operands left without an operator`},
		{name: `empty`, rpn: parser.RPN{}, err: calcerrors.ErrParseEmptyExpression},
		{name: `bracket`, rpn: parser.RPN{token.NewToken(token.LeftBracket, token.Span{}, "(")}, err: calcerrors.ErrEvalUnexpectedToken},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interpreter.NewInterpreter().Evaluate(tc.rpn)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, calcerrors.ErrMalformedExpression)
			if tc.msg != "" {
				assert.EqualError(t, err, tc.msg)
			}
		})
	}
}


func TestEvaluateAtDoesNotMutate(t *testing.T) {
	t.Parallel()

	rpn := compile(t, `x*x + cos(x)`)
	snapshot := rpn.Clone()

	interp := interpreter.NewInterpreter()
	for _, x := range []float64{-2, 0, 0.5, 3} {
		value, err := interp.EvaluateAt(rpn, x)
		require.NoError(t, err)
		assert.InDelta(t, x*x+math.Cos(x), value, 1e-12)
	}
	assert.Equal(t, snapshot, rpn)
}

func TestEvaluateTrace(t *testing.T) {
	t.Parallel()

	out := new(strings.Builder)
	value, err := interpreter.NewInterpreter(interpreter.WithTrace(out)).Evaluate(compile(t, `1+2*3`))
	require.NoError(t, err)
	assert.Equal(t, 7.0, value)
	assert.Equal(t, "* 2 3 = 6\n+ 1 6 = 7\n", out.String())
}

func TestStdTablesMatchScanner(t *testing.T) {
	t.Parallel()

	assert.Equal(t, scanner.FunctionNames(), interpreter.StdFunctionNames())
}

func TestApply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, interpreter.Apply("+", 2, 3))
	assert.Equal(t, 8.0, interpreter.Apply("^", 2, 3))
	assert.Equal(t, 2.0, interpreter.Apply("ln", math.E*math.E))
	assert.True(t, math.IsNaN(interpreter.Apply("/", 1, 0)))
	assert.True(t, math.IsNaN(interpreter.Apply("sin", 1, 2)))
	assert.True(t, math.IsNaN(interpreter.Apply("nope", 1)))
}
