package interpreter

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	StdFnBinary func(a, b float64) float64
	StdFnUnary  func(a float64) float64
)

var stdBinary = map[string]StdFnBinary{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": StdFnDivide,
	"^": math.Pow,
}

var stdUnary = map[string]StdFnUnary{
	"cos":  math.Cos,
	"sin":  math.Sin,
	"tan":  math.Tan,
	"abs":  math.Abs,
	"exp":  math.Exp,
	"ln":   math.Log,
	"log":  math.Log10,
	"sqrt": math.Sqrt,
}

// StdFnDivide is a / b, NaN when b is exactly zero.
func StdFnDivide(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	return a / b
}

// Apply applies the operator named op. Unknown operators and a wrong number of
// arguments yield NaN, which then propagates through the rest of the evaluation.
func Apply(op string, args ...float64) float64 {
	switch len(args) {
	case 2:
		if fn, ok := stdBinary[op]; ok {
			return fn(args[0], args[1])
		}
	case 1:
		if fn, ok := stdUnary[op]; ok {
			return fn(args[0])
		}
	}
	return math.NaN()
}

// StdFunctionNames lists the unary functions the evaluator implements, sorted.
func StdFunctionNames() []string {
	names := maps.Keys(stdUnary)
	slices.Sort(names)
	return names
}
