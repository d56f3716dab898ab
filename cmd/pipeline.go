package cmd

import (
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

// sourceError ties an error to the normalized expression its spans point into.
type sourceError struct {
	source string
	err    error
}

func (e *sourceError) Error() string {
	return e.err.Error()
}

func (e *sourceError) Unwrap() error {
	return e.err
}

type compiled struct {
	source string
	tokens []token.Token
	rpn    parser.RPN
	tmpl   *interpreter.Template
}

// compile runs the scan, convert and reduce stages, recording their durations.
// On error the returned compiled holds whatever the finished stages produced.
func (app *CalcApp) compile(expression string) (*compiled, error) {
	s := scanner.NewScanner(expression)
	c := &compiled{source: s.Source()}

	var err error
	app.timings.track(stageScan, func() {
		c.tokens, err = s.Scan()
	})
	if err != nil {
		return c, &sourceError{c.source, err}
	}

	app.timings.track(stageConvert, func() {
		c.rpn, err = parser.NewParser(c.tokens).Parse()
	})
	if err != nil {
		return c, &sourceError{c.source, err}
	}

	app.timings.track(stageReduce, func() {
		c.tmpl, err = interpreter.Reduce(c.rpn)
	})
	if err != nil {
		return c, &sourceError{c.source, err}
	}
	return c, nil
}

// evaluate evaluates the template once, with x bound when at is set.
func (c *compiled) evaluate(timings *stageTimings, at *float64) (float64, error) {
	var value float64
	var err error
	timings.track(stageEval, func() {
		if at == nil {
			value, err = interpreter.NewInterpreter().Evaluate(c.tmpl.RPN())
		} else {
			value, err = c.tmpl.Evaluate(*at)
		}
	})
	if err != nil {
		return 0, &sourceError{c.source, err}
	}
	return value, nil
}
