package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leonardinius/gocalc/expr"
)

var benchExpressions = []string{
	"3+4*5/6",
	"(300+23)*(43-21)/(84+7)",
	"(4+8)*(6-5)/((3-2)*(2+2))",
	"((10 * 2) + (4 - 5)) / 2",
	"(7 / 3) / ((1 - 4) * 2) + 1",
	"cos(sin(pi/2))",
	"sqrt(2) + abs(2)",
	"ln(e) + sin(pi/2)",
	"cos(x)",
	"10 ^ 2 + (7 * 8) + cos(x)",
	"1234769.1234*1238746-1234*(12^2)",
	"abs(-2.5)",
}

// benchInterval is the range every bench run sweeps.
var benchInterval = expr.Interval{Start: -1, End: 1, Step: 0.001, Inclusive: true}

func (app *CalcApp) benchCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Evaluate the demo expressions and time a range sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.bench(cmd.Context(), quiet)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "do not print durations")
	return cmd
}

func (app *CalcApp) bench(ctx context.Context, quiet bool) error {
	for _, expression := range benchExpressions {
		e, err := expr.Compile(expression)
		if err != nil {
			return err
		}
		value, err := e.EvalAt(0)
		if err != nil {
			return err
		}
		fmt.Fprintf(app.stdout, "%s = %s\n", expression, app.format(value))
	}

	sweep := benchExpressions[9]
	start := time.Now()
	tokens, err := expr.Parse(sweep)
	if err != nil {
		return err
	}
	rpn, err := expr.ToRPN(tokens)
	if err != nil {
		return err
	}
	parsed := time.Since(start)
	if !quiet {
		fmt.Fprintf(app.stdout, "parsed %s in %.3f ms\n", sweep, toMillis(parsed))
	}

	for _, parallel := range []bool{false, true} {
		samples := 0
		start := time.Now()
		err := expr.EvaluateOverIntervalFunc(ctx, rpn, benchInterval, parallel, func(_, _ float64) {
			samples++
		})
		if err != nil {
			return err
		}

		mode := "sequential"
		if parallel {
			mode = "parallel"
		}
		fmt.Fprintf(app.stdout, "%s %s: %d samples", mode, benchInterval, samples)
		if !quiet {
			fmt.Fprintf(app.stdout, " in %.3f ms", toMillis(time.Since(start)))
		}
		fmt.Fprintln(app.stdout)
	}
	return nil
}
