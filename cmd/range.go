package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/leonardinius/gocalc/internal/batch"
	"github.com/leonardinius/gocalc/internal/config"
	"github.com/leonardinius/gocalc/internal/interpreter"
)

type rangeFlags struct {
	start, end, step float64
	inclusive        bool
	parallel         bool
	trace            bool
	workers          int
	format           string
}

// sample is one evaluated point. Y is nil when the value is NaN or infinite.
type sample struct {
	X float64  `json:"x" msgpack:"x"`
	Y *float64 `json:"y" msgpack:"y"`
}

type rangeReport struct {
	Expression string   `json:"expression" msgpack:"expression"`
	RPN        string   `json:"rpn" msgpack:"rpn"`
	Samples    []sample `json:"samples" msgpack:"samples"`
}

func (app *CalcApp) rangeCommand() *cobra.Command {
	f := &rangeFlags{}

	cmd := &cobra.Command{
		Use:   "range [flags] EXPR",
		Short: "Evaluate an expression over a range of x",
		Long: `Range evaluates EXPR at x = start, start+step, ... below end (or up to end with --inclusive).
Flags that are not set fall back to the [range], [eval] and [output] config sections.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.merge(cmd, app.cfg)
			return app.evalRange(cmd.Context(), args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.start, "start", 0, "first x")
	flags.Float64Var(&f.end, "end", 10, "end of the range")
	flags.Float64Var(&f.step, "step", 1, "distance between samples")
	flags.BoolVar(&f.inclusive, "inclusive", false, "include end")
	flags.BoolVar(&f.parallel, "parallel", false, "evaluate chunks of the range in parallel")
	flags.BoolVar(&f.trace, "trace", false, "write every applied operator to stderr")
	flags.IntVar(&f.workers, "workers", 0, "parallel chunk count, 0 for one per CPU")
	flags.StringVar(&f.format, "format", config.FormatText, "output format (text|json|msgpack)")
	return cmd
}

// merge fills every flag the user did not set from cfg.
func (f *rangeFlags) merge(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("start") {
		f.start = cfg.Range.Start
	}
	if !flags.Changed("end") {
		f.end = cfg.Range.End
	}
	if !flags.Changed("step") {
		f.step = cfg.Range.Step
	}
	if !flags.Changed("inclusive") {
		f.inclusive = cfg.Range.Inclusive
	}
	if !flags.Changed("parallel") {
		f.parallel = cfg.Eval.Parallel
	}
	if !flags.Changed("workers") {
		f.workers = cfg.Eval.Workers
	}
	if !flags.Changed("format") {
		f.format = cfg.Output.Format
	}
}

func (app *CalcApp) evalRange(ctx context.Context, expression string, f *rangeFlags) error {
	app.timings.reset()
	defer app.printTimings()

	c, err := app.compile(expression)
	if err != nil {
		return err
	}

	xs, err := batch.Samples(f.start, f.end, f.step, f.inclusive)
	if err != nil {
		return err
	}

	options := []batch.SchedulerOption{batch.WithParallel(f.parallel), batch.WithWorkers(f.workers)}
	if f.trace {
		options = append(options, batch.WithInterpreterOptions(interpreter.WithTrace(batch.SyncWriter(app.stderr))))
	}
	scheduler := batch.NewScheduler(options...)

	switch f.format {
	case config.FormatText:
		app.timings.track(stageEval, func() {
			err = scheduler.EvaluateFunc(ctx, c.tmpl, xs, func(x, y float64) {
				fmt.Fprintf(app.stdout, "%s\t%s\n", app.format(x), app.format(y))
			})
		})
		return err
	case config.FormatJSON, config.FormatMsgpack:
		var ys []float64
		app.timings.track(stageEval, func() {
			ys, err = scheduler.Evaluate(ctx, c.tmpl, xs)
		})
		if err != nil {
			return err
		}
		return app.writeReport(f.format, newRangeReport(expression, c, xs, ys))
	default:
		return fmt.Errorf("%w unknown format %q", errInvalidArgument, f.format)
	}
}

func newRangeReport(expression string, c *compiled, xs, ys []float64) *rangeReport {
	report := &rangeReport{
		Expression: expression,
		RPN:        c.rpn.String(),
		Samples:    make([]sample, len(xs)),
	}
	for i, x := range xs {
		report.Samples[i].X = x
		if y := ys[i]; !math.IsNaN(y) && !math.IsInf(y, 0) {
			report.Samples[i].Y = &y
		}
	}
	return report
}

func (app *CalcApp) writeReport(format string, report *rangeReport) error {
	if format == config.FormatMsgpack {
		return msgpack.NewEncoder(app.stdout).Encode(report)
	}
	return json.NewEncoder(app.stdout).Encode(report)
}
