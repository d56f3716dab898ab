package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/config"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
)

var errInvalidArgument = errors.New("invalid argument.")

type CalcApp struct {
	err         error
	stdout      io.Writer
	stderr      io.Writer
	reporter    calcerrors.ErrReporter
	cfg         config.Config
	timings     *stageTimings
	showTimings bool
}

type AppOption func(*CalcApp)

func WithStdout(w io.Writer) AppOption {
	return func(app *CalcApp) {
		app.stdout = w
	}
}

func WithStderr(w io.Writer) AppOption {
	return func(app *CalcApp) {
		app.stderr = w
	}
}

func NewCalcApp(options ...AppOption) *CalcApp {
	app := &CalcApp{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		cfg:     config.Default(),
		timings: newStageTimings(),
	}
	for _, opt := range options {
		opt(app)
	}
	app.reporter = calcerrors.NewErrReporter(app.stderr)
	return app
}

func (app *CalcApp) reportError(err error) {
	app.reporter.ReportError(err)

	var srcErr *sourceError
	if errors.As(err, &srcErr) {
		if caret := calcerrors.Caret(srcErr.source, srcErr.err); caret != "" {
			fmt.Fprintln(app.stderr, caret)
		}
	}
	app.err = err
}

func (app *CalcApp) resetError() {
	app.err = nil
}

// Main runs the command line and returns the process exit code.
func (app *CalcApp) Main(args []string) int {
	root := app.rootCommand()
	root.SetArgs(args)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		app.reportError(err)
	}

	switch {
	case app.err == nil:
		return exitOK
	case isExpressionError(app.err):
		return exitDataErr
	default:
		return exitUsage
	}
}

func isExpressionError(err error) bool {
	for _, target := range []error{
		calcerrors.ErrMalformedExpression,
		calcerrors.ErrUnbalancedBrackets,
		calcerrors.ErrScanUnexpectedCharacter,
		calcerrors.ErrPatternCompile,
		calcerrors.ErrInvalidRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (app *CalcApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      app.cfg.REPL.Prompt,
		HistoryFile: app.cfg.REPL.History,
		Stdout:      app.stdout,
		Stderr:      app.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		if err := app.runLine(line); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

// runFile evaluates every line of a script. Blank lines and lines starting
// with '#' are skipped; a failing line is reported and the rest still runs.
func (app *CalcApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := app.runLine(line); err != nil {
			app.reportError(err)
		}
	}
	return nil
}

// runLine evaluates "EXPR" or "EXPR @ N", the latter with x bound to N.
func (app *CalcApp) runLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	expression, at, err := splitAt(line)
	if err != nil {
		return err
	}
	return app.eval(expression, at)
}

func splitAt(line string) (string, *float64, error) {
	i := strings.LastIndex(line, "@")
	if i < 0 {
		return line, nil, nil
	}

	text := strings.TrimSpace(line[i+1:])
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", nil, fmt.Errorf("%w value for x must be a number, got %q", errInvalidArgument, text)
	}
	return strings.TrimSpace(line[:i]), &x, nil
}

func (app *CalcApp) eval(expression string, at *float64) error {
	app.timings.reset()
	defer app.printTimings()

	c, err := app.compile(expression)
	if err != nil {
		return err
	}

	value, err := c.evaluate(app.timings, at)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, app.format(value))
	return nil
}

func (app *CalcApp) format(value float64) string {
	return strconv.FormatFloat(value, 'g', app.cfg.Output.Precision, 64)
}

func (app *CalcApp) printTimings() {
	if app.showTimings {
		printStageTimings(app.stderr, app.timings)
	}
}
