package calcerrors

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w     io.Writer
	fatal *color.Color
	error *color.Color
}

// NewErrReporter reports to w. Output is colored only when w is a terminal.
func NewErrReporter(w io.Writer) *errReporter {
	return NewErrReporterColor(w, IsTerminal(w))
}

func NewErrReporterColor(w io.Writer, colored bool) *errReporter {
	fatal := color.New(color.FgRed, color.Bold)
	errc := color.New(color.FgRed)
	if colored {
		fatal.EnableColor()
		errc.EnableColor()
	} else {
		fatal.DisableColor()
		errc.DisableColor()
	}
	return &errReporter{w: w, fatal: fatal, error: errc}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	fmt.Fprintf(e.w, "%s %v\n", e.fatal.Sprint("FATAL"), err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	fmt.Fprintf(e.w, "%s %v\n", e.error.Sprint("ERROR"), err)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ ErrReporter = (*errReporter)(nil)
