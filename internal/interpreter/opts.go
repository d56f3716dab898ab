package interpreter

import (
	"io"
)

type interpreterOpts struct {
	trace io.Writer
}

var defaultInterpreterOpts = interpreterOpts{}

type InterpreterOption func(*interpreterOpts)

// WithTrace writes every applied operator and its result to w, one line per
// Write call. Interpreters sharing w need it to be safe for concurrent use.
func WithTrace(w io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.trace = w
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
