package batch

import (
	"runtime"

	"github.com/leonardinius/gocalc/internal/interpreter"
)

type schedulerOpts struct {
	workers  int
	parallel bool
	interp   []interpreter.InterpreterOption
}

var defaultSchedulerOpts = schedulerOpts{
	workers: runtime.NumCPU(),
}

type SchedulerOption func(*schedulerOpts)

// WithWorkers sets the number of parallel chunks. Values below 1 keep the
// logical CPU count.
func WithWorkers(workers int) SchedulerOption {
	return func(opts *schedulerOpts) {
		if workers > 0 {
			opts.workers = workers
		}
	}
}

func WithParallel(parallel bool) SchedulerOption {
	return func(opts *schedulerOpts) {
		opts.parallel = parallel
	}
}

// WithInterpreterOptions configures the interpreter every chunk evaluates with.
// In parallel mode chunks share these options, so a trace writer must be safe
// for concurrent use; wrap it with SyncWriter.
func WithInterpreterOptions(options ...interpreter.InterpreterOption) SchedulerOption {
	return func(opts *schedulerOpts) {
		opts.interp = append(opts.interp, options...)
	}
}

func newSchedulerOpts(options ...SchedulerOption) *schedulerOpts {
	opts := defaultSchedulerOpts
	opts.interp = nil
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
