package batch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leonardinius/gocalc/internal/interpreter"
)

// Scheduler evaluates one template over many x values, sequentially or split
// into contiguous chunks evaluated in parallel. Results always follow input order.
type Scheduler struct {
	opts *schedulerOpts
}

func NewScheduler(options ...SchedulerOption) *Scheduler {
	return &Scheduler{opts: newSchedulerOpts(options...)}
}

// Workers returns the number of chunks a parallel run is split into.
func (s *Scheduler) Workers() int {
	return s.opts.workers
}

// Parallel reports whether Evaluate splits the work across goroutines.
func (s *Scheduler) Parallel() bool {
	return s.opts.parallel
}

// String implements fmt.Stringer.
func (s *Scheduler) String() string {
	return fmt.Sprintf("scheduler{workers: %d, parallel: %t}", s.opts.workers, s.opts.parallel)
}

// Evaluate returns tmpl evaluated at every x, in the order of xs.
// NaN results are values, not errors; an error means the template is malformed.
func (s *Scheduler) Evaluate(ctx context.Context, tmpl *interpreter.Template, xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return []float64{}, nil
	}

	if !s.opts.parallel {
		return s.sequential(tmpl, xs)
	}
	return s.chunked(ctx, tmpl, xs)
}

// EvaluateFunc calls onSample for every (x, y) in the order of xs. In parallel
// mode all chunks finish before the first callback.
func (s *Scheduler) EvaluateFunc(ctx context.Context, tmpl *interpreter.Template, xs []float64, onSample func(x, y float64)) error {
	if !s.opts.parallel {
		b := tmpl.Binder(s.opts.interp...)
		for _, x := range xs {
			y, err := b.Evaluate(x)
			if err != nil {
				return err
			}
			onSample(x, y)
		}
		return nil
	}

	ys, err := s.chunked(ctx, tmpl, xs)
	if err != nil {
		return err
	}
	for i, x := range xs {
		onSample(x, ys[i])
	}
	return nil
}

func (s *Scheduler) sequential(tmpl *interpreter.Template, xs []float64) ([]float64, error) {
	b := tmpl.Binder(s.opts.interp...)
	values := make([]float64, 0, len(xs))
	for _, x := range xs {
		y, err := b.Evaluate(x)
		if err != nil {
			return nil, err
		}
		values = append(values, y)
	}
	return values, nil
}

func (s *Scheduler) chunked(ctx context.Context, tmpl *interpreter.Template, xs []float64) ([]float64, error) {
	values := make([]float64, len(xs))
	if len(xs) == 0 {
		return values, nil
	}

	// chunks write disjoint ranges; the lock only guards against a partition bug
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)

	for _, c := range partition(len(xs), s.opts.workers) {
		if c.len() == 0 {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			b := tmpl.Binder(s.opts.interp...)
			partial := make([]float64, c.len())
			for i, x := range xs[c.start:c.end] {
				y, err := b.Evaluate(x)
				if err != nil {
					return err
				}
				partial[i] = y
			}

			mu.Lock()
			copy(values[c.start:c.end], partial)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

// chunk is the index range [start, end) of xs one task evaluates.
type chunk struct {
	start, end int
}

func (c chunk) len() int {
	return c.end - c.start
}

// partition splits n items into workers contiguous chunks of n/workers items;
// the last chunk also takes the remainder.
func partition(n, workers int) []chunk {
	if workers < 1 {
		workers = 1
	}

	size := n / workers
	chunks := make([]chunk, workers)
	for i := range chunks {
		chunks[i] = chunk{start: i * size, end: (i + 1) * size}
	}
	chunks[workers-1].end = n
	return chunks
}

var _ fmt.Stringer = (*Scheduler)(nil)
