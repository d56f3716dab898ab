package batch

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"github.com/leonardinius/gocalc/internal/calcerrors"
)

// MaxSamples bounds how many x values a single range may materialize.
const MaxSamples = 1 << 24

// inclusiveTolerance absorbs float drift at the end point, as a fraction of step.
const inclusiveTolerance = 1e-9

// Samples materializes x_i = start + i*step for every x_i below end, or up to
// and including end when inclusive is set.
func Samples(start, end, step float64, inclusive bool) ([]float64, error) {
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return nil, calcerrors.ErrInvalidRangeBounds(start, end)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, calcerrors.ErrInvalidRangeStep(step)
	}

	limit := end
	if inclusive {
		limit += step * inclusiveTolerance
	}
	if start > limit || (!inclusive && start >= end) {
		return []float64{}, nil
	}

	count, err := safecast.Convert[int](math.Floor((limit-start)/step) + 1)
	if err != nil || count > MaxSamples {
		return nil, fmt.Errorf("%w too many samples in [%v, %v] with step %v", calcerrors.ErrInvalidRange, start, end, step)
	}

	// a step below the float spacing at start makes x stall, so count bounds the loop
	xs := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		x := start + float64(i)*step
		if x > limit || (!inclusive && x >= end) {
			break
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// IntRange returns the integers of [start, end) as float64 values.
func IntRange(start, end int) []float64 {
	if end <= start {
		return []float64{}
	}
	xs := make([]float64, 0, end-start)
	for i := start; i < end; i++ {
		xs = append(xs, float64(i))
	}
	return xs
}
