package expr

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/batch"
)

// Interval describes the samples Start, Start+Step, Start+2*Step, ... below End,
// or up to and including End when Inclusive is set.
type Interval struct {
	Start     float64
	End       float64
	Step      float64
	Inclusive bool
}

// Samples materializes the x values of the interval.
func (i Interval) Samples() ([]float64, error) {
	return batch.Samples(i.Start, i.End, i.Step, i.Inclusive)
}

// String implements fmt.Stringer.
func (i Interval) String() string {
	closing := ")"
	if i.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("[%v, %v%s step %v", i.Start, i.End, closing, i.Step)
}

var _ fmt.Stringer = Interval{}
