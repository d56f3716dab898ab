package cmd

import (
	"fmt"
	"io"
	"time"
)

type stage int

const (
	stageScan stage = iota
	stageConvert
	stageReduce
	stageEval
	stageCount
)

var stageNames = [stageCount]string{"scanned", "converted", "reduced", "evaluated"}

type stageTimings struct {
	durations [stageCount]time.Duration
	has       [stageCount]bool
}

func newStageTimings() *stageTimings {
	return &stageTimings{}
}

func (t *stageTimings) track(s stage, fn func()) {
	start := time.Now()
	fn()
	t.durations[s] += time.Since(start)
	t.has[s] = true
}

func (t *stageTimings) reset() {
	*t = stageTimings{}
}

func printStageTimings(out io.Writer, timings *stageTimings) {
	for s := range stageCount {
		if timings.has[s] {
			fmt.Fprintf(out, "%s %.3f ms\n", stageNames[s], toMillis(timings.durations[s]))
		}
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
