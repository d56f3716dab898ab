package batch_test

import (
	"context"
	"testing"

	"github.com/leonardinius/gocalc/internal/batch"
	"github.com/leonardinius/gocalc/internal/interpreter"
)

func BenchmarkEvaluate(b *testing.B) {
	benchmarks := []string{
		`10 ^ 2 + (7 * 8) + cos(x)`,
		`x^2 - x + 1`,
		`sqrt(abs(sin(x))) * ln(x + 1) / 2`,
	}
	xs := batch.IntRange(1, 10000)

	for _, bench := range benchmarks {
		tmpl := template(b, bench)

		b.Run("SEQ/"+bench, func(b *testing.B) {
			runBenchN(b, batch.NewScheduler(), tmpl, xs)
		})
		b.Run("PAR/"+bench, func(b *testing.B) {
			runBenchN(b, batch.NewScheduler(batch.WithParallel(true)), tmpl, xs)
		})
	}
}

func runBenchN(b *testing.B, s *batch.Scheduler, tmpl *interpreter.Template, xs []float64) {
	b.Helper()
	b.ReportAllocs()

	ctx := context.Background()
	for n := 0; n < b.N; n++ {
		if _, err := s.Evaluate(ctx, tmpl, xs); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
	b.ReportMetric(float64(len(xs)), "samples/op")
}
