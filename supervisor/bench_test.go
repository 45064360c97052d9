package supervisor_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/supervisor"
)

// BenchmarkRun measures one lock-step run around the border of a
// 500×500 grid (1996 cells, 998 rounds).
func BenchmarkRun(b *testing.B) {
	g := rectangle(b, 500, 500)
	s := supervisor.New()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(ctx, g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTraceLoop is the sequential baseline for BenchmarkRun.
func BenchmarkTraceLoop(b *testing.B) {
	g := rectangle(b, 500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.TraceLoop(pipegrid.Coordinate{}); err != nil {
			b.Fatal(err)
		}
	}
}
