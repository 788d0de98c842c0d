package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkGraph_Edges measures the cost of a deep-copy snapshot.
func BenchmarkGraph_Edges(b *testing.B) {
	const n = 1000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%n), int64(i))
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+7)%n), int64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
