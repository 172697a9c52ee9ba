// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// BenchmarkAddNode measures amortized node appends.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph[int, float64]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddNode(r3.Vec{X: float64(i)})
	}
}

// BenchmarkAddEdge_Chain measures AddEdge on a growing path (short lists).
func BenchmarkAddEdge_Chain(b *testing.B) {
	g := core.NewGraph[int, float64](core.WithCapacity(b.N + 1))
	prev := g.AddNode(r3.Vec{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next := g.AddNode(r3.Vec{X: float64(i + 1)})
		g.AddEdge(prev, next)
		prev = next
	}
}

// BenchmarkEdges measures a full canonical edge pass over a 100×100 grid.
func BenchmarkEdges(b *testing.B) {
	g := gridGraph(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range g.Edges() {
			n++
		}
		if n != g.NumEdges() {
			b.Fatalf("visited %d edges, want %d", n, g.NumEdges())
		}
	}
}

// BenchmarkRemoveNode measures swap-compaction on a grid, rebuilding it
// outside the timer when it runs empty.
func BenchmarkRemoveNode(b *testing.B) {
	g := gridGraph(b, 50, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.Size() == 0 {
			b.StopTimer()
			g = gridGraph(b, 50, 50)
			b.StartTimer()
		}
		g.RemoveNode(g.Node(g.Size() / 2))
	}
}
