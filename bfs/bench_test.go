package bfs_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/bfs"
)

// BenchmarkBFS_Grid measures BFS on a 100×100 lattice.
func BenchmarkBFS_Grid(b *testing.B) {
	g := quadGrid(b, 100, 100)
	start := g.Node(0)

	b.ReportAllocs()
	b.SetBytes(int64(g.Size() + g.NumEdges()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

// BenchmarkStoreLengths includes the nearest-node scan.
func BenchmarkStoreLengths(b *testing.B) {
	g := quadGrid(b, 100, 100)
	p := r3.Vec{X: 0.5, Y: 0.5}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.StoreLengths(g, p)
	}
}
