// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade over the container.
// Policy:
//   - No mutation here; Stats is a pure scan.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; rely on it for diagnostics and CLI output.

package core

import "gonum.org/v1/gonum/spatial/r3"

// GraphStats is a value snapshot of a graph's size and shape.
type GraphStats struct {
	NodeCount   int
	EdgeCount   int
	MinDegree   int     // 0 for an empty graph
	MaxDegree   int     // 0 for an empty graph
	MeanDegree  float64 // 2·EdgeCount / NodeCount, 0 for an empty graph
	Isolated    int     // nodes with degree 0
	TotalLength float64 // sum of Edge.Length over logical edges
	Components  int
}

// Stats produces a deterministic, read-only snapshot of counts and degree
// statistics.
//
// Implementation:
//   - Stage 1: One pass over nodes for degree extrema and isolated count.
//   - Stage 2: One pass over canonical adjacency slots for total edge length.
//   - Stage 3: NumComponents for connectivity.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V+E), Space O(V) for the component scan.
//
// AI-Hints:
//   - MeanDegree is exact (2E/V) and needs no second scan.
func (g *Graph[V, E]) Stats() *GraphStats {
	s := &GraphStats{NodeCount: len(g.nodes), EdgeCount: g.numEdges}
	if s.NodeCount == 0 {
		return s
	}

	s.MinDegree = len(g.adj[0])
	for id, list := range g.adj {
		d := len(list)
		s.MinDegree = min(s.MinDegree, d)
		s.MaxDegree = max(s.MaxDegree, d)
		if d == 0 {
			s.Isolated++
		}
		for _, sl := range list {
			if id < sl.nbr {
				s.TotalLength += r3.Norm(r3.Sub(g.nodes[id].pos, g.nodes[sl.nbr].pos))
			}
		}
	}
	s.MeanDegree = 2 * float64(g.numEdges) / float64(s.NodeCount)
	s.Components = g.NumComponents()

	return s
}
