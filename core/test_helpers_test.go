// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for meshgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (path, triangle, grid) for core.Graph.
//   - Recover precondition panics and match them against core sentinels.

package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// G is the concrete graph type most tests use: int node values, float64 edges.
type G = core.Graph[int, float64]

// Common fixture sizes (avoid magic numbers in test bodies).
const (
	GridRows = 4
	GridCols = 5
	Seed1    = 1
	Seed2    = 20240917
	RandOps  = 2000
)

// pathGraph RETURNS n nodes on the x axis, each joined to the next.
func pathGraph(t testing.TB, n int) *G {
	t.Helper()
	g := core.NewGraph[int, float64]()
	for i := 0; i < n; i++ {
		g.AddNodeWithValue(r3.Vec{X: float64(i)}, i)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(g.Node(i-1), g.Node(i))
	}
	require.NoError(t, g.Validate())

	return g
}

// gridGraph RETURNS a rows×cols lattice with unit spacing; node value is
// the initial id so tests can follow nodes through compaction.
func gridGraph(t testing.TB, rows, cols int) *G {
	t.Helper()
	g := core.NewGraph[int, float64](core.WithCapacity(rows * cols))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNodeWithValue(r3.Vec{X: float64(c), Y: float64(r)}, r*cols+c)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				g.AddEdge(g.Node(id), g.Node(id+1))
			}
			if r+1 < rows {
				g.AddEdge(g.Node(id), g.Node(id+cols))
			}
		}
	}
	require.NoError(t, g.Validate())

	return g
}

// mustPanicIs RUNS fn and asserts it panics with an error wrapping target.
func mustPanicIs(t *testing.T, target error, fn func(), msg string) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "%s: expected panic wrapping %v", msg, target)
		err, ok := r.(error)
		require.True(t, ok, "%s: panic value %T is not an error", msg, r)
		require.True(t, errors.Is(err, target), "%s: got %v, want %v", msg, err, target)
	}()
	fn()
}

// keys COLLECTS the canonical key of every edge yielded by Edges().
func keys(g *G) []core.EdgeKey {
	var out []core.EdgeKey
	for e := range g.Edges() {
		out = append(out, e.Key())
	}

	return out
}

// describe FORMATS a node for failure messages.
func describe(n core.Node[int, float64]) string {
	return fmt.Sprintf("node(id=%d, value=%d)", n.Index(), n.Value())
}
