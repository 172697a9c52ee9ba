// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle semantics, including swap-compaction.
//   - Anchor the independent dual-payload storage contract.

package core_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// TestGraph_ThreeNodeScenario VERIFIES the basic add/query contract.
//
// Implementation:
//   - Stage 1: Add 3 nodes; ids are 0,1,2 and degrees are 0.
//   - Stage 2: AddEdge(0,1), AddEdge(1,2).
//   - Stage 3: Assert counts, degree of the middle node, absent 0-2 edge.
func TestGraph_ThreeNodeScenario(t *testing.T) {
	g := core.NewGraph[int, float64]()

	// Stage 1
	for i := 0; i < 3; i++ {
		before := g.Size()
		n := g.AddNode(r3.Vec{X: float64(i)})
		require.Equal(t, before+1, g.Size())
		require.Equal(t, i, n.Index())
		require.Zero(t, n.Degree())
	}

	// Stage 2
	g.AddEdge(g.Node(0), g.Node(1))
	g.AddEdge(g.Node(1), g.Node(2))

	// Stage 3
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, 2, g.Node(1).Degree())
	require.False(t, g.HasEdge(g.Node(0), g.Node(2)))
	require.False(t, g.HasEdge(g.Node(2), g.Node(0)))
	require.NoError(t, g.Validate())
}

// TestGraph_RemoveNodeCompaction VERIFIES swap-compaction on the 3-node path.
//
// Behavior highlights:
//   - The node formerly at id 2 moves to id 0.
//   - Exactly one edge survives, between the two remaining nodes.
func TestGraph_RemoveNodeCompaction(t *testing.T) {
	g := pathGraph(t, 3)
	deg := g.Node(0).Degree()
	edges := g.NumEdges()

	g.RemoveNode(g.Node(0))

	require.Equal(t, 2, g.Size())
	require.Equal(t, edges-deg, g.NumEdges())
	require.Equal(t, 1, g.NumEdges())
	require.True(t, g.HasEdge(g.Node(0), g.Node(1)))

	// Payload and position travelled with the moved node.
	moved := g.Node(0)
	assert.Equal(t, 2, moved.Value())
	assert.Equal(t, r3.Vec{X: 2}, moved.Position())
	assert.Equal(t, 1, g.Node(1).Value(), "untouched node keeps its id")
	require.NoError(t, g.Validate())
}

// TestGraph_RemoveNodeKeepsOtherIDs VERIFIES that removal touches only the
// removed id and the last id, and that the moved node keeps its edges.
func TestGraph_RemoveNodeKeepsOtherIDs(t *testing.T) {
	g := gridGraph(t, GridRows, GridCols)
	last := g.Size() - 1
	victim := 6

	// Neighbors (by initial value) of the last node, minus the victim.
	wantNbrs := map[int]bool{}
	for m := range g.Node(last).Neighbors() {
		if m.Index() != victim {
			wantNbrs[m.Value()] = true
		}
	}
	deg := g.Node(victim).Degree()
	edges := g.NumEdges()

	g.RemoveNode(g.Node(victim))

	require.Equal(t, GridRows*GridCols-1, g.Size())
	require.Equal(t, edges-deg, g.NumEdges())
	for i := 0; i < g.Size(); i++ {
		n := g.Node(i)
		require.Equal(t, i, n.Index())
		if i != victim {
			require.Equal(t, i, n.Value(), "id %d must not move", i)
		}
	}
	moved := g.Node(victim)
	require.Equal(t, last, moved.Value(), "last node now lives at the vacated id")
	gotNbrs := map[int]bool{}
	for m := range moved.Neighbors() {
		gotNbrs[m.Value()] = true
	}
	require.Equal(t, wantNbrs, gotNbrs)
	require.NoError(t, g.Validate())
}

// TestGraph_RemoveLastNode VERIFIES that removing id Size()-1 moves nothing.
func TestGraph_RemoveLastNode(t *testing.T) {
	g := pathGraph(t, 4)
	keep := g.Node(1)

	g.RemoveNode(g.Node(3))

	require.Equal(t, 3, g.Size())
	require.Equal(t, 2, g.NumEdges())
	require.True(t, g.HasNode(keep), "no compaction move means no invalidation")
	require.Equal(t, 1, g.Node(2).Degree())
	require.NoError(t, g.Validate())
}

// TestGraph_RemoveOnlyNode VERIFIES the single-node edge case.
func TestGraph_RemoveOnlyNode(t *testing.T) {
	g := core.NewGraph[int, float64]()
	n := g.AddNode(r3.Vec{})
	g.RemoveNode(n)
	require.Zero(t, g.Size())
	require.Zero(t, g.NumEdges())
	require.True(t, g.EdgeBegin().Equal(g.EdgeEnd()))
	require.True(t, g.NodeBegin().Equal(g.NodeEnd()))
}

// TestGraph_RemoveNodeAdjacentToLast VERIFIES compaction when the removed
// node and the last node share an edge.
func TestGraph_RemoveNodeAdjacentToLast(t *testing.T) {
	g := core.NewGraph[int, float64]()
	a := g.AddNodeWithValue(r3.Vec{}, 0)
	b := g.AddNodeWithValue(r3.Vec{X: 1}, 1)
	c := g.AddNodeWithValue(r3.Vec{Y: 1}, 2)
	g.AddEdge(a, b)
	g.AddEdge(a, c)
	g.AddEdge(b, c)

	g.RemoveNode(a)

	require.Equal(t, 2, g.Size())
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 2, g.Node(0).Value())
	require.True(t, g.HasEdge(g.Node(0), g.Node(1)))
	require.Equal(t, 1, g.Node(0).Degree())
	require.NoError(t, g.Validate())
}

// TestGraph_AddEdgeIdempotent VERIFIES both call orders return the same
// logical edge and count it once.
func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := pathGraph(t, 2)
	g.RemoveEdge(g.Node(0), g.Node(1))
	before := g.NumEdges()

	e1 := g.AddEdge(g.Node(0), g.Node(1))
	e2 := g.AddEdge(g.Node(1), g.Node(0))
	e3 := g.AddEdge(g.Node(0), g.Node(1))

	require.True(t, e1.Equal(e2))
	require.True(t, e1.Equal(e3))
	require.Equal(t, before+1, g.NumEdges())
	require.Equal(t, 0, e1.Node1().Index())
	require.Equal(t, 1, e2.Node1().Index())
	require.Equal(t, 1, g.Node(0).Degree())
}

// TestGraph_DualPayloadIndependent VERIFIES that the two physical copies of
// an edge payload are not synchronized.
func TestGraph_DualPayloadIndependent(t *testing.T) {
	g := pathGraph(t, 2)
	e := g.AddEdge(g.Node(0), g.Node(1))

	e.SetValue(42)
	require.Equal(t, 42.0, e.Value())
	require.Equal(t, 0.0, e.Dual().Value(), "dual copy is untouched")

	*e.Dual().ValueRef() = 7
	require.Equal(t, 42.0, e.Value())

	e.SetValueBoth(3)
	require.Equal(t, 3.0, e.Value())
	require.Equal(t, 3.0, e.Dual().Value())
	require.True(t, e.Dual().Dual().Equal(e))
	require.Equal(t, e.Node1().Index(), e.Dual().Node2().Index())
}

// TestGraph_HasEdgeSymmetric VERIFIES symmetry on every pair of a grid.
func TestGraph_HasEdgeSymmetric(t *testing.T) {
	g := gridGraph(t, GridRows, GridCols)
	g.RemoveNode(g.Node(3))
	g.RemoveEdge(g.Node(0), g.Node(1))
	for a := range g.Nodes() {
		for b := range g.Nodes() {
			require.Equal(t, g.HasEdge(a, b), g.HasEdge(b, a), "%s vs %s", describe(a), describe(b))
		}
	}
}

// TestGraph_RemoveEdge VERIFIES both directions go and missing edges report false.
func TestGraph_RemoveEdge(t *testing.T) {
	g := pathGraph(t, 3)
	a, b, c := g.Node(0), g.Node(1), g.Node(2)

	require.False(t, g.RemoveEdge(a, c))
	require.Equal(t, 2, g.NumEdges())

	require.True(t, g.RemoveEdge(b, a))
	require.False(t, g.HasEdge(a, b))
	require.False(t, g.HasEdge(b, a))
	require.Equal(t, 1, g.NumEdges())
	require.False(t, g.RemoveEdge(a, b))

	e := g.AddEdge(c, a)
	require.True(t, g.RemoveEdgeOf(e))
	require.Equal(t, 1, g.NumEdges())
	require.NoError(t, g.Validate())
}

// TestGraph_EdgeByIndex VERIFIES Edge(i) follows EdgeIterator order.
func TestGraph_EdgeByIndex(t *testing.T) {
	g := gridGraph(t, GridRows, GridCols)
	i := 0
	for e := range g.Edges() {
		require.True(t, g.Edge(i).Equal(e), "Edge(%d)", i)
		i++
	}
	mustPanicIs(t, core.ErrOutOfRange, func() { g.Edge(g.NumEdges()) }, "Edge(NumEdges)")
	mustPanicIs(t, core.ErrOutOfRange, func() { g.Edge(-1) }, "Edge(-1)")
}

// TestGraph_NodeAccessors VERIFIES value/position reads and writes through
// both the setter and the reference forms.
func TestGraph_NodeAccessors(t *testing.T) {
	g := core.NewGraph[int, float64]()
	n := g.AddNodeWithValue(r3.Vec{X: 1, Y: 2, Z: 3}, 5)

	n.SetValue(6)
	require.Equal(t, 6, n.Value())
	*n.ValueRef() += 1
	require.Equal(t, 7, n.Value())

	n.SetPosition(r3.Vec{X: 9})
	require.Equal(t, r3.Vec{X: 9}, n.Position())
	n.PositionRef().Y = 4
	require.Equal(t, r3.Vec{X: 9, Y: 4}, g.Node(0).Position())
}

// TestGraph_EdgeLength VERIFIES Euclidean lengths.
func TestGraph_EdgeLength(t *testing.T) {
	g := core.NewGraph[int, float64]()
	a := g.AddNode(r3.Vec{})
	b := g.AddNode(r3.Vec{X: 3, Y: 4})
	e := g.AddEdge(a, b)
	require.InDelta(t, 5.0, e.Length(), 1e-12)
	require.InDelta(t, 5.0, e.Dual().Length(), 1e-12)
}

// TestGraph_Clear VERIFIES Clear empties storage and invalidates handles.
func TestGraph_Clear(t *testing.T) {
	g := pathGraph(t, 5)
	old := g.Node(0)
	g.Clear()
	require.Zero(t, g.Size())
	require.Zero(t, g.NumEdges())
	require.False(t, g.HasNode(old))

	fresh := g.AddNode(r3.Vec{})
	require.Equal(t, 0, fresh.Index())
	require.False(t, g.HasNode(old), "same id, new generation")
	require.False(t, old.Equal(core.Node[int, float64]{}))
}

// TestGraph_Clone VERIFIES deep copy and independent identities.
func TestGraph_Clone(t *testing.T) {
	g := gridGraph(t, GridRows, GridCols)
	g.Edge(0).SetValue(1.5)
	c := g.Clone()

	require.Equal(t, g.Size(), c.Size())
	require.Equal(t, g.NumEdges(), c.NumEdges())
	require.Equal(t, keys(g), keys(c))
	require.Equal(t, 1.5, c.Edge(0).Value())
	require.NotEqual(t, g.ID(), c.ID())
	require.False(t, c.HasNode(g.Node(0)), "handles are bound to their graph")

	c.RemoveNode(c.Node(0))
	require.Equal(t, GridRows*GridCols, g.Size())
	require.NoError(t, g.Validate())
	require.NoError(t, c.Validate())

	empty := g.CloneEmpty()
	require.Equal(t, g.Size(), empty.Size())
	require.Zero(t, empty.NumEdges())
	require.Equal(t, g.Node(7).Position(), empty.Node(7).Position())
}

// TestGraph_RemoveNodesWhere VERIFIES bulk removal visits every node once.
func TestGraph_RemoveNodesWhere(t *testing.T) {
	g := gridGraph(t, GridRows, GridCols)
	seen := map[int]int{}
	removed := g.RemoveNodesWhere(func(n core.Node[int, float64]) bool {
		seen[n.Value()]++
		return n.Value()%2 == 0
	})

	require.Equal(t, GridRows*GridCols/2, removed)
	require.Len(t, seen, GridRows*GridCols)
	for v, cnt := range seen {
		require.Equal(t, 1, cnt, "value %d offered %d times", v, cnt)
	}
	for n := range g.Nodes() {
		require.Equal(t, 1, n.Value()%2)
	}
	require.NoError(t, g.Validate())
}

// TestGraph_Components VERIFIES the partition and Connected queries.
func TestGraph_Components(t *testing.T) {
	g := pathGraph(t, 6)
	g.RemoveEdge(g.Node(2), g.Node(3))
	iso := g.AddNodeWithValue(r3.Vec{Z: 9}, 99)

	comps := g.Components()
	require.Len(t, comps, 3)
	require.Equal(t, 3, g.NumComponents())
	total := 0
	for _, comp := range comps {
		total += len(comp)
	}
	require.Equal(t, g.Size(), total)
	require.Equal(t, 0, comps[0][0].Index())
	require.Equal(t, 3, comps[1][0].Index())
	require.True(t, comps[2][0].Equal(iso))

	require.True(t, g.Connected(g.Node(0), g.Node(2)))
	require.False(t, g.Connected(g.Node(0), g.Node(3)))
	require.True(t, g.Connected(iso, iso))
	require.False(t, g.Connected(iso, g.Node(5)))
}

// TestGraph_WithLogger VERIFIES structural mutations log at debug level.
func TestGraph_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := core.NewGraph[int, float64](core.WithLogger(logger))
	for i := 0; i < 3; i++ {
		g.AddNode(r3.Vec{X: float64(i)})
	}
	g.RemoveNode(g.Node(0))
	g.Clear()

	out := buf.String()
	require.Contains(t, out, "remove node")
	require.Contains(t, out, "moved=2")
	require.Contains(t, out, "clear")
}

// TestGraph_WithCapacity VERIFIES negative capacities are rejected.
func TestGraph_WithCapacity(t *testing.T) {
	require.Panics(t, func() { core.WithCapacity(-1) })
	g := core.NewGraph[int, float64](core.WithCapacity(8), core.WithLogger(nil))
	require.Zero(t, g.Size())
	g.RemoveNodesWhere(func(core.Node[int, float64]) bool { return true })
}

// TestGraph_Stats VERIFIES the summary on a lattice and after removals.
func TestGraph_Stats(t *testing.T) {
	require.Equal(t, &core.GraphStats{}, core.NewGraph[int, float64]().Stats())

	g := gridGraph(t, GridRows, GridCols)
	s := g.Stats()
	wantE := GridRows*(GridCols-1) + (GridRows-1)*GridCols
	require.Equal(t, GridRows*GridCols, s.NodeCount)
	require.Equal(t, wantE, s.EdgeCount)
	require.Equal(t, 2, s.MinDegree)
	require.Equal(t, 4, s.MaxDegree)
	require.InDelta(t, 2*float64(wantE)/float64(GridRows*GridCols), s.MeanDegree, 1e-12)
	require.InDelta(t, float64(wantE), s.TotalLength, 1e-9, "unit spacing")
	require.Equal(t, 1, s.Components)
	require.Zero(t, s.Isolated)

	// isolate a corner
	corner := g.Node(0)
	nbrs := slices.Collect(corner.Neighbors())
	for _, nbr := range nbrs {
		require.True(t, g.RemoveEdge(corner, nbr))
	}
	s = g.Stats()
	require.Equal(t, 0, s.MinDegree)
	require.Equal(t, 1, s.Isolated)
	require.Equal(t, 2, s.Components)
}
