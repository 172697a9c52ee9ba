// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle: AddEdge, HasEdge, RemoveEdge family, Edge(i).
// Determinism:
//   - AddEdge appends to the end of both endpoint lists.
//   - RemoveEdge swap-and-pops, so the former last slot of each list takes
//     the removed slot's position.

package core

import "fmt"

// findSlot returns the position of nbr inside adj[center], or -1.
func (g *Graph[V, E]) findSlot(center, nbr int) int {
	for i, s := range g.adj[center] {
		if s.nbr == nbr {
			return i
		}
	}

	return -1
}

// HasEdge reports whether a and b are adjacent. Symmetric in a and b.
// Panics if either handle is invalid, foreign or stale.
//
// Complexity: O(deg a).
func (g *Graph[V, E]) HasEdge(a, b Node[V, E]) bool {
	g.mustOwnNode(a, "HasEdge")
	g.mustOwnNode(b, "HasEdge")

	return g.findSlot(a.id, b.id) >= 0
}

// AddEdge connects a and b and returns the handle of the a→b slot.
//
// Implementation:
//   - Stage 1: Validate both handles and reject a == b (ErrSelfLoop).
//   - Stage 2: If a→b already exists, return it unchanged (idempotent).
//   - Stage 3: Append (b, zero E) to adj[a] and (a, zero E) to adj[b].
//
// Behavior highlights:
//   - Both payload copies start as the zero value of E.
//   - NumEdges grows by one only when a new edge is created.
//
// Complexity: O(deg a) for the duplicate scan.
func (g *Graph[V, E]) AddEdge(a, b Node[V, E]) Edge[V, E] {
	g.mustOwnNode(a, "AddEdge")
	g.mustOwnNode(b, "AddEdge")
	if a.id == b.id {
		panic(fmt.Errorf("%w: AddEdge: node %d", ErrSelfLoop, a.id))
	}

	if pos := g.findSlot(a.id, b.id); pos >= 0 {
		return g.edgeAt(a.id, pos)
	}

	g.adj[a.id] = append(g.adj[a.id], slot[E]{nbr: b.id})
	g.adj[b.id] = append(g.adj[b.id], slot[E]{nbr: a.id})
	g.numEdges++

	return g.edgeAt(a.id, len(g.adj[a.id])-1)
}

// RemoveEdge deletes the edge between a and b, both directions.
// Returns false (and changes nothing) when a and b are not adjacent.
//
// Complexity: O(deg a + deg b).
func (g *Graph[V, E]) RemoveEdge(a, b Node[V, E]) bool {
	g.mustOwnNode(a, "RemoveEdge")
	g.mustOwnNode(b, "RemoveEdge")

	return g.removeEdge(a.id, b.id)
}

// RemoveEdgeOf deletes the logical edge that e names (both directions).
// The result is the same as RemoveEdge(e.Node1(), e.Node2()).
func (g *Graph[V, E]) RemoveEdgeOf(e Edge[V, E]) bool {
	if e.g != g {
		if e.g == nil {
			panic(fmt.Errorf("%w: RemoveEdgeOf: zero Edge", ErrInvalidHandle))
		}
		panic(fmt.Errorf("%w: RemoveEdgeOf", ErrForeignHandle))
	}
	e.mustSlot("RemoveEdgeOf")

	return g.removeEdge(e.n1, e.peer)
}

// RemoveEdgeAt deletes the edge under it and returns it re-normalized: the
// slot it pointed to now holds a not-yet-visited entry (or the list ended),
// and Fix moves on to the next canonical slot. Use it in place of Next:
//
//	for it := g.EdgeBegin(); !it.Done(); {
//		if drop(it.Edge()) {
//			it = g.RemoveEdgeAt(it)
//		} else {
//			it.Next()
//		}
//	}
func (g *Graph[V, E]) RemoveEdgeAt(it EdgeIterator[V, E]) EdgeIterator[V, E] {
	if it.g != g {
		panic(fmt.Errorf("%w: RemoveEdgeAt: iterator from another graph", ErrForeignHandle))
	}
	g.RemoveEdgeOf(it.Edge())
	it.Fix()

	return it
}

func (g *Graph[V, E]) removeEdge(a, b int) bool {
	var ok bool
	if g.adj[a], ok = swapRemove(g.adj[a], b); !ok {
		return false
	}
	if g.adj[b], ok = swapRemove(g.adj[b], a); !ok {
		panic(fmt.Errorf("%w: RemoveEdge: %d→%d has no reverse slot", ErrCorrupt, a, b))
	}
	g.numEdges--

	return true
}

// Edge returns the i-th logical edge in EdgeIterator order.
// Panics with ErrOutOfRange unless 0 <= i < NumEdges().
//
// Complexity: O(i + slots skipped); prefer Edges() for full passes.
func (g *Graph[V, E]) Edge(i int) Edge[V, E] {
	if i < 0 || i >= g.numEdges {
		panic(fmt.Errorf("%w: Edge: index %d, edges %d", ErrOutOfRange, i, g.numEdges))
	}
	it := g.EdgeBegin()
	for ; i > 0; i-- {
		it.Next()
	}

	return it.Edge()
}
