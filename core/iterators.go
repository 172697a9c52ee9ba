// SPDX-License-Identifier: MIT
// File: iterators.go
// Role: Position iterators (NodeIterator, IncidentIterator, EdgeIterator)
//       and the iter.Seq adapters built on them.
// Determinism:
//   - Node order is id order. Incident order is adjacency insertion order
//     (perturbed only by swap-and-pop removals). Edge order is center id
//     ascending, then adjacency order, canonical direction only.
// AI-HINT (file):
//   - Iterators are values; copying one forks the walk.
//   - Any structural mutation invalidates iterators except the one returned
//     by RemoveNodeAt/RemoveEdgeAt.

package core

import (
	"fmt"
	"iter"
)

// NodeIterator walks node ids 0..Size()-1.
type NodeIterator[V, E any] struct {
	g   *Graph[V, E]
	idx int
}

// NodeBegin returns an iterator at id 0.
func (g *Graph[V, E]) NodeBegin() NodeIterator[V, E] {
	return NodeIterator[V, E]{g: g}
}

// NodeEnd returns the past-the-end iterator (position Size()).
func (g *Graph[V, E]) NodeEnd() NodeIterator[V, E] {
	return NodeIterator[V, E]{g: g, idx: len(g.nodes)}
}

// Node dereferences the iterator. Panics with ErrOutOfRange at the end.
func (it NodeIterator[V, E]) Node() Node[V, E] {
	if it.g == nil {
		panic(invalidf("NodeIterator.Node", "zero iterator"))
	}

	return it.g.Node(it.idx)
}

// Index returns the current position.
func (it NodeIterator[V, E]) Index() int { return it.idx }

// Next advances to the next id.
func (it *NodeIterator[V, E]) Next() { it.idx++ }

// Done reports whether the iterator is at (or past) the current end.
func (it NodeIterator[V, E]) Done() bool { return it.g == nil || it.idx >= len(it.g.nodes) }

// Equal compares positions literally.
func (it NodeIterator[V, E]) Equal(o NodeIterator[V, E]) bool {
	return it.g == o.g && it.idx == o.idx
}

// IncidentIterator walks one node's adjacency list. Each Edge it yields
// has Node1() equal to that node.
type IncidentIterator[V, E any] struct {
	g      *Graph[V, E]
	center int
	gen    uint64
	pos    int
}

// Edge dereferences the iterator.
// Panics with ErrStaleHandle if the center node was removed or moved,
// and with ErrOutOfRange at the end.
func (it IncidentIterator[V, E]) Edge() Edge[V, E] {
	it.mustLive("IncidentIterator.Edge")
	if it.pos >= len(it.g.adj[it.center]) {
		panic(fmt.Errorf("%w: IncidentIterator.Edge: past the end of node %d", ErrOutOfRange, it.center))
	}

	return it.g.edgeAt(it.center, it.pos)
}

// Next advances to the next slot.
func (it *IncidentIterator[V, E]) Next() { it.pos++ }

// Done reports whether every slot has been visited.
func (it IncidentIterator[V, E]) Done() bool {
	it.mustLive("IncidentIterator.Done")

	return it.pos >= len(it.g.adj[it.center])
}

// Equal compares center node and slot position literally.
func (it IncidentIterator[V, E]) Equal(o IncidentIterator[V, E]) bool {
	return it.g == o.g && it.center == o.center && it.pos == o.pos
}

func (it IncidentIterator[V, E]) mustLive(op string) {
	if it.g == nil {
		panic(invalidf(op, "zero iterator"))
	}
	it.g.mustLive(it.center, it.gen, op)
}

// EdgeIterator walks every adjacency slot in (center id, slot) order and
// stops only on canonical slots, those with center < neighbor. Each
// logical edge is therefore yielded exactly once, as the handle whose
// Node1 has the smaller id. The end position is (Size(), 0).
type EdgeIterator[V, E any] struct {
	g      *Graph[V, E]
	center int
	pos    int
}

// EdgeBegin returns a normalized iterator at the first canonical slot.
func (g *Graph[V, E]) EdgeBegin() EdgeIterator[V, E] {
	it := EdgeIterator[V, E]{g: g}
	it.Fix()

	return it
}

// EdgeEnd returns the past-the-end iterator.
func (g *Graph[V, E]) EdgeEnd() EdgeIterator[V, E] {
	return EdgeIterator[V, E]{g: g, center: len(g.nodes)}
}

// Fix normalizes the position: while the current list is exhausted, move to
// the next center at slot 0; while the current slot is non-canonical, step
// to the next slot. After Fix the iterator is at a canonical slot or at the
// end. Run it after any mutation that touched the lists under the cursor.
func (it *EdgeIterator[V, E]) Fix() {
	if it.g == nil {
		return
	}
	adj := it.g.adj
	for it.center < len(adj) {
		if it.pos >= len(adj[it.center]) {
			it.center++
			it.pos = 0
			continue
		}
		if it.center < adj[it.center][it.pos].nbr {
			return
		}
		it.pos++
	}
	it.pos = 0
}

// Edge dereferences the iterator. Panics with ErrOutOfRange at the end.
func (it EdgeIterator[V, E]) Edge() Edge[V, E] {
	if it.g == nil {
		panic(invalidf("EdgeIterator.Edge", "zero iterator"))
	}
	if it.center >= len(it.g.adj) || it.pos >= len(it.g.adj[it.center]) {
		panic(fmt.Errorf("%w: EdgeIterator.Edge: position (%d,%d)", ErrOutOfRange, it.center, it.pos))
	}

	return it.g.edgeAt(it.center, it.pos)
}

// Next advances by one slot and normalizes.
func (it *EdgeIterator[V, E]) Next() {
	it.pos++
	it.Fix()
}

// Done reports whether the iterator reached the end.
func (it EdgeIterator[V, E]) Done() bool {
	return it.g == nil || it.center >= len(it.g.adj)
}

// Equal compares (center, slot) positions literally.
func (it EdgeIterator[V, E]) Equal(o EdgeIterator[V, E]) bool {
	return it.g == o.g && it.center == o.center && it.pos == o.pos
}

// Nodes yields every node in id order. Each call starts a fresh pass.
//
// The bound is re-read on every step, so a caller that removes the yielded
// node may still continue; the node moved into its id is then skipped.
// Use RemoveNodesWhere for removal loops.
func (g *Graph[V, E]) Nodes() iter.Seq[Node[V, E]] {
	return func(yield func(Node[V, E]) bool) {
		for it := g.NodeBegin(); !it.Done(); it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// Edges yields every logical edge once, in EdgeIterator order.
// Each call starts a fresh pass.
func (g *Graph[V, E]) Edges() iter.Seq[Edge[V, E]] {
	return func(yield func(Edge[V, E]) bool) {
		for it := g.EdgeBegin(); !it.Done(); it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}
