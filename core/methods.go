// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Handle guards, counters and whole-graph maintenance (Clear).
// Determinism:
//   - Guards never mutate; they either return or panic with a wrapped sentinel.
// Concurrency:
//   - None. Callers confine a Graph to one goroutine.

package core

import "fmt"

// mustOwnNode panics unless n was issued by g, names an existing id and
// carries the generation currently stored at that id.
func (g *Graph[V, E]) mustOwnNode(n Node[V, E], op string) {
	if n.g == nil {
		panic(fmt.Errorf("%w: %s: zero Node", ErrInvalidHandle, op))
	}
	if n.g != g {
		panic(fmt.Errorf("%w: %s: node %d", ErrForeignHandle, op, n.id))
	}
	g.mustLive(n.id, n.gen, op)
}

// mustLive checks the (id, generation) pair against current storage.
func (g *Graph[V, E]) mustLive(id int, gen uint64, op string) {
	if id < 0 || id >= len(g.nodes) {
		panic(fmt.Errorf("%w: %s: node %d, size %d", ErrStaleHandle, op, id, len(g.nodes)))
	}
	if g.nodes[id].gen != gen {
		panic(fmt.Errorf("%w: %s: node %d was removed or moved", ErrStaleHandle, op, id))
	}
}

// mustIndex panics unless 0 <= i < Size().
func (g *Graph[V, E]) mustIndex(i int, op string) {
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Errorf("%w: %s: index %d, size %d", ErrOutOfRange, op, i, len(g.nodes)))
	}
}

// handle builds a fresh Node handle for an id already known to be in range.
func (g *Graph[V, E]) handle(id int) Node[V, E] {
	return Node[V, E]{g: g, id: id, gen: g.nodes[id].gen}
}

// edgeAt builds an Edge handle for adj[center][pos]; both are assumed in range.
func (g *Graph[V, E]) edgeAt(center, pos int) Edge[V, E] {
	return Edge[V, E]{
		g:    g,
		n1:   center,
		pos:  pos,
		gen:  g.nodes[center].gen,
		peer: g.adj[center][pos].nbr,
	}
}

// Size returns the number of nodes. Complexity: O(1).
func (g *Graph[V, E]) Size() int { return len(g.nodes) }

// NumNodes is a synonym for Size.
func (g *Graph[V, E]) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of logical (undirected) edges.
// Complexity: O(1); the count is maintained by every mutation.
func (g *Graph[V, E]) NumEdges() int { return g.numEdges }

// Clear removes every node and edge.
//
// All outstanding handles and iterators become invalid. The generation
// counter keeps running, so a handle from before Clear can never match a
// node added afterwards even if it lands on the same id.
//
// Complexity: O(1) (storage is released to the GC).
func (g *Graph[V, E]) Clear() {
	g.logger.Debug("clear", "nodes", len(g.nodes), "edges", g.numEdges)
	g.nodes = nil
	g.adj = nil
	g.numEdges = 0
	g.nextGen++
}

// invalidf builds the panic value for a zero-value handle.
func invalidf(op, what string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidHandle, op, what)
}
