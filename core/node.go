// SPDX-License-Identifier: MIT

package core

import (
	"bytes"
	"cmp"
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// Node is a lightweight handle to one node of a Graph.
//
// A Node stays valid until the node is removed or relocated by a removal
// compaction, or until the Graph is cleared. Every accessor re-checks that
// and panics with ErrStaleHandle afterwards. The zero Node is invalid.
type Node[V, E any] struct {
	g   *Graph[V, E]
	id  int
	gen uint64
}

func (n Node[V, E]) mustLive(op string) {
	if n.g == nil {
		panic(invalidf(op, "zero Node"))
	}
	n.g.mustLive(n.id, n.gen, op)
}

// Graph returns the container that issued n (nil for the zero Node).
func (n Node[V, E]) Graph() *Graph[V, E] { return n.g }

// IsValid reports whether n can still be dereferenced.
func (n Node[V, E]) IsValid() bool {
	return n.g != nil && n.g.HasNode(n)
}

// Index returns the dense id of n, in [0, Size()).
func (n Node[V, E]) Index() int {
	n.mustLive("Node.Index")

	return n.id
}

// Position returns the node's 3D position.
func (n Node[V, E]) Position() r3.Vec {
	n.mustLive("Node.Position")

	return n.g.nodes[n.id].pos
}

// SetPosition overwrites the node's position.
func (n Node[V, E]) SetPosition(p r3.Vec) {
	n.mustLive("Node.SetPosition")
	n.g.nodes[n.id].pos = p
}

// PositionRef returns a pointer into node storage. The pointer is valid
// until the next AddNode, RemoveNode or Clear on the owning graph.
func (n Node[V, E]) PositionRef() *r3.Vec {
	n.mustLive("Node.PositionRef")

	return &n.g.nodes[n.id].pos
}

// Value returns a copy of the node payload.
func (n Node[V, E]) Value() V {
	n.mustLive("Node.Value")

	return n.g.nodes[n.id].val
}

// SetValue overwrites the node payload.
func (n Node[V, E]) SetValue(v V) {
	n.mustLive("Node.SetValue")
	n.g.nodes[n.id].val = v
}

// ValueRef returns a pointer to the node payload, with the same validity
// window as PositionRef.
func (n Node[V, E]) ValueRef() *V {
	n.mustLive("Node.ValueRef")

	return &n.g.nodes[n.id].val
}

// Degree returns the number of nodes adjacent to n.
func (n Node[V, E]) Degree() int {
	n.mustLive("Node.Degree")

	return len(n.g.adj[n.id])
}

// EdgeBegin returns an IncidentIterator at the first slot of n's
// adjacency list.
func (n Node[V, E]) EdgeBegin() IncidentIterator[V, E] {
	n.mustLive("Node.EdgeBegin")

	return IncidentIterator[V, E]{g: n.g, center: n.id, gen: n.gen}
}

// EdgeEnd returns the past-the-end IncidentIterator of n.
func (n Node[V, E]) EdgeEnd() IncidentIterator[V, E] {
	n.mustLive("Node.EdgeEnd")

	return IncidentIterator[V, E]{g: n.g, center: n.id, gen: n.gen, pos: len(n.g.adj[n.id])}
}

// Incident yields every edge with Node1() == n, in adjacency order.
// Each call starts a fresh pass.
func (n Node[V, E]) Incident() iter.Seq[Edge[V, E]] {
	return func(yield func(Edge[V, E]) bool) {
		for it := n.EdgeBegin(); !it.Done(); it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// Neighbors yields the nodes adjacent to n, in adjacency order.
func (n Node[V, E]) Neighbors() iter.Seq[Node[V, E]] {
	return func(yield func(Node[V, E]) bool) {
		for e := range n.Incident() {
			if !yield(e.Node2()) {
				return
			}
		}
	}
}

// Equal reports whether n and o name the same id of the same container.
func (n Node[V, E]) Equal(o Node[V, E]) bool {
	return n.g == o.g && n.id == o.id
}

// Less orders nodes by id within one container. Nodes of different
// containers are ordered by container identity; that order is arbitrary
// but stable.
func (n Node[V, E]) Less(o Node[V, E]) bool { return n.Compare(o) < 0 }

// Compare returns -1, 0 or +1 following Less.
func (n Node[V, E]) Compare(o Node[V, E]) int {
	if n.g != o.g {
		return compareGraphs(n.g, o.g)
	}

	return cmp.Compare(n.id, o.id)
}

// compareGraphs orders containers by UUID; nil sorts first.
func compareGraphs[V, E any](a, b *Graph[V, E]) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return bytes.Compare(a.id[:], b.id[:])
}
