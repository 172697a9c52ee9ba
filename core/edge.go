// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is a handle to one physical direction of an undirected edge: the
// slot at position pos of Node1's adjacency list.
//
// Node2 is read from that slot. The handle remembers node1's generation and
// the neighbor it saw when issued; if either no longer matches (node1 moved
// or was removed, or the slot now holds another neighbor after a
// swap-and-pop) every accessor panics with ErrStaleHandle.
//
// Value, SetValue and ValueRef address this direction's payload only. The
// opposite direction (Dual) has its own independent copy.
type Edge[V, E any] struct {
	g    *Graph[V, E]
	n1   int    // center node id
	pos  int    // slot position inside adj[n1]
	gen  uint64 // generation of n1 at issue time
	peer int    // neighbor id observed at issue time
}

// mustSlot validates e and returns the slot it addresses.
func (e Edge[V, E]) mustSlot(op string) *slot[E] {
	if e.g == nil {
		panic(invalidf(op, "zero Edge"))
	}
	e.g.mustLive(e.n1, e.gen, op)
	list := e.g.adj[e.n1]
	if e.pos < 0 || e.pos >= len(list) || list[e.pos].nbr != e.peer {
		panic(fmt.Errorf("%w: %s: edge %d→%d no longer at slot %d", ErrStaleHandle, op, e.n1, e.peer, e.pos))
	}

	return &list[e.pos]
}

// Graph returns the container that issued e (nil for the zero Edge).
func (e Edge[V, E]) Graph() *Graph[V, E] { return e.g }

// IsValid reports whether e can still be dereferenced.
func (e Edge[V, E]) IsValid() bool {
	if e.g == nil || e.n1 < 0 || e.n1 >= len(e.g.nodes) || e.g.nodes[e.n1].gen != e.gen {
		return false
	}
	list := e.g.adj[e.n1]

	return e.pos >= 0 && e.pos < len(list) && list[e.pos].nbr == e.peer
}

// Node1 returns the center node this handle was issued from.
func (e Edge[V, E]) Node1() Node[V, E] {
	e.mustSlot("Edge.Node1")

	return e.g.handle(e.n1)
}

// Node2 returns the neighbor stored in the slot.
func (e Edge[V, E]) Node2() Node[V, E] {
	s := e.mustSlot("Edge.Node2")

	return e.g.handle(s.nbr)
}

// Value returns a copy of this direction's payload.
func (e Edge[V, E]) Value() E {
	return e.mustSlot("Edge.Value").val
}

// SetValue overwrites this direction's payload. Dual().Value() is unchanged.
func (e Edge[V, E]) SetValue(v E) {
	e.mustSlot("Edge.SetValue").val = v
}

// ValueRef returns a pointer to this direction's payload. The pointer is
// valid until the next structural mutation of the owning graph.
func (e Edge[V, E]) ValueRef() *E {
	return &e.mustSlot("Edge.ValueRef").val
}

// SetValueBoth writes v into both directions of the logical edge.
//
// Complexity: O(deg Node2) to locate the reverse slot.
func (e Edge[V, E]) SetValueBoth(v E) {
	e.mustSlot("Edge.SetValueBoth").val = v
	e.Dual().mustSlot("Edge.SetValueBoth").val = v
}

// Length returns the Euclidean distance between the endpoint positions.
func (e Edge[V, E]) Length() float64 {
	s := e.mustSlot("Edge.Length")

	return r3.Norm(r3.Sub(e.g.nodes[e.n1].pos, e.g.nodes[s.nbr].pos))
}

// Dual returns the handle of the opposite direction (Node2→Node1).
//
// Complexity: O(deg Node2).
func (e Edge[V, E]) Dual() Edge[V, E] {
	s := e.mustSlot("Edge.Dual")
	pos := e.g.findSlot(s.nbr, e.n1)
	if pos < 0 {
		panic(fmt.Errorf("%w: Edge.Dual: %d→%d has no reverse slot", ErrCorrupt, e.n1, s.nbr))
	}

	return e.g.edgeAt(s.nbr, pos)
}

// Key returns the canonical unordered identity of the logical edge.
func (e Edge[V, E]) Key() EdgeKey {
	s := e.mustSlot("Edge.Key")
	if e.n1 < s.nbr {
		return EdgeKey{Lo: e.n1, Hi: s.nbr}
	}

	return EdgeKey{Lo: s.nbr, Hi: e.n1}
}

// Equal reports whether e and o are the same logical edge of the same
// container, in either direction. Two zero Edges are equal.
func (e Edge[V, E]) Equal(o Edge[V, E]) bool {
	if e.g == nil || o.g == nil {
		return e.g == nil && o.g == nil
	}

	return e.g == o.g && e.Key() == o.Key()
}

// Less orders edges of one container by Key (Lo first, then Hi). Edges of
// different containers are ordered by container identity.
func (e Edge[V, E]) Less(o Edge[V, E]) bool { return e.Compare(o) < 0 }

// Compare returns -1, 0 or +1 following Less.
func (e Edge[V, E]) Compare(o Edge[V, E]) int {
	if e.g != o.g || e.g == nil {
		return compareGraphs(e.g, o.g)
	}
	a, b := e.Key(), o.Key()
	if a.Lo != b.Lo {
		return cmp.Compare(a.Lo, b.Lo)
	}

	return cmp.Compare(a.Hi, b.Hi)
}
