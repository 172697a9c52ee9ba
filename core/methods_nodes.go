// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle: AddNode, RemoveNode (swap-compaction), lookups.
// Determinism:
//   - New ids are always the previous Size().
//   - RemoveNode moves exactly one node (the last) and nothing else changes id.
// AI-HINT (file):
//   - After RemoveNode(n) the node that used to be Size()-1 lives at n.Index().
//   - Old handles to the moved node are stale; re-fetch with g.Node(i).

package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// AddNode appends a node at pos with the zero value of V.
// See AddNodeWithValue.
func (g *Graph[V, E]) AddNode(pos r3.Vec) Node[V, E] {
	var zero V

	return g.AddNodeWithValue(pos, zero)
}

// AddNodeWithValue appends a node with position pos and payload v and returns
// its handle. The new id equals the old Size(); the node has degree 0.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddNodeWithValue(pos r3.Vec, v V) Node[V, E] {
	g.nextGen++
	g.nodes = append(g.nodes, nodeRecord[V]{pos: pos, val: v, gen: g.nextGen})
	g.adj = append(g.adj, nil)

	return Node[V, E]{g: g, id: len(g.nodes) - 1, gen: g.nextGen}
}

// HasNode reports whether n is a live handle into g: issued by g, id still
// in range and not invalidated by a removal or compaction move.
//
// Complexity: O(1).
func (g *Graph[V, E]) HasNode(n Node[V, E]) bool {
	return n.g == g && n.id >= 0 && n.id < len(g.nodes) && g.nodes[n.id].gen == n.gen
}

// Node returns the handle of the node with id i.
// Panics with ErrOutOfRange unless 0 <= i < Size().
func (g *Graph[V, E]) Node(i int) Node[V, E] {
	g.mustIndex(i, "Node")

	return g.handle(i)
}

// RemoveNode deletes n and every edge incident to it.
//
// Implementation:
//   - Stage 1: For each neighbor m of n, swap-and-pop n out of adj[m].
//   - Stage 2: If n is not the last node, copy the last node's record and
//     adjacency list into n's id with a fresh generation, then rewrite the
//     back-reference to the old last id in each of its neighbors' lists.
//   - Stage 3: Pop the last id; subtract deg(n) from the edge count.
//
// Behavior highlights:
//   - Size() decreases by 1; ids stay dense.
//   - The node formerly at Size()-1 is now at n.Index(); its edges are intact.
//   - Handles to n and to the moved node become stale.
//   - Adjacency order of the touched lists is not preserved.
//
// Complexity: O(Σ deg(m) for m adjacent to n or to the moved node).
func (g *Graph[V, E]) RemoveNode(n Node[V, E]) {
	g.mustOwnNode(n, "RemoveNode")

	nid := n.id
	lid := len(g.nodes) - 1
	deg := len(g.adj[nid])

	// Stage 1: detach n from its neighbors.
	for _, s := range g.adj[nid] {
		var ok bool
		if g.adj[s.nbr], ok = swapRemove(g.adj[s.nbr], nid); !ok {
			panic(fmt.Errorf("%w: RemoveNode: %d missing from adjacency of %d", ErrCorrupt, nid, s.nbr))
		}
	}
	g.numEdges -= deg

	// Stage 2: fill the hole with the last node.
	if nid != lid {
		g.nextGen++
		g.nodes[nid] = g.nodes[lid]
		g.nodes[nid].gen = g.nextGen
		g.adj[nid] = g.adj[lid]

		for _, s := range g.adj[nid] {
			list := g.adj[s.nbr]
			for j := range list {
				if list[j].nbr == lid {
					list[j].nbr = nid
					break
				}
			}
		}
		g.logger.Debug("remove node", "id", nid, "degree", deg, "moved", lid)
	} else {
		g.logger.Debug("remove node", "id", nid, "degree", deg)
	}

	// Stage 3: drop the tail, releasing payloads for the GC.
	g.nodes[lid] = nodeRecord[V]{}
	g.adj[lid] = nil
	g.nodes = g.nodes[:lid]
	g.adj = g.adj[:lid]
}

// RemoveNodeAt removes the node under it and returns an iterator at the
// same position. That position now names the node moved in from the end
// (or equals the end when the removed node was last), so a removal loop
// must not call Next after a removal:
//
//	for it := g.NodeBegin(); !it.Done(); {
//		if drop(it.Node()) {
//			it = g.RemoveNodeAt(it)
//		} else {
//			it.Next()
//		}
//	}
func (g *Graph[V, E]) RemoveNodeAt(it NodeIterator[V, E]) NodeIterator[V, E] {
	if it.g != g {
		panic(fmt.Errorf("%w: RemoveNodeAt: iterator from another graph", ErrForeignHandle))
	}
	g.RemoveNode(it.Node())

	return it
}

// RemoveNodesWhere removes every node for which pred returns true and
// reports how many were removed. pred sees every node exactly once: a node
// moved in by compaction comes from beyond the cursor and is examined at its
// new position before the loop advances.
//
// Complexity: O(V + Σ removal costs).
func (g *Graph[V, E]) RemoveNodesWhere(pred func(Node[V, E]) bool) int {
	removed := 0
	for it := g.NodeBegin(); !it.Done(); {
		if pred(it.Node()) {
			it = g.RemoveNodeAt(it)
			removed++
		} else {
			it.Next()
		}
	}
	if removed > 0 {
		g.logger.Debug("remove nodes where", "removed", removed, "size", len(g.nodes))
	}

	return removed
}

// swapRemove deletes the slot pointing at nbr by moving the last slot into
// its place. It reports whether such a slot existed.
func swapRemove[E any](list []slot[E], nbr int) ([]slot[E], bool) {
	for i := range list {
		if list[i].nbr != nbr {
			continue
		}
		last := len(list) - 1
		list[i] = list[last]
		list[last] = slot[E]{}

		return list[:last], true
	}

	return list, false
}
