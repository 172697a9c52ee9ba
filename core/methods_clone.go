// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Copying graph instances.
// Determinism:
//   - Clone keeps ids, adjacency order and both payload copies of every edge.
// AI-HINT (file):
//   - Handles are bound to their container: handles of g are foreign to the clone.
//   - Payloads are copied by assignment; pointer-typed V/E share their targets.

package core

import "github.com/google/uuid"

// CloneEmpty returns a graph with the same nodes (positions and payloads)
// and no edges. The clone has its own identity.
//
// Complexity: O(V).
func (g *Graph[V, E]) CloneEmpty() *Graph[V, E] {
	clone := &Graph[V, E]{
		id:      uuid.New(),
		nodes:   make([]nodeRecord[V], len(g.nodes)),
		adj:     make([][]slot[E], len(g.nodes)),
		nextGen: g.nextGen,
		logger:  g.logger,
	}
	copy(clone.nodes, g.nodes)

	return clone
}

// Clone returns a deep copy of g's storage: nodes, adjacency lists (order
// preserved) and both directional payloads of every edge.
//
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	clone := g.CloneEmpty()
	for i, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		clone.adj[i] = make([]slot[E], len(list))
		copy(clone.adj[i], list)
	}
	clone.numEdges = g.numEdges

	return clone
}
