// Package core provides a generic, in-memory, mutable undirected simple
// graph container with dense integer node identities.
//
// The Graph[V, E] keeps two index-aligned slices:
//
//   - nodes[i]: position (gonum r3.Vec), node payload V, generation stamp
//   - adj[i]:   insertion-ordered list of (neighbor id, edge payload E)
//
// Every logical edge {a,b} is stored twice, once in adj[a] and once in
// adj[b]. The two payload copies are independent: writing one direction
// never touches the other (use Edge.SetValueBoth to write both).
//
// Node ids are always exactly 0..Size()-1. RemoveNode keeps them dense by
// moving the last node into the vacated id (swap-compaction) and rewriting
// its neighbors' back-references. A moved node gets a fresh generation, so
// any handle issued before the move is detected as stale.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(pos r3.Vec) Node                      // O(1) amortized
//	AddNodeWithValue(pos r3.Vec, v V) Node        // O(1) amortized
//	RemoveNode(n Node)                            // O(Σ deg of n's and the moved node's neighbors)
//	RemoveNodeAt(it NodeIterator) NodeIterator    // same, returns the same position
//	RemoveNodesWhere(pred func(Node) bool) int    // iterator-driven bulk removal
//	HasNode(n Node) bool                          // O(1)
//	Node(i int) Node                              // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b Node) Edge                       // O(deg a), idempotent
//	HasEdge(a, b Node) bool                       // O(deg a)
//	RemoveEdge(a, b Node) bool                    // O(deg a + deg b)
//	RemoveEdgeAt(it EdgeIterator) EdgeIterator    // same, re-normalized iterator
//	Edge(i int) Edge                              // O(i + slots visited)
//
//	// Counts & maintenance
//	Size(), NumNodes(), NumEdges()                // O(1)
//	Clear()                                       // invalidates every handle
//	Validate() error                              // O(V + E·deg)
//
//	// Connectivity
//	Components() [][]Node, Connected(a, b), NumComponents()
//
// Iteration:
//
// NodeIterator walks ids 0..Size()-1. IncidentIterator walks one adjacency
// list in insertion order. EdgeIterator walks every slot and yields only the
// canonical direction (center id < neighbor id), so each logical edge is
// seen once; its Fix step skips non-canonical slots and exhausted lists.
// Graph.Nodes, Graph.Edges, Node.Incident and Node.Neighbors wrap the same
// walks as restartable iter.Seq sequences.
//
// Error model:
//
// Precondition violations (zero-value handles, handles from another graph,
// out-of-range ids, stale handles, self-loops) are programmer errors and
// panic with an error value wrapping a sentinel, so
//
//	defer func() {
//		if r := recover(); r != nil {
//			err, _ := r.(error)
//			if errors.Is(err, core.ErrStaleHandle) { ... }
//		}
//	}()
//
// works. Outcomes that are part of normal use return values: RemoveEdge
// reports whether an edge existed, Validate returns an error.
//
// Concurrency:
//
// None. A Graph must be confined to one goroutine (or guarded externally).
// Any structural mutation invalidates outstanding iterators except the one
// returned by RemoveNodeAt / RemoveEdgeAt.
//
// Example:
//
//	g := core.NewGraph[float64, float64]()
//	a := g.AddNode(r3.Vec{X: 0})
//	b := g.AddNode(r3.Vec{X: 1})
//	e := g.AddEdge(a, b)
//	e.SetValueBoth(e.Length())
//	for e := range g.Edges() {
//		fmt.Println(e.Node1().Index(), e.Node2().Index())
//	}
package core
