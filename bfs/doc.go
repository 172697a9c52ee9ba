// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted path lengths (hop counts), parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result indexed by node id containing:
//   - Order:  visit sequence
//   - Depth:  hop count from Root, Unreached (-1) if never discovered
//   - Parent: predecessor in the BFS tree
//   - Max:    the largest finite depth
//   - Start from an explicit handle (BFS) or from the node nearest to a
//     point in space (PathLengths, StoreLengths).
//   - StoreLengths writes the hop counts straight into int node payloads.
//
// Why
//
//   - Distance fields on meshes (graph distance to a probe point) drive
//     colouring, pruning and growth heuristics in O(V + E).
//   - Discover the part of a mesh reachable from a region after removals.
//
// Determinism
//
//	Neighbors are enqueued in incident-list order, which is fully determined
//	by the sequence of AddEdge/RemoveEdge/RemoveNode calls. Identical
//	mutation histories give identical Order and Parent slices. Nearest breaks
//	distance ties toward the smaller id.
//
// Complexity (V = Size(), E = NumEdges())
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent, roaring visited set)
//
// Usage
//
//	res, err := bfs.PathLengths(g, r3.Vec{X: 0.5, Y: 0.5},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(8),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr, neighbor)==false.
//   - WithOnEnqueue(fn):       hook when a node is discovered.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrEmptyGraph       if a point-based search runs on a graph with no nodes.
//   - ErrStartNotFound    if the start handle is zero, foreign or stale.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
//
// Results are indexed by node id at the time of the search. RemoveNode
// renumbers the graph, so a Result must not be applied after removals.
package bfs
