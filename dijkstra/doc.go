// Package dijkstra computes geometric shortest paths on a core.Graph, where
// every edge weighs the Euclidean distance between its endpoint positions.
//
// Overview:
//
//   - Distances runs gonum's path.DijkstraFrom over a zero-copy
//     converters.Undirected view of the container, so no edge data is copied.
//   - Result.Dist is indexed by node id; unreachable nodes report +Inf.
//   - Result.PathTo rebuilds a shortest route as a slice of node ids.
//
// When to use:
//
//   - Geodesic distance fields over meshes, where hop counts (package bfs)
//     are too coarse because cell sizes vary.
//
// Key features:
//
//   - MaxDistance: nodes beyond a cap are reported unreachable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil:       the graph pointer is nil.
//   - ErrSourceNotFound: the source handle is zero, foreign or stale.
//   - ErrNoPath:         from Result.PathTo for unreached targets.
//   - ErrBadMaxDistance: panic from WithMaxDistance for negative or NaN caps.
//
// Example:
//
//	res, err := dijkstra.Distances(g, g.Node(0), dijkstra.WithMaxDistance(2.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := res.PathTo(42)
package dijkstra
