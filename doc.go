// Package meshgraph is an in-memory playground for point meshes stored as
// undirected graphs: nodes carry a 3D position and a payload, every edge
// carries one payload per direction.
//
// What is meshgraph?
//
//	A generic graph container plus the algorithms that mesh work keeps
//	reaching for:
//		• Core container: dense node ids, O(1) node/edge handles, swap-compaction removal
//		• Builders: tetrahedral and quad meshes from point/cell lists, planar lattices
//		• Traversals: BFS path lengths from the node nearest a point
//		• Shortest paths: Euclidean-weighted Dijkstra via gonum
//		• Matrix views: sparse Poisson operator implementing gonum mat.Matrix
//		• Subsets: region predicates, ordered selections, induced subgraphs
//		• Rendering: Graphviz DOT and SVG with heat-map colouring
//
// Layout:
//
//	core/       - Graph[V, E], Node and Edge handles, iterators, validation
//	builder/    - Mesh/Grid constructors behind functional options
//	bfs/        - breadth-first search, Nearest, StoreLengths
//	dijkstra/   - geodesic distances over edge lengths
//	converters/ - gonum graph.WeightedUndirected adapter
//	matrix/     - Poisson operator, right-hand side, reference solver
//	subgraph/   - predicates, Selection, RemoveRegion
//	render/     - DOT writer, SVG rendering
//	cmd/meshgraph, internal/cli - command-line front end
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithPattern(builder.PatternQuad)},
//		builder.Grid[int, float64](10, 10),
//	)
//	maxLen, _ := bfs.StoreLengths(g, r3.Vec{})
//
// See each subpackage's documentation for guarantees and complexity.
package meshgraph
