// Package builder assembles core.Graph meshes from already-parsed records
// and from synthetic lattices, using the same "functional options +
// Constructor closures" pipeline for every source.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved config, constructors in order.
//     – Apply(g, bopts, cons...):          same pipeline on an existing graph.
//   - Constructors (Constructor[V, E]):
//     – Mesh(points, cells):  one node per point, cell corner pairs as edges.
//     – Grid(rows, cols):     planar lattice of square cells, emitted through Mesh.
//     – NodeValues(fn):       initialize node payloads.
//     – EdgeValues(fn):       initialize both directional payloads of every edge.
//   - Options (BuilderOption):
//     – WithPattern(PatternComplete | PatternQuad): cell edge pattern.
//     – WithTransform(fn):   map every point before insertion.
//     – WithSpacing(h):      Grid cell size.
//     – WithSeed / WithJitter: deterministic in-plane point perturbation.
//
// Cell patterns:
//
//	PatternComplete: all 6 pairs of a 4-corner cell (tetrahedral meshes).
//	PatternQuad:     0-1, 0-2, 1-3, 2-3 (square cells listed as
//	                 (r,c), (r,c+1), (r+1,c), (r+1,c+1)).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors validate before mutating and return sentinel errors
//     (ErrTooFewVertices, ErrCellIndex, ErrDegenerateCell, ErrNeedRandSource),
//     wrapped with method context.
//   - Deterministic: identical inputs, options and seed produce identical
//     graphs, node ids and adjacency order.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithPattern(builder.PatternQuad)},
//		builder.Grid[int, float64](4, 4),
//		builder.EdgeValues(func(e core.Edge[int, float64]) float64 { return e.Length() }),
//	)
package builder
