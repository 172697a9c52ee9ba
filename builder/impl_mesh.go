// SPDX-License-Identifier: MIT
// Package: meshgraph/builder
//
// impl_mesh.go - implementation of the Mesh(points, cells) constructor.
//
// Contract:
//   • len(points) ≥ MinMeshPoints (else ErrTooFewVertices).
//   • Every cell index in [0, len(points)) (else ErrCellIndex) and corners
//     that the pattern connects are distinct (else ErrDegenerateCell).
//   • All cells are validated before anything is added: on error the graph
//     is unchanged.
//   • Points become nodes base..base+len(points)-1 where base = g.Size()
//     before the call, each placed through cfg.place (transform, jitter).
//   • Cell edges are emitted per cfg.pattern; shared edges are added once
//     (core.AddEdge is idempotent).
//
// Complexity:
//   • Time: O(P + C·k·d) where k = pairs per cell and d = max degree.
//   • Space: O(1) extra.
//
// Determinism:
//   • Node order = point order; edge emission order = cell order, then pattern order.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// Mesh returns a Constructor that adds points as nodes and connects the
// corners of each 4-corner cell according to the configured Pattern.
func Mesh[V, E any](points []r3.Vec, cells [][CellCorners]int) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg builderConfig) error {
		// 1) Validate everything first (fail fast; no partial work).
		if len(points) < MinMeshPoints {
			return fmt.Errorf("%s: %d points (must be ≥ %d): %w",
				MethodMesh, len(points), MinMeshPoints, ErrTooFewVertices)
		}
		if err := cfg.validate(MethodMesh); err != nil {
			return err
		}
		pairs := cfg.pattern.pairs()
		for i, cell := range cells {
			for _, idx := range cell {
				if idx < 0 || idx >= len(points) {
					return fmt.Errorf("%s: cell %d index %d (points %d): %w",
						MethodMesh, i, idx, len(points), ErrCellIndex)
				}
			}
			for _, p := range pairs {
				if cell[p[0]] == cell[p[1]] {
					return fmt.Errorf("%s: cell %d corners %d and %d are both point %d: %w",
						MethodMesh, i, p[0], p[1], cell[p[0]], ErrDegenerateCell)
				}
			}
		}

		// 2) Add nodes in point order.
		base := g.Size()
		for _, p := range points {
			g.AddNode(cfg.place(p))
		}

		// 3) Emit cell edges.
		for _, cell := range cells {
			for _, p := range pairs {
				g.AddEdge(g.Node(base+cell[p[0]]), g.Node(base+cell[p[1]]))
			}
		}

		return nil
	}
}
