// SPDX-License-Identifier: MIT
// Package: meshgraph/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols points in the z = 0 plane, row-major: point r*cols+c sits at
//     (c·h, r·h, 0).
//   • h = cfg.spacing, or 1/(max(rows,cols)-1) so the grid fits [0,1]².
//   • (rows-1)×(cols-1) square cells with corners
//     (r,c), (r,c+1), (r+1,c), (r+1,c+1), emitted through Mesh, so the
//     pattern, transform and jitter options apply unchanged.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//   • Space: O(rows*cols) for the generated point and cell lists.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// Grid returns a Constructor that builds a planar rows×cols lattice.
//
// With PatternQuad each interior node has degree 4 (the 4-neighborhood);
// with PatternComplete both cell diagonals are added as well.
func Grid[V, E any](rows, cols int) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		points, cells := GridPoints(rows, cols, cfg.spacing)
		if err := Mesh[V, E](points, cells)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodGrid, err)
		}

		return nil
	}
}

// GridPoints returns the point and cell lists Grid emits. h <= 0 selects
// the unit-square spacing. Callers must pass rows, cols ≥ MinGridDim.
func GridPoints(rows, cols int, h float64) ([]r3.Vec, [][CellCorners]int) {
	if h <= 0 {
		h = 1 / float64(max(rows, cols)-1)
	}

	points := make([]r3.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points = append(points, r3.Vec{X: float64(c) * h, Y: float64(r) * h})
		}
	}

	cells := make([][CellCorners]int, 0, (rows-1)*(cols-1))
	for r := 0; r+1 < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			id := r*cols + c
			cells = append(cells, [CellCorners]int{id, id + 1, id + cols, id + cols + 1})
		}
	}

	return points, cells
}
