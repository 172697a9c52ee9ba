// SPDX-License-Identifier: MIT

// Package matrix: right-hand side assembly and a dense reference solver for
// the Poisson system A·u = b.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// PoissonRHS assembles b for A·u = b on a uniform mesh with spacing h:
//
//	b[i] = bc(x_i)                                  if i is boundary
//	b[i] = h²·f(x_i) - Σ bc(x_j) over boundary nbrs j  otherwise
//
// m must have been built from g with no mutation in between.
//
// Errors:
//   - ErrGraphNil, ErrNilFunc for nil inputs.
//   - ErrDimensionMismatch if m.Size() != g.Size().
//
// Complexity: O(V + E).
func PoissonRHS[V, E any](g *core.Graph[V, E], m *GraphMatrix, h float64, f, bc func(r3.Vec) float64) (*mat.VecDense, error) {
	if g == nil || m == nil {
		return nil, ErrGraphNil
	}
	if f == nil || bc == nil {
		return nil, ErrNilFunc
	}
	if m.Size() != g.Size() {
		return nil, fmt.Errorf("%w: matrix %d, graph %d", ErrDimensionMismatch, m.Size(), g.Size())
	}

	b := mat.NewVecDense(m.Size(), nil)
	for n := range g.Nodes() {
		i, x := n.Index(), n.Position()
		if m.Boundary(i) {
			b.SetVec(i, bc(x))
			continue
		}
		v := h * h * f(x)
		for nbr := range n.Neighbors() {
			if m.Boundary(nbr.Index()) {
				v -= bc(nbr.Position())
			}
		}
		b.SetVec(i, v)
	}

	return b, nil
}

// Solve returns u with A·u = b using a dense LU factorization.
//
// Errors:
//   - ErrDimensionMismatch if b.Len() != Size().
//   - ErrSingular if gonum reports the system as singular or ill-conditioned.
//
// Complexity:
//   - Time O(V³), Space O(V²). A reference for small meshes; large systems
//     should drive MulVec from an iterative solver.
func (m *GraphMatrix) Solve(b mat.Vector) (*mat.VecDense, error) {
	if b.Len() != m.n {
		return nil, fmt.Errorf("%w: b has %d entries, want %d", ErrDimensionMismatch, b.Len(), m.n)
	}
	var u mat.VecDense
	if err := u.SolveVec(m.Dense(), b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return &u, nil
}
