// SPDX-License-Identifier: MIT

// Package matrix: GraphMatrix construction and the gonum mat.Matrix surface.
package matrix

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/meshgraph/core"
)

var _ mat.Matrix = (*GraphMatrix)(nil)

// GraphMatrix is an immutable CSR snapshot of the discrete Poisson operator
// of a core.Graph:
//
//	A[i][i] = 1             if i is boundary
//	A[i][j] = 0             if i != j and either i or j is boundary
//	A[i][i] = -degree(i)    otherwise
//	A[i][j] = 1             iff HasEdge(i, j), otherwise 0
//
// Row i corresponds to node id i at construction time. Later mutations of
// the graph are not reflected; rebuild with New.
type GraphMatrix struct {
	n        int
	indptr   []int     // len n+1; row i spans [indptr[i], indptr[i+1])
	indices  []int     // column of each stored entry, ascending within a row
	data     []float64 // value of each stored entry
	boundary []bool
}

// New materializes the operator of g.
//
// Implementation:
//   - Stage 1: Validate g and resolve options.
//   - Stage 2: Classify every node as boundary or interior.
//   - Stage 3: Emit one CSR row per node; interior rows list the diagonal
//     and every interior neighbor, sorted by column.
//
// Complexity:
//   - Time O(V + E log Δ), Space O(V + E).
func New[V, E any](g *core.Graph[V, E], opts ...Option[V, E]) (*GraphMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Size()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	o := gatherOptions(opts)

	m := &GraphMatrix{
		n:        n,
		indptr:   make([]int, 1, n+1),
		indices:  make([]int, 0, n+2*g.NumEdges()),
		data:     make([]float64, 0, n+2*g.NumEdges()),
		boundary: make([]bool, n),
	}
	for node := range g.Nodes() {
		m.boundary[node.Index()] = o.boundary(node)
	}

	type entry struct {
		col int
		val float64
	}
	row := make([]entry, 0, 8)
	for node := range g.Nodes() {
		i := node.Index()
		row = row[:0]
		if m.boundary[i] {
			row = append(row, entry{i, 1})
		} else {
			row = append(row, entry{i, -float64(node.Degree())})
			for nbr := range node.Neighbors() {
				if j := nbr.Index(); !m.boundary[j] {
					row = append(row, entry{j, 1})
				}
			}
			slices.SortFunc(row, func(a, b entry) int { return a.col - b.col })
		}
		for _, e := range row {
			m.indices = append(m.indices, e.col)
			m.data = append(m.data, e.val)
		}
		m.indptr = append(m.indptr, len(m.indices))
	}

	return m, nil
}

// Size returns the number of rows (== columns).
func (m *GraphMatrix) Size() int { return m.n }

// Dims returns the matrix dimensions.
func (m *GraphMatrix) Dims() (r, c int) { return m.n, m.n }

// At returns A[i][j]. Panics with mat.ErrIndexOutOfRange outside the matrix,
// as every gonum mat.Matrix does.
//
// Complexity: O(log deg(i)).
func (m *GraphMatrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(mat.ErrIndexOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	if k, ok := slices.BinarySearch(m.indices[lo:hi], j); ok {
		return m.data[lo+k]
	}

	return 0
}

// T returns the transpose view.
func (m *GraphMatrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored entries.
func (m *GraphMatrix) NNZ() int { return len(m.data) }

// Boundary reports whether row i was classified as boundary.
func (m *GraphMatrix) Boundary(i int) bool {
	return i >= 0 && i < m.n && m.boundary[i]
}

// MulVec computes dst = A·x. An empty dst is resized to Size(); dst may
// alias x.
//
// Errors:
//   - ErrDimensionMismatch if x.Len() or a non-empty dst.Len() differ from Size().
//
// Complexity: O(NNZ).
func (m *GraphMatrix) MulVec(dst *mat.VecDense, x mat.Vector) error {
	if x.Len() != m.n {
		return fmt.Errorf("%w: x has %d entries, want %d", ErrDimensionMismatch, x.Len(), m.n)
	}
	if dst.IsEmpty() {
		dst.ReuseAsVec(m.n)
	} else if dst.Len() != m.n {
		return fmt.Errorf("%w: dst has %d entries, want %d", ErrDimensionMismatch, dst.Len(), m.n)
	}

	out := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var s float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			s += m.data[k] * x.AtVec(m.indices[k])
		}
		out[i] = s
	}
	for i, v := range out {
		dst.SetVec(i, v)
	}

	return nil
}

// Dense expands the operator into a new *mat.Dense.
//
// Complexity: O(V²) memory.
func (m *GraphMatrix) Dense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.indices[k], m.data[k])
		}
	}

	return d
}

// Symmetric reports whether A[i][j] == A[j][i] for every stored entry.
//
// Complexity: O(NNZ log Δ).
func (m *GraphMatrix) Symmetric() bool {
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if m.At(m.indices[k], i) != m.data[k] {
				return false
			}
		}
	}

	return true
}
