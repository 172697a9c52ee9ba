// Package matrix exposes a core.Graph as a sparse linear operator.
//
// The matrix package provides:
//
//   - GraphMatrix: a CSR snapshot of the discrete Poisson operator of a mesh,
//     implementing gonum's mat.Matrix (Dims, At, T) so it can be passed to
//     any gonum routine that reads matrices.
//   - MulVec for matrix-free iterative solvers, Dense for small systems,
//     and Symmetric as a structural self-check.
//   - PoissonRHS and Solve: assemble and solve A·u = b with Dirichlet data on
//     nodes selected by WithBoundary.
//
// Operator definition (row i = node id i):
//
//	boundary i:  A[i][i] = 1, A[i][j] = 0 for j != i
//	interior i:  A[i][i] = -degree(i), A[i][j] = 1 for each interior neighbor j
//
// Degree counts every neighbor, boundary or not, so boundary couplings move
// to the right-hand side (see PoissonRHS). The result is symmetric.
//
// Complexity: New is O(V + E log Δ) time and O(V + E) memory; At is
// O(log Δ); MulVec is O(NNZ); Dense is O(V²).
package matrix
