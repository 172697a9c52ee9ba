// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.
// Public entry points return these sentinels and never panic on user input,
// except At, which follows the gonum mat.Matrix contract.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into New.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph with no nodes; a 0×0 operator is not
	// representable as a gonum matrix.
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrDimensionMismatch indicates incompatible vector or graph sizes,
	// e.g. MulVec with x.Len() != Size().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Solve when the dense factorization is
	// singular or too ill-conditioned to trust.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilFunc indicates a nil source or boundary-value function.
	ErrNilFunc = errors.New("matrix: nil function")
)
