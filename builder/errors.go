// SPDX-License-Identifier: MIT
// Package: meshgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: cell %d index %d: %w", methodMesh, i, idx, ErrCellIndex)
//   • Constructors MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (points, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrCellIndex indicates that a cell references a point index outside the
// point list passed to the same constructor.
var ErrCellIndex = errors.New("builder: cell index out of range")

// ErrDegenerateCell indicates that a cell repeats a corner, which would
// require a self-loop.
var ErrDegenerateCell = errors.New("builder: degenerate cell")

// ErrNeedRandSource indicates that a stochastic option (WithJitter) is set
// without an RNG (WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not run a constructor
// (nil constructor, nil target graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option value that can only be rejected
// once the configuration is resolved (e.g. an unknown pattern name read
// from a config file).
var ErrOptionViolation = errors.New("builder: invalid option value")
