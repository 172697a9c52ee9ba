// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the graph operator.
package matrix

import "github.com/katalvlaran/meshgraph/core"

// Option mutates internal options. Safe to apply repeatedly; last wins.
type Option[V, E any] func(*Options[V, E])

// Options stores the effective configuration after applying Option setters.
type Options[V, E any] struct {
	boundary func(core.Node[V, E]) bool
}

// WithBoundary marks nodes for which fn returns true as Dirichlet boundary
// rows: identity on the diagonal and decoupled from every neighbor.
//
// Errors:
//   - Panics when fn is nil (programmer error).
//
// Complexity:
//   - fn is called once per node in New.
func WithBoundary[V, E any](fn func(core.Node[V, E]) bool) Option[V, E] {
	if fn == nil {
		panic("matrix: WithBoundary: nil predicate")
	}

	return func(o *Options[V, E]) { o.boundary = fn }
}

// gatherOptions resolves opts over the defaults (no boundary nodes).
func gatherOptions[V, E any](opts []Option[V, E]) Options[V, E] {
	o := Options[V, E]{boundary: func(core.Node[V, E]) bool { return false }}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
