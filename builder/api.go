// SPDX-License-Identifier: MIT
// Package: meshgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply runs the same pipeline against an existing graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose Mesh/Grid with NodeValues/EdgeValues to initialize payloads in one call.
//   - Node ids are assigned in emission order, continuing from g.Size().

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nothing when validation fails.
//   - Preserve determinism for the same config and call order.
type Constructor[V, E any] func(g *core.Graph[V, E], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrCellIndex, ...).
func BuildGraph[V, E any](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[V, E]) (*core.Graph[V, E], error) {
	g := core.NewGraph[V, E](gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply resolves bopts and runs cons against an existing graph.
// On error, g holds the output of the constructors that succeeded.
func Apply[V, E any](g *core.Graph[V, E], bopts []BuilderOption, cons ...Constructor[V, E]) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply[V, E any](g *core.Graph[V, E], cfg builderConfig, cons []Constructor[V, E]) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// NodeValues returns a Constructor that sets every node's payload to fn(n).
// Panics on nil fn (programmer error, same policy as options).
//
// Complexity: O(V).
func NodeValues[V, E any](fn func(core.Node[V, E]) V) Constructor[V, E] {
	if fn == nil {
		panic("builder: NodeValues(nil)")
	}

	return func(g *core.Graph[V, E], _ builderConfig) error {
		for n := range g.Nodes() {
			n.SetValue(fn(n))
		}

		return nil
	}
}

// EdgeValues returns a Constructor that writes fn(e) into BOTH directional
// payloads of every logical edge, e being the canonical direction.
// Use it for symmetric edge data such as rest lengths.
//
// Complexity: O(Σ deg²) worst case (reverse slot lookup per edge).
func EdgeValues[V, E any](fn func(core.Edge[V, E]) E) Constructor[V, E] {
	if fn == nil {
		panic("builder: EdgeValues(nil)")
	}

	return func(g *core.Graph[V, E], _ builderConfig) error {
		for e := range g.Edges() {
			e.SetValueBoth(fn(e))
		}

		return nil
	}
}
