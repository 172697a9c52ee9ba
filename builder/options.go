// SPDX-License-Identifier: MIT
// Package: meshgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: randomness only via WithSeed.
//
// AI-Hints:
//   • WithTransform runs before WithJitter, both on every point a constructor adds.
//   • Grid spacing defaults to "fit the unit square"; WithSpacing overrides it.

package builder

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithPattern selects the cell edge pattern used by Mesh and Grid.
// Panics on values other than PatternComplete and PatternQuad.
func WithPattern(p Pattern) BuilderOption {
	if p != PatternComplete && p != PatternQuad {
		panic("builder: WithPattern(unknown)")
	}

	return func(c *builderConfig) { c.pattern = p }
}

// WithTransform maps every point before it is added (e.g. p ↦ 2p - (1,1,0)
// to move the unit square onto [-1,1]²). Panics on nil.
func WithTransform(fn func(r3.Vec) r3.Vec) BuilderOption {
	if fn == nil {
		panic("builder: WithTransform(nil)")
	}

	return func(c *builderConfig) { c.transform = fn }
}

// WithSpacing sets the Grid cell size h (>0). Panics if h <= 0.
func WithSpacing(h float64) BuilderOption {
	if h <= 0 {
		panic("builder: WithSpacing(h<=0)")
	}

	return func(c *builderConfig) { c.spacing = h }
}

// WithSeed creates a deterministic RNG for stochastic options.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithJitter displaces every added point in-plane (X and Y) by a uniform
// offset in [-a, a]. Requires WithSeed. Panics if a < 0.
func WithJitter(a float64) BuilderOption {
	if a < 0 {
		panic("builder: WithJitter(a<0)")
	}

	return func(c *builderConfig) { c.jitter = a }
}
