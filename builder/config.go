// SPDX-License-Identifier: MIT
// Package: meshgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • pattern   = PatternComplete
//   • transform = identity
//   • spacing   = 0 (Grid fits the unit square)
//   • rng       = nil (pure/deterministic unless seeded)
//   • jitter    = 0

package builder

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	pattern   Pattern
	transform func(r3.Vec) r3.Vec
	spacing   float64    // Grid cell size; 0 means fit [0,1]
	rng       *rand.Rand // nil means no randomness
	jitter    float64    // in-plane displacement bound
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		pattern:   PatternComplete,
		transform: func(p r3.Vec) r3.Vec { return p },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate reports option combinations that can only be checked once all
// options are resolved.
func (c builderConfig) validate(method string) error {
	if c.jitter > 0 && c.rng == nil {
		return fmt.Errorf("%s: WithJitter without WithSeed: %w", method, ErrNeedRandSource)
	}

	return nil
}

// place applies transform then jitter to p.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	p = c.transform(p)
	if c.jitter > 0 {
		p.X += (2*c.rng.Float64() - 1) * c.jitter
		p.Y += (2*c.rng.Float64() - 1) * c.jitter
	}

	return p
}
