// Package dijkstra defines core types and configuration options
// for geometric shortest paths on a core.Graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Distances.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source handle is zero, foreign or stale.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNoPath indicates that the requested target was not reached.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Distances.
//
// MaxDistance – nodes whose shortest distance exceeds this value are
// reported unreachable (Dist = +Inf). Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(fmt.Errorf("%w: got %v", ErrBadMaxDistance, max))
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults:
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
