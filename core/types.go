// SPDX-License-Identifier: MIT
// Package core defines the generic Graph container, its Node and Edge
// handles and the three iterator families that walk it.
//
// This file declares the sentinel errors, GraphOption, the internal storage
// records and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidHandle - handle is the zero value or carries no container.
//	ErrForeignHandle - handle belongs to a different Graph.
//	ErrOutOfRange    - node index outside [0, Size()).
//	ErrStaleHandle   - handle outlived the node or edge it named.
//	ErrSelfLoop      - AddEdge called with the same node twice.
//	ErrCorrupt       - Validate found a broken storage invariant.
package core

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for core graph operations.
//
// Every precondition violation panics with an error value wrapping one of
// these, so callers that recover can still match with errors.Is.
var (
	// ErrInvalidHandle indicates a zero-value Node, Edge or iterator was used.
	ErrInvalidHandle = errors.New("core: invalid handle")

	// ErrForeignHandle indicates a handle was passed to a Graph that did not issue it.
	ErrForeignHandle = errors.New("core: handle belongs to another graph")

	// ErrOutOfRange indicates a node index outside [0, Size()).
	ErrOutOfRange = errors.New("core: node index out of range")

	// ErrStaleHandle indicates the node (or edge slot) named by a handle was
	// removed or relocated after the handle was issued.
	ErrStaleHandle = errors.New("core: stale handle")

	// ErrSelfLoop indicates AddEdge was asked to connect a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrCorrupt is returned by Validate when a storage invariant does not hold.
	ErrCorrupt = errors.New("core: graph invariant violated")
)

// nodeRecord is the per-node storage cell at a dense id.
// gen changes whenever the record is created or moved by compaction.
type nodeRecord[V any] struct {
	pos r3.Vec
	val V
	gen uint64
}

// slot is one physical direction of an undirected edge: the neighbor id
// and this direction's own copy of the edge payload.
type slot[E any] struct {
	nbr int
	val E
}

// graphConfig collects GraphOption settings before the Graph is allocated.
type graphConfig struct {
	logger   *log.Logger
	capacity int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(cfg *graphConfig)

// WithLogger routes debug output about structural mutations (node
// compaction moves, Clear) to l. A nil logger keeps the default, which
// discards everything.
func WithLogger(l *log.Logger) GraphOption {
	return func(cfg *graphConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithCapacity pre-sizes node storage for n nodes.
// Panics if n is negative.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n): n must be >= 0")
	}

	return func(cfg *graphConfig) { cfg.capacity = n }
}

// Graph is a mutable undirected simple graph with dense node ids.
//
// Each node stores a 3D position and a payload V. Each logical edge is kept
// as two physical slots (one per endpoint adjacency list) and every slot
// carries its own payload E; the two copies are independent.
//
// Graph is not safe for concurrent use. Handles and iterators are plain
// values that reference the Graph; they never own storage.
type Graph[V, E any] struct {
	id uuid.UUID // container identity, used only for cross-graph ordering

	nodes []nodeRecord[V] // id → record
	adj   [][]slot[E]     // id → insertion-ordered incident slots

	numEdges int    // logical edges, == Σ len(adj[i]) / 2
	nextGen  uint64 // monotonic generation source

	logger *log.Logger
}

// NewGraph creates an empty Graph.
//
// Complexity: O(capacity).
func NewGraph[V, E any](opts ...GraphOption) *Graph[V, E] {
	cfg := graphConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, E]{
		id:     uuid.New(),
		nodes:  make([]nodeRecord[V], 0, cfg.capacity),
		adj:    make([][]slot[E], 0, cfg.capacity),
		logger: cfg.logger,
	}
}

// ID returns the container identity. It has no meaning beyond giving
// handles from different graphs a stable relative order.
func (g *Graph[V, E]) ID() uuid.UUID { return g.id }

// EdgeKey is the canonical (unordered) identity of a logical edge:
// Lo is the smaller endpoint id, Hi the larger.
type EdgeKey struct {
	Lo, Hi int
}
