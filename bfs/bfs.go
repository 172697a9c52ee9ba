// File: bfs.go
// Role: walker state, BFS entry points and point-based helpers.
package bfs

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V, E any] struct {
	graph   *core.Graph[V, E]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited *roaring.Bitmap
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[V, E any](g *core.Graph[V, E], start core.Node[V, E], opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	n := g.Size()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: roaring.New(),
		res: &Result{
			Root:   start.Index(),
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start.Index(), 0, Unreached)

	return w.res, w.loop()
}

// Nearest returns the node whose position is closest to p (Euclidean).
// Ties go to the smaller id. Returns ErrGraphNil or ErrEmptyGraph.
//
// Complexity: O(V).
func Nearest[V, E any](g *core.Graph[V, E], p r3.Vec) (core.Node[V, E], error) {
	var best core.Node[V, E]
	if g == nil {
		return best, ErrGraphNil
	}
	if g.Size() == 0 {
		return best, ErrEmptyGraph
	}
	bestDist := math.Inf(1)
	for n := range g.Nodes() {
		d := r3.Norm2(r3.Sub(n.Position(), p))
		if d < bestDist {
			best, bestDist = n, d
		}
	}

	return best, nil
}

// PathLengths runs BFS from the node nearest to p.
func PathLengths[V, E any](g *core.Graph[V, E], p r3.Vec, opts ...Option) (*Result, error) {
	root, err := Nearest(g, p)
	if err != nil {
		return nil, fmt.Errorf("PathLengths: %w", err)
	}

	return BFS(g, root, opts...)
}

// StoreLengths runs PathLengths and writes each node's path length into its
// int payload (Unreached for nodes the search did not reach). It returns the
// longest path length found.
//
// On error no payload is modified.
func StoreLengths[E any](g *core.Graph[int, E], p r3.Vec, opts ...Option) (int, error) {
	res, err := PathLengths(g, p, opts...)
	if err != nil {
		return 0, err
	}
	for n := range g.Nodes() {
		n.SetValue(res.Depth[n.Index()])
	}

	return res.Max, nil
}

// enqueue marks id visited at depth d, records its parent, calls
// OnEnqueue and adds it to the queue.
func (w *walker[V, E]) enqueue(id, d, parent int) {
	w.visited.Add(uint32(id))
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	if d > w.res.Max {
		w.res.Max = d
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors walks the incident list of item, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker[V, E]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Node(item.id).Neighbors() {
		id := nbr.Index()
		if w.visited.Contains(uint32(id)) || !w.opts.FilterNeighbor(item.id, id) {
			continue
		}
		w.enqueue(id, next, item.id)
	}
}
