// File: dijkstra.go
// Role: single-source geometric distances over the gonum adapter.
package dijkstra

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/meshgraph/converters"
	"github.com/katalvlaran/meshgraph/core"
)

// Result holds single-source distances indexed by node id.
//
//   - Source: id of the source node.
//   - Dist:   Euclidean path length from Source, +Inf if unreachable
//     (or beyond MaxDistance).
//
// Ids refer to the graph as it was when Distances ran.
type Result struct {
	Source int
	Dist   []float64

	tree path.Shortest
}

// Distances computes shortest path lengths from src to every node of g,
// where each edge weighs its Euclidean length (Edge.Length).
//
// Implementation:
//   - Stage 1: Validate graph and source handle.
//   - Stage 2: Run gonum path.DijkstraFrom over a converters.Undirected view.
//   - Stage 3: Copy WeightTo for every id, masking entries beyond MaxDistance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances[V, E any](g *core.Graph[V, E], src core.Node[V, E], opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(src) {
		return nil, ErrSourceNotFound
	}

	tree := path.DijkstraFrom(simple.Node(src.Index()), converters.NewUndirected(g))
	res := &Result{
		Source: src.Index(),
		Dist:   make([]float64, g.Size()),
		tree:   tree,
	}
	for i := range res.Dist {
		d := tree.WeightTo(int64(i))
		if d > cfg.MaxDistance {
			d = math.Inf(1)
		}
		res.Dist[i] = d
	}

	return res, nil
}

// Reached reports whether id has a finite distance.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Dist) && !math.IsInf(r.Dist[id], 1)
}

// PathTo returns the node ids of a shortest path from Source to id,
// both ends included. Returns ErrNoPath if id was not reached.
func (r *Result) PathTo(id int) ([]int, error) {
	if !r.Reached(id) {
		return nil, fmt.Errorf("%w: to node %d", ErrNoPath, id)
	}
	nodes, _ := r.tree.To(int64(id))
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}

	return out, nil
}

// Farthest returns the reached node with the largest distance and that
// distance. Ties go to the smaller id.
func (r *Result) Farthest() (id int, dist float64) {
	id = r.Source
	for i, d := range r.Dist {
		if !math.IsInf(d, 1) && d > dist {
			id, dist = i, d
		}
	}

	return id, dist
}
