// File: undirected.go
// Role: live gonum view over core.Graph plus snapshot export.
package converters

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// Compile-time interface checks.
var (
	_ graph.Undirected         = (*Undirected[int, float64])(nil)
	_ graph.Weighted           = (*Undirected[int, float64])(nil)
	_ graph.WeightedUndirected = (*Undirected[int, float64])(nil)
)

// Undirected exposes a core.Graph through gonum's graph interfaces.
// It holds no state of its own beyond the container pointer.
type Undirected[V, E any] struct {
	g *core.Graph[V, E]
}

// NewUndirected wraps g. It panics if g is nil.
func NewUndirected[V, E any](g *core.Graph[V, E]) *Undirected[V, E] {
	if g == nil {
		panic("converters: NewUndirected: nil graph")
	}

	return &Undirected[V, E]{g: g}
}

// Graph returns the wrapped container.
func (u *Undirected[V, E]) Graph() *core.Graph[V, E] { return u.g }

func (u *Undirected[V, E]) has(id int64) bool {
	return id >= 0 && id < int64(u.g.Size())
}

// Node returns the node with the given id, or nil if it does not exist.
func (u *Undirected[V, E]) Node(id int64) graph.Node {
	if !u.has(id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns all nodes in id order.
func (u *Undirected[V, E]) Nodes() graph.Nodes {
	n := u.g.Size()
	if n == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, n)
	for i := range nodes {
		nodes[i] = simple.Node(i)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbors of id in adjacency order.
func (u *Undirected[V, E]) From(id int64) graph.Nodes {
	if !u.has(id) {
		return graph.Empty
	}
	n := u.g.Node(int(id))
	if n.Degree() == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, n.Degree())
	for nbr := range n.Neighbors() {
		nodes = append(nodes, simple.Node(nbr.Index()))
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether an edge joins xid and yid.
func (u *Undirected[V, E]) HasEdgeBetween(xid, yid int64) bool {
	if !u.has(xid) || !u.has(yid) || xid == yid {
		return false
	}

	return u.g.HasEdge(u.g.Node(int(xid)), u.g.Node(int(yid)))
}

// Edge returns the edge from uid to vid, or nil if absent.
func (u *Undirected[V, E]) Edge(uid, vid int64) graph.Edge {
	return u.WeightedEdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between xid and yid, or nil if absent.
func (u *Undirected[V, E]) EdgeBetween(xid, yid int64) graph.Edge {
	return u.WeightedEdgeBetween(xid, yid)
}

// WeightedEdge returns the weighted edge from uid to vid, or nil if absent.
func (u *Undirected[V, E]) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	return u.WeightedEdgeBetween(uid, vid)
}

// WeightedEdgeBetween returns the weighted edge between xid and yid, or nil
// if absent. The returned edge is oriented xid → yid.
func (u *Undirected[V, E]) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	w, ok := u.Weight(xid, yid)
	if !ok || xid == yid {
		return nil
	}

	return simple.WeightedEdge{F: simple.Node(xid), T: simple.Node(yid), W: w}
}

// Weight returns the Euclidean length of the edge between xid and yid.
// Weight(x, x) is (0, true) for a live node; absent edges report (+Inf, false).
func (u *Undirected[V, E]) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid && u.has(xid) {
		return 0, true
	}
	if !u.HasEdgeBetween(xid, yid) {
		return math.Inf(1), false
	}
	a, b := u.g.Node(int(xid)), u.g.Node(int(yid))

	return r3.Norm(r3.Sub(a.Position(), b.Position())), true
}

// ToSimple copies g into a new gonum WeightedUndirectedGraph with the same
// node ids, self weight 0 and absent weight +Inf.
//
// Complexity: O(V + E).
func ToSimple[V, E any](g *core.Graph[V, E]) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	if g == nil {
		return out
	}
	for i := 0; i < g.Size(); i++ {
		out.AddNode(simple.Node(i))
	}
	for e := range g.Edges() {
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.Node1().Index()),
			T: simple.Node(e.Node2().Index()),
			W: e.Length(),
		})
	}

	return out
}
