// File: subgraph.go
// Role: lazy filtering, ordered selections and region removal.
package subgraph

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/meshgraph/core"
)

// Filter yields the elements of seq accepted by pred, lazily.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Selection is an ordered set of nodes of one graph.
type Selection[V, E any] struct {
	g    *core.Graph[V, E]
	tree *btree.BTreeG[core.Node[V, E]]
}

func nodeLess[V, E any](a, b core.Node[V, E]) bool { return a.Less(b) }

// Select snapshots the nodes of g accepted by pred.
//
// Complexity: O(V log V).
func Select[V, E any](g *core.Graph[V, E], pred Predicate[V, E]) *Selection[V, E] {
	s := &Selection[V, E]{g: g, tree: btree.NewBTreeG(nodeLess[V, E])}
	if g == nil {
		return s
	}
	for n := range Filter(g.Nodes(), pred) {
		s.tree.Set(n)
	}

	return s
}

// Len returns the number of selected nodes.
func (s *Selection[V, E]) Len() int { return s.tree.Len() }

// Contains reports whether n is selected.
func (s *Selection[V, E]) Contains(n core.Node[V, E]) bool {
	_, ok := s.tree.Get(n)
	return ok
}

// Add inserts n. It reports false if n was already selected or belongs to
// another graph.
func (s *Selection[V, E]) Add(n core.Node[V, E]) bool {
	if n.Graph() != s.g || s.g == nil || !s.g.HasNode(n) {
		return false
	}
	_, replaced := s.tree.Set(n)
	return !replaced
}

// Delete removes n from the selection (not from the graph).
func (s *Selection[V, E]) Delete(n core.Node[V, E]) bool {
	_, ok := s.tree.Delete(n)
	return ok
}

// Nodes yields the selected nodes in ascending id order.
func (s *Selection[V, E]) Nodes() iter.Seq[core.Node[V, E]] {
	return func(yield func(core.Node[V, E]) bool) {
		s.tree.Scan(func(n core.Node[V, E]) bool { return yield(n) })
	}
}

// Edges yields each logical edge with both endpoints selected exactly once,
// oriented from the smaller id, ordered by its lower endpoint.
//
// Complexity: O(Σ deg · log |S|).
func (s *Selection[V, E]) Edges() iter.Seq[core.Edge[V, E]] {
	return func(yield func(core.Edge[V, E]) bool) {
		for n := range s.Nodes() {
			for e := range n.Incident() {
				other := e.Node2()
				if n.Less(other) && s.Contains(other) && !yield(e) {
					return
				}
			}
		}
	}
}

// Induced copies the selected nodes and the edges among them into a new
// graph. Node values, positions and both directional edge values are copied.
// ids[k] is the id in the source graph of node k in the copy.
//
// Complexity: O(|S| + induced edges · log |S|).
func (s *Selection[V, E]) Induced(opts ...core.GraphOption) (out *core.Graph[V, E], ids []int) {
	out = core.NewGraph[V, E](append([]core.GraphOption{core.WithCapacity(s.Len())}, opts...)...)
	ids = make([]int, 0, s.Len())
	remap := make(map[int]core.Node[V, E], s.Len())
	for n := range s.Nodes() {
		remap[n.Index()] = out.AddNodeWithValue(n.Position(), n.Value())
		ids = append(ids, n.Index())
	}
	for e := range s.Edges() {
		c := out.AddEdge(remap[e.Node1().Index()], remap[e.Node2().Index()])
		c.SetValue(e.Value())
		c.Dual().SetValue(e.Dual().Value())
	}

	return out, ids
}

// RemoveRegion deletes every node of g accepted by pred, together with its
// edges, and returns how many were removed. Surviving ids are compacted.
func RemoveRegion[V, E any](g *core.Graph[V, E], pred Predicate[V, E]) int {
	if g == nil {
		return 0
	}

	return g.RemoveNodesWhere(pred)
}
