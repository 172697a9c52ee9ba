// File: predicates.go
// Role: node predicates for Filter, Select and RemoveRegion.
package subgraph

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// Predicate reports whether a node belongs to a region.
type Predicate[V, E any] func(core.Node[V, E]) bool

// InBox matches nodes inside the closed axis-aligned box b.
func InBox[V, E any](b r3.Box) Predicate[V, E] {
	return func(n core.Node[V, E]) bool {
		p := n.Position()
		return p.X >= b.Min.X && p.X <= b.Max.X &&
			p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
			p.Z >= b.Min.Z && p.Z <= b.Max.Z
	}
}

// InSphere matches nodes within distance r of center (boundary included).
func InSphere[V, E any](center r3.Vec, r float64) Predicate[V, E] {
	r2 := r * r
	return func(n core.Node[V, E]) bool {
		return r3.Norm2(r3.Sub(n.Position(), center)) <= r2
	}
}

// Below matches nodes with Z strictly less than z.
func Below[V, E any](z float64) Predicate[V, E] {
	return func(n core.Node[V, E]) bool { return n.Position().Z < z }
}

// EvenIndex matches nodes with an even id.
func EvenIndex[V, E any]() Predicate[V, E] {
	return func(n core.Node[V, E]) bool { return n.Index()%2 == 0 }
}

// Not inverts p.
func Not[V, E any](p Predicate[V, E]) Predicate[V, E] {
	return func(n core.Node[V, E]) bool { return !p(n) }
}

// And matches nodes accepted by every predicate. And() matches everything.
func And[V, E any](ps ...Predicate[V, E]) Predicate[V, E] {
	return func(n core.Node[V, E]) bool {
		for _, p := range ps {
			if !p(n) {
				return false
			}
		}
		return true
	}
}
