// SPDX-License-Identifier: MIT

package core

import "fmt"

// Validate checks the storage invariants and returns an error wrapping
// ErrCorrupt describing the first violation, or nil.
//
// Checked:
//   - node and adjacency tables have the same length;
//   - every neighbor id is in range and differs from its center;
//   - no neighbor appears twice in one list;
//   - every slot a→b has a matching slot b→a;
//   - NumEdges equals half the total slot count.
//
// Complexity: O(V + Σ deg²) in the worst case (reverse lookups are linear).
func (g *Graph[V, E]) Validate() error {
	if len(g.nodes) != len(g.adj) {
		return fmt.Errorf("%w: %d node records but %d adjacency lists", ErrCorrupt, len(g.nodes), len(g.adj))
	}

	slots := 0
	seen := make(map[int]struct{})
	for a, list := range g.adj {
		clear(seen)
		for _, s := range list {
			switch {
			case s.nbr < 0 || s.nbr >= len(g.nodes):
				return fmt.Errorf("%w: node %d lists neighbor %d outside [0,%d)", ErrCorrupt, a, s.nbr, len(g.nodes))
			case s.nbr == a:
				return fmt.Errorf("%w: node %d lists itself", ErrCorrupt, a)
			}
			if _, dup := seen[s.nbr]; dup {
				return fmt.Errorf("%w: node %d lists neighbor %d twice", ErrCorrupt, a, s.nbr)
			}
			seen[s.nbr] = struct{}{}
			if g.findSlot(s.nbr, a) < 0 {
				return fmt.Errorf("%w: edge %d→%d has no reverse slot", ErrCorrupt, a, s.nbr)
			}
		}
		slots += len(list)
	}
	if slots != 2*g.numEdges {
		return fmt.Errorf("%w: %d slots but NumEdges()=%d", ErrCorrupt, slots, g.numEdges)
	}

	return nil
}
