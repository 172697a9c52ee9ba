// SPDX-License-Identifier: MIT
// File: methods_connectivity.go
// Role: Connected components and reachability over incident lists.
// Determinism:
//   - Components are ordered by their smallest id; nodes inside a
//     component are in BFS discovery order from that id.

package core

import "github.com/RoaringBitmap/roaring/v2"

// Components partitions the nodes into connected components.
//
// Implementation:
//   - Stage 1: Scan ids in ascending order; skip ids already visited.
//   - Stage 2: BFS from each unvisited id over adjacency lists, marking
//     nodes in a roaring bitmap.
//
// Complexity: O(V + E) time, O(V) bits for the visited set.
func (g *Graph[V, E]) Components() [][]Node[V, E] {
	visited := roaring.New()
	var out [][]Node[V, E]
	queue := make([]int, 0, 16)

	for start := range g.nodes {
		if !visited.CheckedAdd(uint32(start)) {
			continue
		}
		comp := []Node[V, E]{g.handle(start)}
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			for _, s := range g.adj[queue[head]] {
				if visited.CheckedAdd(uint32(s.nbr)) {
					comp = append(comp, g.handle(s.nbr))
					queue = append(queue, s.nbr)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}

// NumComponents returns len(Components()) without materializing handles.
func (g *Graph[V, E]) NumComponents() int {
	visited := roaring.New()
	count := 0
	for start := range g.nodes {
		if visited.Contains(uint32(start)) {
			continue
		}
		count++
		g.reach(start, -1, visited)
	}

	return count
}

// Connected reports whether a path joins a and b. A node is connected to
// itself. Panics if either handle is invalid, foreign or stale.
//
// Complexity: O(size of a's component) worst case; stops early on b.
func (g *Graph[V, E]) Connected(a, b Node[V, E]) bool {
	g.mustOwnNode(a, "Connected")
	g.mustOwnNode(b, "Connected")
	if a.id == b.id {
		return true
	}

	return g.reach(a.id, b.id, roaring.New())
}

// reach runs a BFS from start, adding every discovered id to visited, and
// reports whether target was discovered (target < 0 never matches).
func (g *Graph[V, E]) reach(start, target int, visited *roaring.Bitmap) bool {
	visited.Add(uint32(start))
	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		for _, s := range g.adj[queue[head]] {
			if s.nbr == target {
				return true
			}
			if visited.CheckedAdd(uint32(s.nbr)) {
				queue = append(queue, s.nbr)
			}
		}
	}

	return false
}
