// Package subgraph provides filtered views and region edits over a core.Graph.
//
//   - Filter:       lazy iter.Seq filter, usable with g.Nodes(), g.Edges()
//     or any other sequence.
//   - Predicates:   InBox, InSphere, Below, EvenIndex, Not, And.
//   - Select:       an ordered snapshot of matching nodes (tidwall/btree),
//     with induced-edge enumeration and extraction into a new graph.
//   - RemoveRegion: delete every matching node, compacting ids.
//
// Selections hold node handles, so they go stale with RemoveNode like any
// other handle; take a fresh Select after structural edits.
package subgraph
