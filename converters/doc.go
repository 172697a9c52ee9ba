// Package converters adapts core.Graph to gonum's graph interfaces.
//
// Two forms are offered:
//
//   - Undirected: a live, zero-copy view implementing graph.Undirected,
//     graph.Weighted and graph.WeightedUndirected. Node ids map 1:1 to gonum
//     int64 ids; the view reflects later mutations of the container, including
//     the renumbering done by RemoveNode.
//   - ToSimple: a snapshot copy into *simple.WeightedUndirectedGraph.
//
// Edge weights are Euclidean edge lengths. Weight(x, x) is 0 for a live
// node; absent edges report +Inf.
//
// Use the live view for algorithms that only read (gonum's path, topo and
// traverse packages); take a snapshot when the core graph will be mutated
// while the gonum side is still in use.
package converters
