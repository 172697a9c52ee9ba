package core_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with string labels on nodes and no edge payload:
	g := core.NewGraph[string, struct{}]()

	// 2) Add three nodes and two edges:
	a := g.AddNodeWithValue(r3.Vec{X: 0}, "a")
	b := g.AddNodeWithValue(r3.Vec{X: 1}, "b")
	c := g.AddNodeWithValue(r3.Vec{X: 2}, "c")
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	fmt.Println("nodes:", g.Size(), "edges:", g.NumEdges(), "deg(b):", b.Degree())

	// 3) Remove a; the last node (c) takes over id 0:
	g.RemoveNode(a)
	fmt.Println("node 0 is now", g.Node(0).Value())
	fmt.Println("edge b-c survives:", g.HasEdge(g.Node(0), g.Node(1)))

	// Output:
	// nodes: 3 edges: 2 deg(b): 2
	// node 0 is now c
	// edge b-c survives: true
}

// ExampleGraph_Edges shows that every undirected edge is reported once,
// from its lower id.
func ExampleGraph_Edges() {
	g := core.NewGraph[int, float64]()
	for i := 0; i < 4; i++ {
		g.AddNode(r3.Vec{X: float64(i)})
	}
	g.AddEdge(g.Node(3), g.Node(0))
	g.AddEdge(g.Node(2), g.Node(1))
	g.AddEdge(g.Node(0), g.Node(2))

	for e := range g.Edges() {
		fmt.Println(e.Node1().Index(), "--", e.Node2().Index())
	}

	// Output:
	// 0 -- 3
	// 0 -- 2
	// 1 -- 2
}

// ExampleEdge_SetValueBoth contrasts per-direction and two-sided writes.
func ExampleEdge_SetValueBoth() {
	g := core.NewGraph[int, float64]()
	e := g.AddEdge(g.AddNode(r3.Vec{}), g.AddNode(r3.Vec{X: 3, Y: 4}))

	e.SetValue(e.Length())
	fmt.Println(e.Value(), e.Dual().Value())

	e.SetValueBoth(1)
	fmt.Println(e.Value(), e.Dual().Value())

	// Output:
	// 5 0
	// 1 1
}

// ExampleGraph_RemoveNodesWhere removes the nodes above a plane.
func ExampleGraph_RemoveNodesWhere() {
	g := core.NewGraph[int, float64]()
	for i := 0; i < 6; i++ {
		g.AddNodeWithValue(r3.Vec{Z: float64(i)}, i)
	}
	removed := g.RemoveNodesWhere(func(n core.Node[int, float64]) bool {
		return n.Position().Z > 2.5
	})
	fmt.Println("removed", removed, "left", g.Size())

	// Output:
	// removed 3 left 3
}
