package dijkstra_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/core"
	"github.com/katalvlaran/meshgraph/dijkstra"
)

// ExampleDistances finds the shorter of two routes around a square.
func ExampleDistances() {
	g := core.NewGraph[string, float64]()
	a := g.AddNodeWithValue(r3.Vec{}, "a")
	b := g.AddNodeWithValue(r3.Vec{X: 1}, "b")
	c := g.AddNodeWithValue(r3.Vec{X: 1, Y: 1}, "c")
	d := g.AddNodeWithValue(r3.Vec{Y: 3}, "d")
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(a, d)
	g.AddEdge(d, c)

	res, err := dijkstra.Distances(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := res.PathTo(c.Index())
	for _, id := range route {
		fmt.Print(g.Node(id).Value())
	}
	fmt.Printf(" %.1f\n", res.Dist[c.Index()])
	// Output:
	// abc 2.0
}
