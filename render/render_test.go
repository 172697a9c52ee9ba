package render_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshgraph/bfs"
	"github.com/katalvlaran/meshgraph/builder"
	"github.com/katalvlaran/meshgraph/core"
	"github.com/katalvlaran/meshgraph/render"
)

type N = core.Node[int, float64]

func tetGrid(t *testing.T) *core.Graph[int, float64] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid[int, float64](4, 4))
	require.NoError(t, err)
	return g
}

func TestHeat(t *testing.T) {
	require.Equal(t, "0.750 1.000 1.000", render.Heat(0))
	require.Equal(t, "0.000 1.000 1.000", render.Heat(1))
	require.Equal(t, "0.375 1.000 1.000", render.Heat(0.5))
	require.Equal(t, render.Heat(0), render.Heat(-3))
	require.Equal(t, render.Heat(1), render.Heat(7))
}

func TestToDOT_Counts(t *testing.T) {
	g := tetGrid(t)
	g.RemoveNode(g.Node(5))
	dot := render.ToDOT(g, render.Options[int, float64]{})

	require.True(t, strings.HasPrefix(dot, "graph \"mesh\" {\n"))
	require.Equal(t, g.NumEdges(), strings.Count(dot, " -- "))
	require.Equal(t, g.Size(), strings.Count(dot, "pos=\""))
	require.NotContains(t, dot, "->")
	require.Contains(t, dot, "n0 [pos=\"0.0000,0.0000!\"];")

	for e := range g.Edges() {
		require.Contains(t, dot, "  n"+strconv.Itoa(e.Node1().Index())+" -- n"+strconv.Itoa(e.Node2().Index())+";\n")
	}
}

func TestToDOT_Options(t *testing.T) {
	g := tetGrid(t)
	maxLen, err := bfs.StoreLengths(g, r3.Vec{})
	require.NoError(t, err)

	dot := render.ToDOT(g, render.Options[int, float64]{
		Name:  "paths",
		Scale: 3,
		Heat:  render.PathHeat[float64](maxLen),
		Label: func(n N) string { return strconv.Itoa(n.Value()) },
	})
	require.True(t, strings.HasPrefix(dot, "graph \"paths\" {\n"))
	require.Contains(t, dot, "n15 [pos=\"3.0000,3.0000!\", label=\"3\"")
	require.Contains(t, dot, "n0 [pos=\"0.0000,0.0000!\", label=\"0\", fillcolor=\"0.000 1.000 1.000\"")
	require.Contains(t, dot, "shape=circle")

	require.Equal(t, "graph \"mesh\" {\n  layout=neato;\n  bgcolor=\"transparent\";\n  node [shape=point, width=0.08, style=filled, fillcolor=black];\n\n}\n",
		render.ToDOT[int, float64](nil, render.Options[int, float64]{}))
}

func TestPathHeat(t *testing.T) {
	g := core.NewGraph[int, float64]()
	n := g.AddNodeWithValue(r3.Vec{}, 2)
	require.InDelta(t, 0.5, render.PathHeat[float64](4)(n), 1e-12)
	require.Equal(t, 1.0, render.PathHeat[float64](0)(n))
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	g := tetGrid(t)
	svg, err := render.RenderSVG(context.Background(), render.ToDOT(g, render.Options[int, float64]{Scale: 2}))
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
}

