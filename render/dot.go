package render

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/meshgraph/core"
)

// Options configures DOT output.
type Options[V, E any] struct {
	// Name is the graph identifier. Default "mesh".
	Name string
	// Scale converts position units to inches. Default 1.
	Scale float64
	// Heat, when set, fills each node with Heat(Heat(n)).
	Heat func(core.Node[V, E]) float64
	// Label, when set, labels each node; otherwise nodes are drawn as points.
	Label func(core.Node[V, E]) string
}

// ToDOT converts g to an undirected Graphviz document for the neato engine.
// Node k is named "n<k>" and pinned at (X, Y)·Scale; Z is ignored.
// The output can be rendered with RenderSVG.
func ToDOT[V, E any](g *core.Graph[V, E], opts Options[V, E]) string {
	name := opts.Name
	if name == "" {
		name = "mesh"
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", name)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Label == nil {
		buf.WriteString("  node [shape=point, width=0.08, style=filled, fillcolor=black];\n")
	} else {
		buf.WriteString("  node [shape=circle, fontsize=10, style=filled, fillcolor=white];\n")
	}
	buf.WriteString("\n")

	if g == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	for it := g.NodeBegin(); !it.Done(); it.Next() {
		n := it.Node()
		p := n.Position()
		fmt.Fprintf(&buf, "  n%d [pos=\"%.4f,%.4f!\"", n.Index(), p.X*scale, p.Y*scale)
		if opts.Label != nil {
			fmt.Fprintf(&buf, ", label=%q", opts.Label(n))
		}
		if opts.Heat != nil {
			c := Heat(opts.Heat(n))
			fmt.Fprintf(&buf, ", fillcolor=%q, color=%q", c, c)
		}
		buf.WriteString("];\n")
	}

	buf.WriteString("\n")
	for it := g.EdgeBegin(); !it.Done(); it.Next() {
		e := it.Edge()
		fmt.Fprintf(&buf, "  n%d -- n%d;\n", e.Node1().Index(), e.Node2().Index())
	}

	buf.WriteString("}\n")
	return buf.String()
}
