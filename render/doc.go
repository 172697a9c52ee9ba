// Package render draws a core.Graph as a Graphviz document.
//
// ToDOT makes one pass over the nodes (each pinned at its X/Y position for
// the neato engine, optionally filled with a heat colour) and one pass over
// the logical edges, so the document has exactly NumEdges() "--" lines.
// RenderSVG lays the document out with the embedded Graphviz build from
// goccy/go-graphviz; no system Graphviz install is needed.
//
// Heat maps t in [0, 1] onto a purple→red ramp; PathHeat adapts the hop
// counts written by bfs.StoreLengths to that ramp.
package render
