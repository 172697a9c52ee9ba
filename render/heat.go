package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshgraph/core"
)

// Heat returns a Graphviz HSV colour for t, clamped to [0, 1]:
// 0 is purple, 1 is red. NaN maps to 0.
func Heat(t float64) string {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return fmt.Sprintf("%.3f 1.000 1.000", 0.75*(1-t))
}

// PathHeat colours nodes by the hop count stored in their payload: the root
// is red and nodes at maxLen are purple. A non-positive maxLen paints every
// node red.
func PathHeat[E any](maxLen int) func(core.Node[int, E]) float64 {
	return func(n core.Node[int, E]) float64 {
		if maxLen <= 0 {
			return 1
		}
		return 1 - float64(n.Value())/float64(maxLen)
	}
}
