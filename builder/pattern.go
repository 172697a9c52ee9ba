// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"
)

// Pattern selects which corner pairs of a 4-corner cell become edges.
type Pattern int

const (
	// PatternComplete connects all 6 corner pairs (tetrahedral cells).
	PatternComplete Pattern = iota
	// PatternQuad connects the square boundary 0-1, 0-2, 1-3, 2-3.
	PatternQuad
)

var (
	completePairs = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	quadPairs     = [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
)

// pairs returns the corner pairs for p, in emission order.
func (p Pattern) pairs() [][2]int {
	if p == PatternQuad {
		return quadPairs
	}

	return completePairs
}

// String returns the config-file name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternComplete:
		return "complete"
	case PatternQuad:
		return "quad"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// ParsePattern maps a config-file name ("complete", "quad", or "tet" as an
// alias of complete) to a Pattern. Unknown names wrap ErrOptionViolation.
func ParsePattern(name string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "complete", "tet", "":
		return PatternComplete, nil
	case "quad":
		return PatternQuad, nil
	default:
		return 0, fmt.Errorf("ParsePattern: %q: %w", name, ErrOptionViolation)
	}
}
