package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgraph/core"
)

func newStatsCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge, degree and component counts of the mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, gf)
			if err != nil {
				return err
			}
			g, err := buildMesh(cfg, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), g)
		},
	}
}

// printStats writes a key: value summary of g.
func printStats(w io.Writer, g *core.Graph[int, float64]) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("mesh failed validation: %w", err)
	}
	s := g.Stats()
	fmt.Fprintf(w, "nodes:        %d\n", s.NodeCount)
	fmt.Fprintf(w, "edges:        %d\n", s.EdgeCount)
	fmt.Fprintf(w, "components:   %d\n", s.Components)
	fmt.Fprintf(w, "isolated:     %d\n", s.Isolated)
	fmt.Fprintf(w, "degree:       min %d, max %d, mean %.3f\n", s.MinDegree, s.MaxDegree, s.MeanDegree)
	fmt.Fprintf(w, "total length: %.6f\n", s.TotalLength)
	return nil
}
