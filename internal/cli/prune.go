package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgraph/subgraph"
)

func newPruneCmd(gf *globalFlags) *cobra.Command {
	var sphere string
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove every node inside a sphere and report the remaining mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := parseSphere(sphere)
			if err != nil {
				return fmt.Errorf("--sphere: %w", err)
			}
			cfg, err := resolveConfig(cmd, gf)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			g, err := buildMesh(cfg, logger)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			removed := subgraph.RemoveRegion(g, subgraph.InSphere[int, float64](c, r))
			prog.done(fmt.Sprintf("Removed %d nodes", removed))

			fmt.Fprintf(cmd.OutOrStdout(), "removed:      %d\n", removed)
			return printStats(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().StringVar(&sphere, "sphere", "", "region to remove: cx,cy,cz,r")
	_ = cmd.MarkFlagRequired("sphere")
	return cmd
}

