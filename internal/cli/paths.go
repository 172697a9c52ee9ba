package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgraph/bfs"
	"github.com/katalvlaran/meshgraph/dijkstra"
)

func newPathsCmd(gf *globalFlags) *cobra.Command {
	var (
		from     string
		maxDepth int
		geodesic bool
	)
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Compute hop counts from the node nearest to a point",
		Long: `Compute hop counts from the node nearest to a point.

The longest path length and a histogram of nodes per hop count are printed.
With --geodesic the Euclidean shortest-path distance to the farthest node is
reported as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseVec(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
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
			res, err := bfs.PathLengths(g, p, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Visited %d of %d nodes", len(res.Order), g.Size()))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "root:      %d %v\n", res.Root, g.Node(res.Root).Position())
			fmt.Fprintf(w, "max:       %d\n", res.Max)
			hist := make([]int, res.Max+1)
			unreached := 0
			for _, d := range res.Depth {
				if d == bfs.Unreached {
					unreached++
					continue
				}
				hist[d]++
			}
			for d, c := range hist {
				fmt.Fprintf(w, "depth %3d: %d\n", d, c)
			}
			fmt.Fprintf(w, "unreached: %d\n", unreached)

			if geodesic {
				dres, err := dijkstra.Distances(g, g.Node(res.Root))
				if err != nil {
					return err
				}
				id, dist := dres.Farthest()
				fmt.Fprintf(w, "farthest:  %d at %.6f\n", id, dist)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0,0", "start point x,y[,z]")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop at this hop count (0 = no limit)")
	cmd.Flags().BoolVar(&geodesic, "geodesic", false, "also report Euclidean shortest-path distance")
	return cmd
}
