package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshgraph/bfs"
	"github.com/katalvlaran/meshgraph/render"
)

func newRenderCmd(gf *globalFlags) *cobra.Command {
	var (
		out   string
		from  string
		scale float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the mesh as Graphviz DOT or SVG",
		Long: `Write the mesh as Graphviz DOT or SVG.

The output format follows the --out extension (.dot or .svg). With --from,
nodes are coloured by hop count from the node nearest to that point, red at
the start and purple at the far end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := strings.ToLower(filepath.Ext(out))
			if ext != ".dot" && ext != ".svg" {
				return fmt.Errorf("--out: unsupported extension %q (want .dot or .svg)", ext)
			}
			cfg, err := resolveConfig(cmd, gf)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			g, err := buildMesh(cfg, logger)
			if err != nil {
				return err
			}

			opts := render.Options[int, float64]{Scale: scale}
			if from != "" {
				p, err := parseVec(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				maxLen, err := bfs.StoreLengths(g, p, bfs.WithContext(ctx))
				if err != nil {
					return err
				}
				opts.Heat = render.PathHeat[float64](maxLen)
			}

			prog := newProgress(logger)
			data := []byte(render.ToDOT(g, opts))
			if ext == ".svg" {
				if data, err = render.RenderSVG(ctx, string(data)); err != nil {
					return err
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", out, err)
			}
			prog.done(fmt.Sprintf("Rendered %s", out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "mesh.svg", "output file (.dot or .svg)")
	cmd.Flags().StringVar(&from, "from", "", "colour by hop count from x,y[,z]")
	cmd.Flags().Float64Var(&scale, "scale", 8, "inches per unit length")
	return cmd
}

