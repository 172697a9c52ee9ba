// Package cli implements the meshgraph command-line interface.
//
// Every command builds the lattice described by the [mesh] section of a TOML
// config (or the defaults), then runs one operation over it:
//   - stats:  size, degree and connectivity summary
//   - paths:  hop counts (and optionally geodesic distances) from a point
//   - prune:  remove a spherical region and report what is left
//   - render: write the mesh as Graphviz DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces the container's own structural debug lines. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	config  string
	rows    int
	cols    int
	pattern string
}

// Execute runs the meshgraph CLI with os.Args and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Results go to out, logs to logw.
func NewRootCommand(out, logw io.Writer) *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:          "meshgraph",
		Short:        "meshgraph builds and analyses planar and tetrahedral meshes",
		Long:         `meshgraph builds a lattice mesh from a TOML description and runs graph operations over it: statistics, path lengths, region pruning and rendering.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if gf.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(logw, level)))
		},
	}
	root.SetOut(out)
	root.SetVersionTemplate(fmt.Sprintf("meshgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&gf.config, "config", "c", "", "TOML mesh configuration file")
	pf.IntVar(&gf.rows, "rows", 0, "override [mesh] rows")
	pf.IntVar(&gf.cols, "cols", 0, "override [mesh] cols")
	pf.StringVar(&gf.pattern, "pattern", "", "override [mesh] pattern: complete, quad")

	root.AddCommand(newStatsCmd(&gf))
	root.AddCommand(newPathsCmd(&gf))
	root.AddCommand(newPruneCmd(&gf))
	root.AddCommand(newRenderCmd(&gf))

	return root
}

// resolveConfig loads --config (or the defaults) and applies flag overrides.
func resolveConfig(cmd *cobra.Command, gf *globalFlags) (Config, error) {
	cfg := DefaultConfig()
	if gf.config != "" {
		var err error
		if cfg, err = LoadConfig(gf.config); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Mesh.Rows = gf.rows
	}
	if flags.Changed("cols") {
		cfg.Mesh.Cols = gf.cols
	}
	if flags.Changed("pattern") {
		cfg.Mesh.Pattern = gf.pattern
	}
	return cfg, cfg.Validate()
}
