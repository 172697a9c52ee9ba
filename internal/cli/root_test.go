package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and the log stream.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCommand(&out, &logs)
	root.SetArgs(args)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	require.Equal(t, "1.0.0", version)
	require.Equal(t, "abc123", commit)
	require.Equal(t, "2024-01-01", date)
	SetVersion("", "", "")
}

func TestStatsCommand(t *testing.T) {
	out, logs, err := run(t, "stats", "--rows", "3", "--cols", "3", "--pattern", "quad")
	require.NoError(t, err)
	require.Contains(t, out, "nodes:        9\n")
	require.Contains(t, out, "edges:        12\n")
	require.Contains(t, out, "components:   1\n")
	require.Contains(t, out, "degree:       min 2, max 4, mean 2.667\n")
	require.Contains(t, out, "total length: 6.000000\n")
	require.Contains(t, logs, "Built quad mesh 3x3")
}

func TestStatsCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.toml")
	require.NoError(t, os.WriteFile(path, []byte("[mesh]\nrows = 2\ncols = 2\npattern = \"complete\"\n"), 0o644))

	out, _, err := run(t, "--config", path, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "edges:        6\n")

	out, _, err = run(t, "--config", path, "--rows", "3", "stats")
	require.NoError(t, err)
	require.Contains(t, out, "nodes:        6\n", "flags override the file")

	_, _, err = run(t, "stats", "--rows", "1")
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestPathsCommand(t *testing.T) {
	out, _, err := run(t, "paths", "--rows", "3", "--cols", "3", "--pattern", "quad", "--from", "-1,-1", "--geodesic")
	require.NoError(t, err)
	require.Contains(t, out, "root:      0 ")
	require.Contains(t, out, "max:       4\n")
	require.Contains(t, out, "depth   2: 3\n")
	require.Contains(t, out, "unreached: 0\n")
	require.Contains(t, out, "farthest:  8 at 2.000000\n")

	out, _, err = run(t, "paths", "--rows", "3", "--cols", "3", "--pattern", "quad", "--max-depth", "1")
	require.NoError(t, err)
	require.Contains(t, out, "unreached: 6\n")

	_, _, err = run(t, "paths", "--from", "x")
	require.Error(t, err)
}

func TestPruneCommand(t *testing.T) {
	out, logs, err := run(t, "-v", "prune", "--rows", "3", "--cols", "3", "--pattern", "quad", "--sphere", "0.5,0.5,0,0.1")
	require.NoError(t, err)
	require.Contains(t, out, "removed:      1\n")
	require.Contains(t, out, "nodes:        8\n")
	require.Contains(t, out, "edges:        8\n")
	require.Contains(t, logs, "remove node", "verbose surfaces container debug lines")

	_, _, err = run(t, "prune")
	require.Error(t, err, "--sphere is required")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	dot := filepath.Join(dir, "mesh.dot")
	out, _, err := run(t, "render", "--rows", "3", "--cols", "4", "--pattern", "quad", "--from", "0,0", "--out", dot)
	require.NoError(t, err)
	require.Equal(t, dot+"\n", out)

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	require.Equal(t, 17, strings.Count(string(data), " -- "))
	require.Contains(t, string(data), "fillcolor=")

	_, _, err = run(t, "render", "--out", filepath.Join(dir, "mesh.png"))
	require.Error(t, err)
}
