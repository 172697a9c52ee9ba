package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/meshgraph/builder"
	"github.com/katalvlaran/meshgraph/core"
)

// ErrBadConfig is returned for configuration values no mesh can be built from.
var ErrBadConfig = errors.New("cli: invalid configuration")

// Config is the TOML document read by --config.
//
//	[mesh]
//	rows    = 20
//	cols    = 20
//	pattern = "quad"   # or "complete"
//	spacing = 0.05     # 0 fits the unit square
//	seed    = 1
//	jitter  = 0.0
type Config struct {
	Mesh MeshConfig `toml:"mesh"`
}

// MeshConfig describes the synthetic lattice every command operates on.
type MeshConfig struct {
	Rows    int     `toml:"rows"`
	Cols    int     `toml:"cols"`
	Pattern string  `toml:"pattern"`
	Spacing float64 `toml:"spacing"`
	Seed    uint64  `toml:"seed"`
	Jitter  float64 `toml:"jitter"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Mesh: MeshConfig{Rows: 10, Cols: 10, Pattern: "complete"}}
}

// LoadConfig decodes path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrBadConfig, undec[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the mesh section.
func (c Config) Validate() error {
	m := c.Mesh
	switch {
	case m.Rows < builder.MinGridDim || m.Cols < builder.MinGridDim:
		return fmt.Errorf("%w: mesh is %dx%d, need at least %dx%d", ErrBadConfig, m.Rows, m.Cols, builder.MinGridDim, builder.MinGridDim)
	case m.Spacing < 0:
		return fmt.Errorf("%w: negative spacing %v", ErrBadConfig, m.Spacing)
	case m.Jitter < 0:
		return fmt.Errorf("%w: negative jitter %v", ErrBadConfig, m.Jitter)
	}
	if _, err := builder.ParsePattern(m.Pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return nil
}

// buildMesh builds the configured lattice with node values = 0 and edge
// values = edge length.
func buildMesh(c Config, logger *log.Logger) (*core.Graph[int, float64], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m := c.Mesh
	pattern, _ := builder.ParsePattern(m.Pattern)
	bopts := []builder.BuilderOption{builder.WithPattern(pattern)}
	if m.Spacing > 0 {
		bopts = append(bopts, builder.WithSpacing(m.Spacing))
	}
	if m.Seed != 0 || m.Jitter > 0 {
		bopts = append(bopts, builder.WithSeed(m.Seed))
	}
	if m.Jitter > 0 {
		bopts = append(bopts, builder.WithJitter(m.Jitter))
	}

	prog := newProgress(logger)
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLogger(logger), core.WithCapacity(m.Rows * m.Cols)},
		bopts,
		builder.Grid[int, float64](m.Rows, m.Cols),
		builder.EdgeValues(func(e core.Edge[int, float64]) float64 { return e.Length() }),
	)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Built %s mesh %dx%d: %d nodes, %d edges", pattern, m.Rows, m.Cols, g.Size(), g.NumEdges()))
	return g, nil
}
