// Package config loads solver settings from an optional YAML file and
// layers flag.FlagSet overrides on top, the way a small CLI tool's
// configuration typically composes: file first, flags win.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"npuzzle-solver/internal/xerrors"
	"npuzzle-solver/pdb"
)

// Config holds everything cmd/npuzzle needs to build a solver: which PDB
// file to load or build, how its tiles are partitioned into groups, how
// many worker goroutines the builder may use, and which heuristic the
// solver uses ("manhattan", or otherwise the PDB).
type Config struct {
	PDBPath   string  `yaml:"pdb_path"`
	Partition [][]int `yaml:"partition"`
	Workers   int     `yaml:"workers"`
	Heuristic string  `yaml:"heuristic"` // "manhattan" or "pdb"
}

// Default returns the built-in configuration: the canonical 6-6-3
// partition, a pattern.pdb file in the working directory, four builder
// workers, and the PDB heuristic.
func Default() *Config {
	return &Config{
		PDBPath:   "pattern.pdb",
		Partition: groupsToPartition(pdb.DefaultPartition663()),
		Workers:   4,
		Heuristic: "pdb",
	}
}

func groupsToPartition(groups []pdb.Group) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = []int(g)
	}
	return out
}

// Load reads a YAML configuration file at path, starting from Default and
// overriding only the fields the file sets. An empty path returns
// Default() unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config %s: %v", xerrors.ErrInvalidBoard, path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config %s: %v", xerrors.ErrInvalidBoard, path, err)
	}
	return cfg, nil
}

// ApplyFlags registers cmd/npuzzle's shared override flags on fs and
// returns a closure that, once fs.Parse has run, writes any flag actually
// set by the caller back into cfg. Flags win over file values because the
// closure only overwrites fields whose flag was explicitly set.
func ApplyFlags(fs *flag.FlagSet, cfg *Config) func() {
	pdbPath := fs.String("pdb", cfg.PDBPath, "path to the pattern database file")
	workers := fs.Int("workers", cfg.Workers, "number of builder worker goroutines")
	heuristic := fs.String("heuristic", cfg.Heuristic, `heuristic to use: "manhattan" or "pdb"`)

	return func() {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "pdb":
				cfg.PDBPath = *pdbPath
			case "workers":
				cfg.Workers = *workers
			case "heuristic":
				cfg.Heuristic = *heuristic
			}
		})
	}
}

// Groups converts Partition's raw label lists into pdb.Group values,
// sorted and ready for pdb.ValidatePartition or pdb.Build.
func (c *Config) Groups() []pdb.Group {
	groups := make([]pdb.Group, len(c.Partition))
	for i, labels := range c.Partition {
		groups[i] = pdb.NewGroup(labels)
	}
	return groups
}
