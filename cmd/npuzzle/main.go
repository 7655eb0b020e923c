// Command npuzzle is the thin console front end over the solver core: it
// wires config, console, board, pdb and search together behind three
// subcommands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"npuzzle-solver/board"
	"npuzzle-solver/config"
	"npuzzle-solver/console"
	"npuzzle-solver/internal/xerrors"
	"npuzzle-solver/pdb"
	"npuzzle-solver/search"
)

const (
	exitOK             = 0
	exitInvalidInput   = 1
	exitPDBUnavailable = 2
	exitUnsolvable     = 3
	exitCancelled      = 4
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: npuzzle <solve|build-pdb|scramble> [flags]")
		os.Exit(exitInvalidInput)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var code int
	switch os.Args[1] {
	case "solve":
		code = runSolve(ctx, os.Args[2:])
	case "build-pdb":
		code = runBuildPDB(ctx, os.Args[2:])
	case "scramble":
		code = runScramble(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		code = exitInvalidInput
	}
	os.Exit(code)
}

func runSolve(ctx context.Context, args []string) int {
	// config.ApplyFlags needs the loaded Config to seed its flags'
	// defaults, but which file to load is itself a flag, so -config is
	// parsed from a minimal pre-scan before the full flag set is built.
	configPath := prescanConfigFlag(args)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		return exitInvalidInput
	}

	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	fs.String("config", configPath, "path to a YAML config file")
	commit := config.ApplyFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}
	commit()

	b, err := console.ReadBoard(os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("reading board")
		return exitInvalidInput
	}

	h, err := loadHeuristic(cfg, b.N())
	if err != nil {
		log.Error().Err(err).Msg("loading heuristic")
		return exitPDBUnavailable
	}

	res, err := search.Solve(ctx, b, h, search.Options{})
	switch {
	case err == nil:
		console.RenderMoves(os.Stdout, res.Moves)
		return exitOK
	case errors.Is(err, xerrors.ErrUnsolvable):
		fmt.Fprintln(os.Stderr, "unsolvable")
		return exitUnsolvable
	case search.IsCancelled(err):
		fmt.Fprintln(os.Stderr, "cancelled")
		return exitCancelled
	default:
		log.Error().Err(err).Msg("solving")
		return exitInvalidInput
	}
}

func runBuildPDB(ctx context.Context, args []string) int {
	configPath := prescanConfigFlag(args)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		return exitInvalidInput
	}

	fs := flag.NewFlagSet("build-pdb", flag.ExitOnError)
	fs.String("config", configPath, "path to a YAML config file")
	n := fs.Int("n", 4, "board side length")
	partitionSpec := fs.String("partition", "", "comma-separated group sizes, filled from tile label 1 upward (defaults to the config file's partition)")
	out := fs.String("out", cfg.PDBPath, "output file path")
	workers := fs.Int("workers", cfg.Workers, "builder worker goroutines")
	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}

	var partition []pdb.Group
	if *partitionSpec == "" {
		partition = cfg.Groups()
	} else {
		sizes, err := parseSizes(*partitionSpec)
		if err != nil {
			log.Error().Err(err).Msg("parsing partition")
			return exitInvalidInput
		}
		partition, err = sizesToPartition(*n, sizes)
		if err != nil {
			log.Error().Err(err).Msg("building partition")
			return exitInvalidInput
		}
	}

	log.Info().Int("n", *n).Int("groups", len(partition)).Int("workers", *workers).Msg("building pattern database")
	db, err := pdb.Build(ctx, *n, partition, *workers)
	if err != nil {
		if search.IsCancelled(err) {
			return exitCancelled
		}
		log.Error().Err(err).Msg("building")
		return exitInvalidInput
	}
	if err := db.Save(*out, *workers); err != nil {
		log.Error().Err(err).Msg("saving")
		return exitInvalidInput
	}
	log.Info().Str("path", *out).Msg("pattern database written")
	return exitOK
}

func runScramble(args []string) int {
	fs := flag.NewFlagSet("scramble", flag.ExitOnError)
	n := fs.Int("n", 4, "board side length")
	steps := fs.Int("steps", 100, "number of random legal moves from the goal state")
	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}
	b := board.RandomWalk(*n, *steps, frandRandomizer{})
	console.RenderBoard(os.Stdout, b)
	fmt.Println(b.String())
	return exitOK
}

// frandRandomizer adapts lukechampine.com/frand's package-level Intn to
// board.Randomizer, so scrambling draws from frand's faster, still
// cryptographically sound source instead of a manually seeded math/rand.
type frandRandomizer struct{}

func (frandRandomizer) Intn(n int) int { return frand.Intn(n) }

func loadHeuristic(cfg *config.Config, n int) (search.Heuristic, error) {
	if cfg.Heuristic == "manhattan" {
		return search.Manhattan{}, nil
	}
	db, err := pdb.Load(cfg.PDBPath, n)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.PDBPath, err)
	}
	return db, nil
}

// prescanConfigFlag extracts -config's value from args without a full
// flag.Parse, since the rest of solve's flags depend on the config file
// having already been loaded.
func prescanConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

func parseSizes(spec string) ([]int, error) {
	fields := strings.Split(spec, ",")
	sizes := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: group size %q is not an integer", xerrors.ErrInvalidBoard, f)
		}
		sizes[i] = v
	}
	return sizes, nil
}

// sizesToPartition fills consecutive tile labels 1..n²-1 into groups of
// the requested sizes, in order — the "6,6,3" shorthand the named
// partitions follow.
func sizesToPartition(n int, sizes []int) ([]pdb.Group, error) {
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total != n*n-1 {
		return nil, fmt.Errorf("%w: partition sizes sum to %d, want %d", xerrors.ErrBuildFailure, total, n*n-1)
	}
	groups := make([]pdb.Group, len(sizes))
	label := 1
	for i, s := range sizes {
		labels := make([]int, s)
		for j := 0; j < s; j++ {
			labels[j] = label
			label++
		}
		groups[i] = pdb.NewGroup(labels)
	}
	return groups, nil
}
