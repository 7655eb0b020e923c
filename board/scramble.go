package board

// Randomizer is the minimal randomness source RandomWalk needs: an
// Intn-shaped call for picking among a small number of legal moves.
// cmd/npuzzle wraps lukechampine.com/frand's package-level Intn in a
// small adapter type to satisfy it; tests can substitute a deterministic
// stub.
type Randomizer interface {
	Intn(n int) int
}

// RandomWalk returns the board reached by taking steps random legal moves
// from the goal state of side n, never immediately undoing the previous
// move. Because it only ever applies legal moves starting from a solved
// board, the result is always solvable by construction — this is the
// scrambler the CLI's "scramble" subcommand and property tests use.
func RandomWalk(n int, steps int, rng Randomizer) Board {
	state := Goal(n)
	var prev *Move
	for i := 0; i < steps; i++ {
		moves := LegalMoves(state, prev)
		m := moves[rng.Intn(len(moves))]
		state = state.MustApply(m)
		prev = &m
	}
	return state
}
