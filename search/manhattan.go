package search

import (
	"npuzzle-solver/board"
	"npuzzle-solver/heuristic"
)

// Manhattan adapts heuristic.Manhattan to the Heuristic interface, for
// callers who explicitly want the standalone fallback rather than a
// pattern database — silent fallback is forbidden, so this type makes
// the choice visible at the call site.
type Manhattan struct{}

// H implements Heuristic.
func (Manhattan) H(b board.Board) (int, error) {
	return heuristic.Manhattan(b), nil
}
