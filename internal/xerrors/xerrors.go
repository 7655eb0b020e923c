// Package xerrors holds the sentinel error kinds shared across the solver's
// packages, so callers can use errors.Is regardless of which layer surfaced
// the failure.
package xerrors

import "errors"

var (
	// ErrInvalidBoard means the input labels are not a permutation of
	// 0..N²-1.
	ErrInvalidBoard = errors.New("invalid board: not a permutation")

	// ErrIllegalMove means a move was applied that is not legal from the
	// board's current blank position. Fatal: callers should only ever
	// apply moves drawn from LegalMoves.
	ErrIllegalMove = errors.New("illegal move for current blank position")

	// ErrUnsolvable means the parity check failed or the search space
	// was exhausted without reaching the goal.
	ErrUnsolvable = errors.New("puzzle is not solvable")

	// ErrMissingPDB means the pattern database file could not be found
	// or opened.
	ErrMissingPDB = errors.New("pattern database file not found")

	// ErrCorruptPDB means the pattern database file failed header or
	// entry validation.
	ErrCorruptPDB = errors.New("pattern database file is corrupt")

	// ErrIncompatibleN means the loaded pattern database was built for a
	// different board side than requested.
	ErrIncompatibleN = errors.New("pattern database board size mismatch")

	// ErrBuildFailure means the builder hit an internal inconsistency
	// (allocation failure, impossible state). Fatal: indicates a
	// programmer error, not bad input.
	ErrBuildFailure = errors.New("pattern database build failed")

	// ErrCancelled means a cooperative cancellation signal was observed.
	ErrCancelled = errors.New("search cancelled")
)
