// Package search implements IDA* (iterative-deepening A*): repeated
// cost-bounded depth-first search over board.Board states, using an
// admissible Heuristic to prune, until a shortest solution is found.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"npuzzle-solver/board"
	"npuzzle-solver/internal/xerrors"
)

// Heuristic is anything that can lower-bound the number of moves
// remaining from a board to the goal. heuristic.Manhattan (via the
// Manhattan adapter in this package) and *pdb.Database both satisfy it
// directly, so IDA* never special-cases which heuristic source it was
// given — silent fallback is forbidden, so a caller who wants Manhattan
// as a fallback for a PDB miss must say so explicitly by picking that
// Heuristic.
type Heuristic interface {
	H(b board.Board) (int, error)
}

// Options tunes the search. The zero value runs with the baseline
// inverse-move filter only, no path-set cycle pruning — IDA*'s textbook
// form, correct on its own.
type Options struct {
	// CyclePruning additionally rejects any child already on the current
	// DFS path, at O(depth) memory cost, catching cycles longer than one
	// move that the inverse-move filter alone cannot.
	CyclePruning bool
}

// Result is a successful search outcome.
type Result struct {
	// Moves is the shortest legal move sequence from the initial board
	// to the goal.
	Moves []board.Move
	// Expanded counts the nodes IDA* expanded across every bound
	// iteration, for diagnostics.
	Expanded int
	// Bound is the final cost bound the successful iteration ran at,
	// equal to len(Moves) whenever Heuristic is admissible.
	Bound int
}

const infinity = math.MaxInt

// Solve runs IDA* from initial using h as the admissible heuristic,
// returning the shortest move sequence to the canonical goal. It returns
// xerrors.ErrUnsolvable if initial fails the parity check or the search
// space is exhausted, and xerrors.ErrCancelled if ctx is done at a node
// expansion boundary.
func Solve(ctx context.Context, initial board.Board, h Heuristic, opts Options) (Result, error) {
	if initial.IsGoal() {
		return Result{Moves: nil, Bound: 0}, nil
	}
	if !initial.Solvable() {
		return Result{}, xerrors.ErrUnsolvable
	}

	bound, err := h.H(initial)
	if err != nil {
		return Result{}, err
	}

	s := &searcher{
		ctx:  ctx,
		h:    h,
		opts: opts,
		path: []board.Board{initial},
	}
	if opts.CyclePruning {
		s.pathSet = map[uint64]bool{initial.Hash(): true}
	}

	for {
		found, nextBound, err := s.search(0, bound)
		if err != nil {
			return Result{}, err
		}
		if found {
			moves := make([]board.Move, len(s.moves))
			copy(moves, s.moves)
			return Result{Moves: moves, Expanded: s.expanded, Bound: bound}, nil
		}
		if nextBound >= infinity {
			return Result{}, xerrors.ErrUnsolvable
		}
		bound = nextBound
	}
}

// searcher holds the mutable DFS state IDA* threads through recursive
// calls: the board path (for optional cycle pruning), the move sequence
// built up so far, and the node-expansion counter. Threading a mutated
// (path, moves) pair through the recursion rather than allocating fresh
// slices per call keeps IDA*'s auxiliary memory at O(solution length).
type searcher struct {
	ctx      context.Context
	h        Heuristic
	opts     Options
	path     []board.Board
	moves    []board.Move
	pathSet  map[uint64]bool
	expanded int
}

// search explores from the current path's tip at path cost g and bound
// bound. It returns (true, _, nil) on success — the solution is left in
// s.moves — or (false, minExceeded, nil) where minExceeded is the
// smallest f = g+h that pruned a branch, the next iteration's bound.
func (s *searcher) search(g, bound int) (bool, int, error) {
	if err := s.ctx.Err(); err != nil {
		return false, 0, fmt.Errorf("%w: %v", xerrors.ErrCancelled, err)
	}

	current := s.path[len(s.path)-1]
	hv, err := s.h.H(current)
	if err != nil {
		return false, 0, err
	}
	f := g + hv
	if f > bound {
		return false, f, nil
	}
	if hv == 0 {
		return true, 0, nil
	}

	s.expanded++
	minExceeded := infinity

	var prev *board.Move
	if len(s.moves) > 0 {
		prev = &s.moves[len(s.moves)-1]
	}

	for _, m := range current.LegalMoves(prev) {
		next, err := current.Apply(m)
		if err != nil {
			return false, 0, fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
		}

		if s.opts.CyclePruning {
			key := next.Hash()
			if s.pathSet[key] {
				continue
			}
			s.pathSet[key] = true
		}

		s.path = append(s.path, next)
		s.moves = append(s.moves, m)

		found, cost, err := s.search(g+1, bound)

		s.path = s.path[:len(s.path)-1]
		if !found {
			s.moves = s.moves[:len(s.moves)-1]
		}
		if s.opts.CyclePruning {
			delete(s.pathSet, next.Hash())
		}

		if err != nil {
			return false, 0, err
		}
		if found {
			return true, 0, nil
		}
		if cost < minExceeded {
			minExceeded = cost
		}
	}

	return false, minExceeded, nil
}

// IsCancelled reports whether err represents cooperative cancellation,
// convenience for callers that want to distinguish it from other
// failures without importing internal/xerrors directly.
func IsCancelled(err error) bool {
	return errors.Is(err, xerrors.ErrCancelled)
}
