package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npuzzle-solver/board"
	"npuzzle-solver/heuristic"
)

func TestManhattanZeroAtGoal(t *testing.T) {
	assert.Equal(t, 0, heuristic.Manhattan(board.Goal(4)))
}

func TestManhattanKnownValue(t *testing.T) {
	// One tile out of place by one swap with the blank has Manhattan
	// distance 1.
	b, err := board.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 13, 14, 15, 12})
	require.NoError(t, err)
	assert.Equal(t, 1, heuristic.Manhattan(b))
}

func TestManhattanGroupRestriction(t *testing.T) {
	b, err := board.New([]int{2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0})
	require.NoError(t, err)
	full := heuristic.Manhattan(b)
	restricted := heuristic.ManhattanGroup(b, []int{1, 2})
	assert.Equal(t, full, restricted, "only tiles 1 and 2 are displaced")

	none := heuristic.ManhattanGroup(b, []int{9, 10})
	assert.Equal(t, 0, none)
}

func TestManhattanAfterMoveMatchesRecompute(t *testing.T) {
	b := board.Goal(4)
	for _, m := range b.LegalMoves(nil) {
		before := heuristic.Manhattan(b)
		got, err := heuristic.ManhattanAfterMove(b, m, before)
		require.NoError(t, err)

		next, err := b.Apply(m)
		require.NoError(t, err)
		want := heuristic.Manhattan(next)
		assert.Equal(t, want, got)
	}
}
