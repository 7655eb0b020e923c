package pdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npuzzle-solver/board"
	"npuzzle-solver/pdb"
)

func TestStateAfterMoveMatchesFreshH(t *testing.T) {
	partition := smallPartition()
	db, err := pdb.Build(context.Background(), 3, partition, 2)
	require.NoError(t, err)

	start := board.Goal(3)
	state, err := db.NewState(start)
	require.NoError(t, err)
	require.Equal(t, 0, state.Value())

	b := start
	for _, m := range []board.Move{board.Up, board.Left, board.Up} {
		next, nextState, err := state.AfterMove(b, m)
		require.NoError(t, err)

		want, err := db.H(next)
		require.NoError(t, err)
		assert.Equal(t, want, nextState.Value())

		b, state = next, nextState
	}
}

func TestHRejectsWrongBoardSize(t *testing.T) {
	partition := smallPartition()
	db, err := pdb.Build(context.Background(), 3, partition, 1)
	require.NoError(t, err)

	_, err = db.H(board.Goal(4))
	assert.Error(t, err)
}
