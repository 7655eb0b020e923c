package console_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npuzzle-solver/board"
	"npuzzle-solver/console"
)

func TestReadBoardParsesLine(t *testing.T) {
	in := strings.NewReader("1 2 3 4 5 6 7 8 0\n")
	b, err := console.ReadBoard(in)
	require.NoError(t, err)
	assert.Equal(t, 3, b.N())
	assert.Equal(t, 8, b.BlankIndex())
}

func TestReadBoardRejectsGarbage(t *testing.T) {
	in := strings.NewReader("not a board\n")
	_, err := console.ReadBoard(in)
	assert.Error(t, err)
}

func TestReadBoardRejectsEmptyInput(t *testing.T) {
	in := strings.NewReader("\n")
	_, err := console.ReadBoard(in)
	assert.Error(t, err)
}

func TestRenderBoardBorderWidthMatchesColumns(t *testing.T) {
	b, err := board.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)

	var sb strings.Builder
	console.RenderBoard(&sb, b)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 7) // border, (row, sep) x2, row, border
	for _, l := range lines {
		assert.Equal(t, len(lines[0]), len(l), "all lines must share the border width")
	}
}

func TestRenderMovesJoinsWithArrows(t *testing.T) {
	var sb strings.Builder
	console.RenderMoves(&sb, []board.Move{board.Up, board.Right, board.Down})
	assert.Equal(t, "U -> R -> D\n", sb.String())
}

func TestRenderMovesEmptySequence(t *testing.T) {
	var sb strings.Builder
	console.RenderMoves(&sb, nil)
	assert.Equal(t, "\n", sb.String())
}
