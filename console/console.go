// Package console implements the text input/output format the puzzle's
// front ends read and write: a single line of whitespace-separated
// integers in, an ASCII box-drawn board and a move-sequence line out.
// Kept outside the solver core so board, heuristic, pdb and search stay
// free of any text-formatting concern.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"npuzzle-solver/board"
	"npuzzle-solver/internal/xerrors"
)

// ReadBoard reads one line of whitespace-separated integers from r and
// parses it into a Board, in the row-major, 0-for-blank layout
// original_source/play_console.py's parse_input expects.
func ReadBoard(r io.Reader) (board.Board, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return board.Board{}, fmt.Errorf("%w: %v", xerrors.ErrInvalidBoard, err)
		}
		return board.Board{}, fmt.Errorf("%w: no input line", xerrors.ErrInvalidBoard)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return board.Board{}, fmt.Errorf("%w: empty input line", xerrors.ErrInvalidBoard)
	}
	return board.Parse(fields)
}

// RenderBoard writes an ASCII box-drawn grid of b to w, columns sized to
// the widest label and blank cells left empty, matching
// original_source/play_console.py's print_board layout.
func RenderBoard(w io.Writer, b board.Board) {
	n := b.N()
	maxLabel := n*n - 1
	colWidth := len(strconv.Itoa(maxLabel)) + 2
	border := "+" + strings.Repeat("-", colWidth*n+n-1) + "+"

	fmt.Fprintln(w, border)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		sb.WriteByte('|')
		for col := 0; col < n; col++ {
			label := b.Label(row*n + col)
			sb.WriteString(centeredCell(label, colWidth))
			if col < n-1 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('|')
		fmt.Fprintln(w, sb.String())
		if row < n-1 {
			fmt.Fprintln(w, "|"+strings.Repeat("-", colWidth*n+n-1)+"|")
		}
	}
	fmt.Fprintln(w, border)
}

func centeredCell(label, colWidth int) string {
	if label == 0 {
		return strings.Repeat(" ", colWidth)
	}
	s := strconv.Itoa(label)
	pad := colWidth - len(s)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// RenderMoves writes moves to w as an arrow-joined sequence of their
// single-letter direction codes, e.g. "U -> R -> R -> D".
func RenderMoves(w io.Writer, moves []board.Move) {
	labels := make([]string, len(moves))
	for i, m := range moves {
		labels[i] = m.String()
	}
	fmt.Fprintln(w, strings.Join(labels, " -> "))
}
