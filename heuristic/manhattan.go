// Package heuristic implements the Manhattan-distance admissible heuristic
// and its incremental update, used both as a standalone fallback and as
// the yardstick pattern-database dominance is checked against.
package heuristic

import "npuzzle-solver/board"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan computes the sum, over every non-blank tile, of the Manhattan
// distance from its current cell to its goal cell.
func Manhattan(b board.Board) int {
	n := b.N()
	sum := 0
	for i := 0; i < n*n; i++ {
		label := b.Label(i)
		if label == 0 {
			continue
		}
		sum += tileDistance(n, i, label)
	}
	return sum
}

// ManhattanGroup restricts Manhattan to the tiles named in group, ignoring
// every other tile (including the blank). Used to verify PDB dominance:
// h_PDB(B) >= h_Manhattan restricted to the same tile set.
func ManhattanGroup(b board.Board, group []int) int {
	inGroup := make(map[int]bool, len(group))
	for _, g := range group {
		inGroup[g] = true
	}
	n := b.N()
	sum := 0
	for i := 0; i < n*n; i++ {
		label := b.Label(i)
		if label == 0 || !inGroup[label] {
			continue
		}
		sum += tileDistance(n, i, label)
	}
	return sum
}

func tileDistance(n, cell, label int) int {
	goal := board.GoalIndex(label)
	r1, c1 := cell/n, cell%n
	r2, c2 := goal/n, goal%n
	return abs(r1-r2) + abs(c1-c2)
}

// Delta returns the change in a tile's individual Manhattan distance
// after it moves from oldCell to newCell, i.e. what must be added to a
// previously-computed Manhattan total to account for that one tile's
// move. This is an O(1) incremental update: a move only ever relocates
// the one tile that swaps with the blank.
func Delta(n, oldCell, newCell, label int) int {
	return tileDistance(n, newCell, label) - tileDistance(n, oldCell, label)
}

// ManhattanAfterMove computes the Manhattan total for the board reached by
// applying m to b, given the Manhattan total of b, in O(1) rather than
// recomputing the full sum. The moved tile is whatever currently sits at
// the cell the blank is about to swap with.
func ManhattanAfterMove(b board.Board, m board.Move, current int) (int, error) {
	next, err := b.Apply(m)
	if err != nil {
		return 0, err
	}
	// The tile that moved now sits where the blank used to be.
	movedLabel := next.Label(b.BlankIndex())
	d := Delta(b.N(), next.BlankIndex(), b.BlankIndex(), movedLabel)
	return current + d, nil
}
