package pdb

import (
	"fmt"
	"sort"

	"npuzzle-solver/board"
	"npuzzle-solver/internal/xerrors"
)

// Group is a non-empty, sorted-ascending set of tile labels drawn from
// 1..N²-1. Sorting fixes the tile order
// Rank/Unrank use, so two Groups built from the same set always hash the
// same way regardless of the order the caller listed labels in.
type Group []int

// NewGroup copies and sorts labels into a Group.
func NewGroup(labels []int) Group {
	g := make(Group, len(labels))
	copy(g, labels)
	sort.Ints(g)
	return g
}

// ValidatePartition checks that groups are pairwise disjoint and their
// union is exactly 1..n²-1.
func ValidatePartition(n int, groups []Group) error {
	size := n * n
	seen := make(map[int]bool, size)
	for gi, g := range groups {
		if len(g) == 0 {
			return fmt.Errorf("%w: group %d is empty", xerrors.ErrBuildFailure, gi)
		}
		for _, label := range g {
			if label < 1 || label >= size {
				return fmt.Errorf("%w: group %d contains out-of-range label %d", xerrors.ErrBuildFailure, gi, label)
			}
			if seen[label] {
				return fmt.Errorf("%w: label %d appears in more than one group", xerrors.ErrBuildFailure, label)
			}
			seen[label] = true
		}
	}
	if len(seen) != size-1 {
		return fmt.Errorf("%w: partition covers %d of %d tile labels", xerrors.ErrBuildFailure, len(seen), size-1)
	}
	return nil
}

// Project returns, for each label in g (in g's sorted order), the cell of
// b currently holding that label. This is the pattern-state key Rank
// hashes.
func Project(b board.Board, g Group) []int {
	cellOf := make([]int, len(g))
	for i, label := range g {
		cellOf[i] = b.CellOf(label)
	}
	return cellOf
}

// DefaultPartition663 is the canonical 6-6-3 partition for the 15-puzzle
// grouping tiles by board region.
func DefaultPartition663() []Group {
	return []Group{
		NewGroup([]int{1, 2, 3, 4, 5, 6}),
		NewGroup([]int{7, 8, 9, 10, 11, 12}),
		NewGroup([]int{13, 14, 15}),
	}
}

// DefaultPartition555 is the balanced 5-5-5 partition.
func DefaultPartition555() []Group {
	return []Group{
		NewGroup([]int{1, 2, 3, 4, 7}),
		NewGroup([]int{5, 6, 9, 10, 13}),
		NewGroup([]int{8, 11, 12, 14, 15}),
	}
}

// DefaultPartition78 is the stronger, larger 7-8 partition.
func DefaultPartition78() []Group {
	return []Group{
		NewGroup([]int{1, 2, 3, 4, 5, 6, 7}),
		NewGroup([]int{8, 9, 10, 11, 12, 13, 14, 15}),
	}
}
