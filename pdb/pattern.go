// Package pdb implements additive disjoint pattern databases: building
// them via per-group 0-1 BFS (this file's Rank/Unrank supply the perfect
// hash the BFS and the runtime lookup share), persisting them to a
// self-describing binary file, and using them as an admissible search
// heuristic.
package pdb

// TableSize returns P(nCells, g), the number of distinct injections of a
// g-tile group into nCells cells — the size of that group's pattern
// table.
func TableSize(nCells, g int) uint64 {
	var size uint64 = 1
	for i := 0; i < g; i++ {
		size *= uint64(nCells - i)
	}
	return size
}

// Rank computes the stable perfect-hash index of a pattern state: cellOf
// gives, for each group tile in a fixed order (the caller's Group keeps
// its labels sorted ascending), the cell index that tile currently
// occupies. The construction is the standard variation-number-system
// ranking: walk the fixed cell order, and for each
// tile in turn emit its rank among cells not yet claimed by an
// earlier tile, folding it into a mixed-radix accumulator.
func Rank(nCells int, cellOf []int) uint64 {
	g := len(cellOf)
	var used [64]bool // nCells never exceeds MaxN*MaxN = 36 in this package
	var rank uint64
	for i := 0; i < g; i++ {
		idx := 0
		for c := 0; c < cellOf[i]; c++ {
			if !used[c] {
				idx++
			}
		}
		rank = rank*uint64(nCells-i) + uint64(idx)
		used[cellOf[i]] = true
	}
	return rank
}

// Unrank is Rank's inverse: given a rank in [0, TableSize(nCells, g)) it
// reconstructs the cell each of the g group tiles (in the same fixed
// order Rank was given them) occupies.
func Unrank(nCells, g int, rank uint64) []int {
	digits := make([]int, g)
	for i := g - 1; i >= 0; i-- {
		radix := uint64(nCells - i)
		digits[i] = int(rank % radix)
		rank /= radix
	}

	available := make([]int, nCells)
	for i := range available {
		available[i] = i
	}
	cellOf := make([]int, g)
	for i := 0; i < g; i++ {
		idx := digits[i]
		cellOf[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return cellOf
}
