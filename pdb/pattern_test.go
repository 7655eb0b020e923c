package pdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"npuzzle-solver/pdb"
)

func TestRankUnrankRoundTrip(t *testing.T) {
	// rank ∘ unrank and unrank ∘ rank are identity on valid ranges.
	cases := []struct{ nCells, g int }{
		{9, 1}, {9, 2}, {9, 4}, {16, 1}, {16, 3}, {16, 6},
	}
	for _, c := range cases {
		size := pdb.TableSize(c.nCells, c.g)
		var step uint64 = 1
		if size > 5000 {
			step = size / 5000
		}
		for rank := uint64(0); rank < size; rank += step {
			cellOf := pdb.Unrank(c.nCells, c.g, rank)
			assert.Equal(t, c.g, len(cellOf))

			seen := make(map[int]bool)
			for _, cell := range cellOf {
				assert.False(t, seen[cell], "unrank must produce distinct cells")
				seen[cell] = true
				assert.True(t, cell >= 0 && cell < c.nCells)
			}

			got := pdb.Rank(c.nCells, cellOf)
			assert.Equal(t, rank, got, "rank(unrank(r)) == r for nCells=%d g=%d r=%d", c.nCells, c.g, rank)
		}
	}
}

func TestTableSizeIsPermutationCount(t *testing.T) {
	assert.Equal(t, uint64(9*8*7), pdb.TableSize(9, 3))
	assert.Equal(t, uint64(16), pdb.TableSize(16, 1))
	assert.Equal(t, uint64(1), pdb.TableSize(16, 0))
}
