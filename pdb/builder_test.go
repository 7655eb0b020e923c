package pdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npuzzle-solver/board"
	"npuzzle-solver/heuristic"
	"npuzzle-solver/pdb"
)

func smallPartition() []pdb.Group {
	// 3×3 board, tiles 1..8 split so both groups leave the other group's
	// tiles as free "other" cells during BFS, per pdb's reachability
	// assumption.
	return []pdb.Group{
		pdb.NewGroup([]int{1, 2}),
		pdb.NewGroup([]int{3, 4, 5, 6, 7, 8}),
	}
}

func TestBuildGoalStateCostsZero(t *testing.T) {
	db, err := pdb.Build(context.Background(), 3, smallPartition(), 2)
	require.NoError(t, err)

	g := board.Goal(3)
	h, err := db.H(g)
	require.NoError(t, err)
	assert.Equal(t, 0, h, "goal state costs zero from every group")
}

func TestBuildIsDeterministic(t *testing.T) {
	// A PDB rebuilt from the same partition produces identical values,
	// regardless of worker count.
	partition := smallPartition()
	a, err := pdb.Build(context.Background(), 3, partition, 1)
	require.NoError(t, err)
	b, err := pdb.Build(context.Background(), 3, partition, 3)
	require.NoError(t, err)

	for _, s := range reachableStates(t, board.Goal(3), 5) {
		hA, err := a.H(s)
		require.NoError(t, err)
		hB, err := b.H(s)
		require.NoError(t, err)
		assert.Equal(t, hA, hB)
	}
}

func TestBuildRejectsOverlappingPartition(t *testing.T) {
	bad := []pdb.Group{
		pdb.NewGroup([]int{1, 2}),
		pdb.NewGroup([]int{2, 3}),
	}
	_, err := pdb.Build(context.Background(), 3, bad, 1)
	assert.Error(t, err)
}

func TestBuildRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdb.Build(ctx, 3, smallPartition(), 1)
	assert.Error(t, err)
}

func TestPDBDominatesGroupRestrictedManhattan(t *testing.T) {
	// h_PDB(B) >= h_Manhattan restricted to the same tile set, for every
	// reachable board.
	partition := smallPartition()
	db, err := pdb.Build(context.Background(), 3, partition, 2)
	require.NoError(t, err)

	states := reachableStates(t, board.Goal(3), 6)
	for _, s := range states {
		total, err := db.H(s)
		require.NoError(t, err)

		mdSum := 0
		for _, g := range partition {
			mdSum += heuristic.ManhattanGroup(s, []int(g))
		}
		assert.GreaterOrEqual(t, total, mdSum)
	}
}

func TestPDBAdmissibleAgainstBFSOptimum(t *testing.T) {
	// h_PDB(B) <= h*(B), checked against a brute-force BFS optimum on a
	// small enumerable board.
	partition := smallPartition()
	db, err := pdb.Build(context.Background(), 3, partition, 2)
	require.NoError(t, err)

	start := board.Goal(3)
	// A short, known scramble keeps the reference BFS cheap.
	for _, m := range []board.Move{board.Up, board.Left, board.Up, board.Right} {
		start = start.MustApply(m)
	}
	optimum := bfsOptimum(t, start)

	h, err := db.H(start)
	require.NoError(t, err)
	assert.LessOrEqual(t, h, optimum)
}

// reachableStates does a small breadth-limited exploration from start,
// used only to sample a handful of legally-reachable boards for property
// tests; it is not a solver.
func reachableStates(t *testing.T, start board.Board, depth int) []board.Board {
	t.Helper()
	type frame struct {
		b    board.Board
		prev *board.Move
		d    int
	}
	seen := map[uint64]bool{start.Hash(): true}
	out := []board.Board{start}
	queue := []frame{{b: start, prev: nil, d: 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if f.d >= depth {
			continue
		}
		for _, m := range f.b.LegalMoves(f.prev) {
			next, err := f.b.Apply(m)
			require.NoError(t, err)
			if seen[next.Hash()] {
				continue
			}
			seen[next.Hash()] = true
			out = append(out, next)
			mCopy := m
			queue = append(queue, frame{b: next, prev: &mCopy, d: f.d + 1})
		}
	}
	return out
}

// bfsOptimum computes the true optimal solution length from start via
// plain breadth-first search, used as the reference h* for admissibility
// checks on small boards.
func bfsOptimum(t *testing.T, start board.Board) int {
	t.Helper()
	if start.IsGoal() {
		return 0
	}
	type frame struct {
		b    board.Board
		prev *board.Move
		d    int
	}
	seen := map[uint64]bool{start.Hash(): true}
	queue := []frame{{b: start, prev: nil, d: 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, m := range f.b.LegalMoves(f.prev) {
			next, err := f.b.Apply(m)
			require.NoError(t, err)
			if next.IsGoal() {
				return f.d + 1
			}
			if seen[next.Hash()] {
				continue
			}
			seen[next.Hash()] = true
			mCopy := m
			queue = append(queue, frame{b: next, prev: &mCopy, d: f.d + 1})
		}
	}
	t.Fatal("goal not reached within explored space")
	return -1
}
