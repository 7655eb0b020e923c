package pdb

import (
	"container/list"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"npuzzle-solver/board"
	"npuzzle-solver/internal/xerrors"
)

// progressInterval controls how often the builder logs visited-state
// counts for a group, without flooding the log at Debug granularity.
const progressInterval = 200000

// Build constructs a Database for the given board side and partition,
// running one 0-1 BFS per group in parallel across up to workers
// goroutines at a time — groups are independent, so this is safe with no
// locking beyond the errgroup/semaphore dispatch itself.
func Build(ctx context.Context, n int, partition []Group, workers int) (*Database, error) {
	if err := ValidatePartition(n, partition); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	tables := make([][]uint8, len(partition))
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, group := range partition {
		i, group := i, group
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return fmt.Errorf("%w: group %d: %v", xerrors.ErrCancelled, i, gctx.Err())
			}
			defer func() { <-sem }()

			log.Info().Int("group", i).Ints("labels", []int(group)).Msg("pdb-build-start")
			table, err := buildGroup(gctx, n, group, i)
			if err != nil {
				return err
			}
			log.Info().Int("group", i).Int("entries", len(table)).Msg("pdb-build-done")
			tables[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return newDatabase(n, partition, tables), nil
}

// bfsFrame is one entry in the 0-1 BFS deque: a full board (the group's
// tiles and blank at known positions, other tiles at whatever position
// they landed at along this path — their identity doesn't affect the
// group's future transitions) plus the previous move and the group-move
// cost accumulated so far.
type bfsFrame struct {
	b    board.Board
	prev *board.Move
	cost int
}

// buildGroup runs the 0-1 BFS for a single group starting from the goal
// board (where every group tile and the blank already sit on their own
// goal cells). Cost-0 successors — the blank swapping with a tile
// outside the group — are pushed to the front of the deque; cost-1
// successors — the blank swapping with a group tile — are pushed to the
// back, the standard 0-1 BFS discipline.
//
// Deduplication happens on pop, keyed by the augmented state (the
// group's pattern rank combined with the blank's cell): 0-1 BFS
// guarantees the first pop of an augmented state carries its final,
// minimal cost.
func buildGroup(ctx context.Context, n int, group Group, groupIdx int) ([]uint8, error) {
	nCells := n * n
	inGroup := make(map[int]bool, len(group))
	for _, label := range group {
		inGroup[label] = true
	}

	size := TableSize(nCells, len(group))
	table := make([]uint8, size)
	for i := range table {
		table[i] = unfilled
	}

	deque := list.New()
	deque.PushBack(bfsFrame{b: board.Goal(n), prev: nil, cost: 0})

	visited := make(map[uint64]struct{})
	visitedCount := 0

	for deque.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: group %d: %v", xerrors.ErrCancelled, groupIdx, err)
		}

		front := deque.Front()
		deque.Remove(front)
		frame := front.Value.(bfsFrame)

		cellOf := Project(frame.b, group)
		patternRank := Rank(nCells, cellOf)
		augmentedKey := patternRank*uint64(nCells) + uint64(frame.b.BlankIndex())
		if _, seen := visited[augmentedKey]; seen {
			continue
		}
		visited[augmentedKey] = struct{}{}
		visitedCount++

		if table[patternRank] == unfilled || frame.cost < int(table[patternRank]) {
			table[patternRank] = uint8(frame.cost)
		}

		if visitedCount%progressInterval == 0 {
			log.Debug().Int("group", groupIdx).Int("visited", visitedCount).
				Int("queued", deque.Len()).Msg("pdb-build-progress")
		}

		for _, m := range frame.b.LegalMoves(frame.prev) {
			next, err := frame.b.Apply(m)
			if err != nil {
				return nil, fmt.Errorf("%w: group %d: %v", xerrors.ErrBuildFailure, groupIdx, err)
			}
			movedLabel := next.Label(frame.b.BlankIndex())
			mCopy := m
			child := bfsFrame{b: next, prev: &mCopy, cost: frame.cost}
			if inGroup[movedLabel] {
				child.cost++
				deque.PushBack(child)
			} else {
				deque.PushFront(child)
			}
		}
	}

	return table, nil
}
