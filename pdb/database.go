package pdb

import (
	"fmt"

	"npuzzle-solver/board"
	"npuzzle-solver/internal/xerrors"
)

// unfilled marks a table slot the builder never reached. A correctly
// built and persisted database has none left: any unfilled slot survives
// only as a signal that the file is corrupt or the build was
// interrupted.
const unfilled = 0xFF

// Database is an in-memory additive disjoint pattern database: one dense
// byte table per group, immutable once built or loaded, safely shared by
// any number of concurrent solves.
type Database struct {
	n          int
	groups     []Group
	tables     [][]uint8
	labelGroup []int // labelGroup[label] = index into groups, or -1
}

func newDatabase(n int, groups []Group, tables [][]uint8) *Database {
	labelGroup := make([]int, n*n)
	for i := range labelGroup {
		labelGroup[i] = -1
	}
	for gi, g := range groups {
		for _, label := range g {
			labelGroup[label] = gi
		}
	}
	return &Database{n: n, groups: groups, tables: tables, labelGroup: labelGroup}
}

// N returns the board side this database was built for.
func (d *Database) N() int { return d.n }

// Groups returns the partition this database was built from.
func (d *Database) Groups() []Group { return d.groups }

// H computes the additive pattern-database lower bound for b: the sum,
// over every group, of that group's precomputed minimum move count for
// b's current projection onto the group. It fails with ErrIncompatibleN
// if b's side doesn't match the database, and ErrCorruptPDB if a
// looked-up entry was never filled during the build.
func (d *Database) H(b board.Board) (int, error) {
	if b.N() != d.n {
		return 0, fmt.Errorf("%w: board N=%d, database N=%d", xerrors.ErrIncompatibleN, b.N(), d.n)
	}
	total := 0
	nCells := d.n * d.n
	for gi, g := range d.groups {
		v, err := d.groupValue(nCells, gi, g, b)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func (d *Database) groupValue(nCells, gi int, g Group, b board.Board) (int, error) {
	cellOf := Project(b, g)
	r := Rank(nCells, cellOf)
	v := d.tables[gi][r]
	if v == unfilled {
		return 0, fmt.Errorf("%w: group %d entry %d was never filled", xerrors.ErrCorruptPDB, gi, r)
	}
	return int(v), nil
}

// State caches a board's per-group PDB values so a search can update the
// heuristic after a single move by re-projecting only the moved tile's
// group instead of recomputing every group's projection from scratch. Full recomputation via H remains the
// default the search package uses; State is opt-in for callers who want
// the incremental path.
type State struct {
	db       *Database
	perGroup []int
	total    int
}

// NewState computes every group's value for b once, seeding an
// incrementally-updatable heuristic state.
func (d *Database) NewState(b board.Board) (*State, error) {
	if b.N() != d.n {
		return nil, fmt.Errorf("%w: board N=%d, database N=%d", xerrors.ErrIncompatibleN, b.N(), d.n)
	}
	nCells := d.n * d.n
	perGroup := make([]int, len(d.groups))
	total := 0
	for gi, g := range d.groups {
		v, err := d.groupValue(nCells, gi, g, b)
		if err != nil {
			return nil, err
		}
		perGroup[gi] = v
		total += v
	}
	return &State{db: d, perGroup: perGroup, total: total}, nil
}

// Value returns the cached heuristic total.
func (s *State) Value() int { return s.total }

// AfterMove applies m to b and returns the resulting board along with the
// State for that board, recomputing only the group whose tile moved (or
// no group, if the moved tile is not part of any group) instead of
// re-projecting every group.
func (s *State) AfterMove(b board.Board, m board.Move) (board.Board, *State, error) {
	next, err := b.Apply(m)
	if err != nil {
		return board.Board{}, nil, err
	}
	movedLabel := next.Label(b.BlankIndex())
	gi := s.db.labelGroup[movedLabel]
	if gi < 0 {
		// The tile that moved belongs to no group; every group's
		// projection is unaffected.
		return next, &State{db: s.db, perGroup: s.perGroup, total: s.total}, nil
	}
	nCells := s.db.n * s.db.n
	v, err := s.db.groupValue(nCells, gi, s.db.groups[gi], next)
	if err != nil {
		return board.Board{}, nil, err
	}
	perGroup := make([]int, len(s.perGroup))
	copy(perGroup, s.perGroup)
	total := s.total - perGroup[gi] + v
	perGroup[gi] = v
	return next, &State{db: s.db, perGroup: perGroup, total: total}, nil
}
