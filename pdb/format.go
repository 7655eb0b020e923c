package pdb

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"npuzzle-solver/internal/xerrors"
)

// File layout, all integers little-endian:
//
//	offset  field           size
//	0       magic "NPDB"    4 bytes
//	4       version         1 byte
//	5       N               1 byte
//	6       workers         4 bytes (informational, unvalidated)
//	10      built-unix-secs 8 bytes (informational, unvalidated)
//	18      entry width     1 byte (always 1 in this implementation)
//	19      group count k   1 byte
//	20      per group: size (1 byte) then size label bytes
//	...     table bodies, one per group in partition order, each holding
//	        TableSize(N², group size) entryWidth-byte entries in
//	        pattern-rank order.
const (
	magic         = "NPDB"
	formatVersion = 1
	entryWidth    = 1
)

// Save persists d to path in the container format described above.
// workers records the build parallelism used, purely for operators
// inspecting the file later; it is not read back by Load's validation.
func (d *Database) Save(path string, workers int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(magic); err != nil {
		return fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
	}
	fields := []any{
		uint8(formatVersion),
		uint8(d.n),
		uint32(workers),
		int64(time.Now().Unix()),
		uint8(entryWidth),
		uint8(len(d.groups)),
	}
	for _, v := range fields {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
		}
	}
	for _, g := range d.groups {
		if err := binary.Write(w, binary.LittleEndian, uint8(len(g))); err != nil {
			return fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
		}
		for _, label := range g {
			if err := binary.Write(w, binary.LittleEndian, uint8(label)); err != nil {
				return fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
			}
		}
	}
	for _, table := range d.tables {
		if _, err := w.Write(table); err != nil {
			return fmt.Errorf("%w: %v", xerrors.ErrBuildFailure, err)
		}
	}
	return w.Flush()
}

// Load reads and validates a persisted pattern database. It fails with
// ErrMissingPDB if the file can't be opened, ErrCorruptPDB if the header
// or entry data fail validation, and ErrIncompatibleN if the file was
// built for a different board side than wantN.
func Load(path string, wantN int) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", xerrors.ErrMissingPDB, path)
		}
		return nil, fmt.Errorf("%w: %v", xerrors.ErrMissingPDB, err)
	}

	r := bytes.NewReader(data)
	magicBuf := make([]byte, len(magic))
	if _, err := io.ReadFull(r, magicBuf); err != nil || string(magicBuf) != magic {
		return nil, fmt.Errorf("%w: bad magic", xerrors.ErrCorruptPDB)
	}

	var version, n, width, groupCount uint8
	var workers uint32
	var builtUnix int64
	for _, dst := range []any{&version, &n, &workers, &builtUnix, &width, &groupCount} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, fmt.Errorf("%w: truncated header: %v", xerrors.ErrCorruptPDB, err)
		}
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", xerrors.ErrCorruptPDB, version)
	}
	if width != entryWidth {
		return nil, fmt.Errorf("%w: unsupported entry width %d", xerrors.ErrCorruptPDB, width)
	}
	if int(n) != wantN {
		return nil, fmt.Errorf("%w: file N=%d, requested N=%d", xerrors.ErrIncompatibleN, n, wantN)
	}

	groups := make([]Group, groupCount)
	for i := range groups {
		var size uint8
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: truncated group descriptor: %v", xerrors.ErrCorruptPDB, err)
		}
		labels := make([]int, size)
		for j := range labels {
			var label uint8
			if err := binary.Read(r, binary.LittleEndian, &label); err != nil {
				return nil, fmt.Errorf("%w: truncated group labels: %v", xerrors.ErrCorruptPDB, err)
			}
			labels[j] = int(label)
		}
		groups[i] = NewGroup(labels)
	}
	if err := ValidatePartition(int(n), groups); err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrCorruptPDB, err)
	}

	nCells := int(n) * int(n)
	tables := make([][]uint8, len(groups))
	for i, g := range groups {
		size := TableSize(nCells, len(g))
		table := make([]byte, size)
		if _, err := io.ReadFull(r, table); err != nil {
			return nil, fmt.Errorf("%w: truncated table for group %d: %v", xerrors.ErrCorruptPDB, i, err)
		}
		for _, v := range table {
			if v == unfilled {
				return nil, fmt.Errorf("%w: group %d has an unfilled entry", xerrors.ErrCorruptPDB, i)
			}
		}
		tables[i] = table
	}

	return newDatabase(int(n), groups, tables), nil
}
