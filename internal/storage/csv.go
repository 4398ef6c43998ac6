package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	dErrors "uxstudy/pkg/domain-errors"
)

// CSVStore persists records as append-only CSV files under a single data
// directory, one file per questionnaire section. The first append to a target
// writes a header row derived from the record's field names; every later
// append writes only the value row.
//
// Each target has its own append lock, so two submissions to the same section
// can never interleave rows. Submissions to different sections do not contend.
type CSVStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCSVStore creates the data directory if needed and returns a store
// rooted there.
func NewCSVStore(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "creating data directory", err)
	}
	return &CSVStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the directory the store writes into.
func (s *CSVStore) Dir() string { return s.dir }

func (s *CSVStore) lockFor(target string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[target]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[target] = l
	return l
}

// Append writes record as one new row of target. When the target file does
// not exist yet (or is empty), the header row is written first. When it
// exists, the record's field names must match the established header exactly,
// including order; a mismatch returns a conflict error and leaves the file
// untouched.
//
// File-system errors are wrapped as internal errors and propagate to the
// caller; there is no retry and no partial-write recovery.
func (s *CSVStore) Append(_ context.Context, record Record, target string) error {
	lock := s.lockFor(target)
	lock.Lock()
	defer lock.Unlock()

	path := filepath.Join(s.dir, target)

	header, err := readHeader(path)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "reading header of "+target, err)
	}
	if header != nil && !equalFields(header, record.Fields()) {
		return schemaMismatch(target, header, record.Fields())
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "opening "+target, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header == nil {
		if err := w.Write(record.Fields()); err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "writing header to "+target, err)
		}
	}
	if err := w.Write(record.Values()); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "writing row to "+target, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "flushing "+target, err)
	}
	return nil
}

// Load parses target fully into a Table. A missing target is not an error; it
// loads as the zero Table.
func (s *CSVStore) Load(_ context.Context, target string) (Table, error) {
	path := filepath.Join(s.dir, target)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, dErrors.Wrap(dErrors.CodeInternal, "opening "+target, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return Table{}, dErrors.Wrap(dErrors.CodeInternal, "parsing "+target, err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// readHeader returns the first row of the file at path, nil when the file
// does not exist or has no content yet.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return header, nil
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
