package storage

import "context"

// TimestampLayout is the wire format for the timestamp column every section
// writes first: local time, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one validated form submission, persisted as one table row. Field
// order is fixed per section; Fields and Values must stay aligned.
type Record interface {
	Fields() []string
	Values() []string
}

// Table holds the fully parsed contents of one section file. A missing file
// loads as the zero Table: no columns, no rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows. A file holding only a
// header row is empty.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// Column returns the values of the named column, or false when the column
// does not exist.
func (t Table) Column(name string) ([]string, bool) {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		}
	}
	return values, true
}

// Store is interface-driven to keep the section services testable and to
// allow swapping file-backed and in-memory persistence without rewiring
// business code.
//
// The store is append-only: records are never mutated or deleted, and the
// header written on first append is never rewritten.
type Store interface {
	Append(ctx context.Context, record Record, target string) error
	Load(ctx context.Context, target string) (Table, error)
}
