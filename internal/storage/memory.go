package storage

import (
	"context"
	"sync"
)

// InMemoryStore keeps tables in memory with the same append-only contract as
// the CSV store, including the schema check. It intentionally favors clarity
// over performance and exists so service and handler tests can run against a
// real Store without touching the file system.
type InMemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{tables: make(map[string]*Table)}
}

func (s *InMemoryStore) Append(_ context.Context, record Record, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[target]
	if !ok {
		t = &Table{Columns: append([]string(nil), record.Fields()...)}
		s.tables[target] = t
	}
	if !equalFields(t.Columns, record.Fields()) {
		return schemaMismatch(target, t.Columns, record.Fields())
	}
	t.Rows = append(t.Rows, append([]string(nil), record.Values()...))
	return nil
}

func (s *InMemoryStore) Load(_ context.Context, target string) (Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[target]
	if !ok {
		return Table{}, nil
	}
	out := Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out, nil
}
