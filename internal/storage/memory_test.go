package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "uxstudy/pkg/domain-errors"
)

func TestInMemoryStoreMatchesCSVContract(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	table, err := store.Load(ctx, "exit_data.csv")
	require.NoError(t, err)
	assert.True(t, table.Empty())

	rec := testRecord{
		fields: []string{"timestamp", "satisfaction"},
		values: []string{"2026-08-29 10:00:00", "4"},
	}
	require.NoError(t, store.Append(ctx, rec, "exit_data.csv"))

	table, err = store.Load(ctx, "exit_data.csv")
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, rec.values, table.Rows[0])

	err = store.Append(ctx, testRecord{
		fields: []string{"timestamp"},
		values: []string{"2026-08-29 10:01:00"},
	}, "exit_data.csv")
	assert.True(t, dErrors.Is(err, dErrors.CodeConflict))
}

func TestInMemoryStoreLoadReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, testRecord{
		fields: []string{"timestamp"},
		values: []string{"2026-08-29 10:00:00"},
	}, "consent_data.csv"))

	table, err := store.Load(ctx, "consent_data.csv")
	require.NoError(t, err)
	table.Rows[0][0] = "mutated"

	fresh, err := store.Load(ctx, "consent_data.csv")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29 10:00:00", fresh.Rows[0][0])
}
