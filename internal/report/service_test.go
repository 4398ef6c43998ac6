package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxstudy/internal/consent"
	"uxstudy/internal/exitpoll"
	"uxstudy/internal/storage"
)

func TestBuildOnEmptyStore(t *testing.T) {
	svc := NewService(storage.NewInMemoryStore())

	rpt, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.True(t, rpt.Consent.Empty)
	assert.True(t, rpt.Demographic.Empty)
	assert.True(t, rpt.Task.Empty)
	assert.True(t, rpt.Exit.Empty)
	assert.Nil(t, rpt.ExitAverages, "averages must be omitted when exit data is empty")
}

func TestExitAverages(t *testing.T) {
	store := storage.NewInMemoryStore()
	ctx := context.Background()

	exitSvc := exitpoll.NewService(store)
	for _, ratings := range [][2]int{{4, 1}, {2, 3}} {
		sat, diff := ratings[0], ratings[1]
		_, err := exitSvc.Submit(ctx, &exitpoll.SubmitRequest{
			Satisfaction: &sat,
			Difficulty:   &diff,
		})
		require.NoError(t, err)
	}

	rpt, err := NewService(store).Build(ctx)
	require.NoError(t, err)

	require.NotNil(t, rpt.ExitAverages)
	assert.Equal(t, "3.00", rpt.ExitAverages.Satisfaction)
	assert.Equal(t, "2.00", rpt.ExitAverages.Difficulty)
}

func TestSectionsCarryRows(t *testing.T) {
	store := storage.NewInMemoryStore()
	ctx := context.Background()

	_, err := consent.NewService(store).Submit(ctx, &consent.SubmitRequest{ConsentGiven: true})
	require.NoError(t, err)

	rpt, err := NewService(store).Build(ctx)
	require.NoError(t, err)

	assert.False(t, rpt.Consent.Empty)
	assert.Equal(t, []string{"timestamp", "consent_given"}, rpt.Consent.Columns)
	require.Len(t, rpt.Consent.Rows, 1)
	assert.Equal(t, "true", rpt.Consent.Rows[0][1])
}

func TestUnparseableRatingsAreSkipped(t *testing.T) {
	table := storage.Table{
		Columns: []string{"timestamp", "satisfaction", "difficulty", "open_feedback"},
		Rows: [][]string{
			{"a", "4", "2", ""},
			{"b", "not-a-number", "junk", ""},
			{"c", "2", "4", ""},
		},
	}

	avg := exitAverages(table)
	require.NotNil(t, avg)
	assert.Equal(t, "3.00", avg.Satisfaction)
	assert.Equal(t, "3.00", avg.Difficulty)
}

func TestAveragesOmittedWhenNothingParses(t *testing.T) {
	table := storage.Table{
		Columns: []string{"timestamp", "satisfaction", "difficulty", "open_feedback"},
		Rows:    [][]string{{"a", "x", "y", ""}},
	}
	assert.Nil(t, exitAverages(table))
}
