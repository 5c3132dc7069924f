package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

func openTestJournal(t *testing.T) *JournalStore {
	t.Helper()
	store, err := OpenJournal(context.Background(), filepath.Join(t.TempDir(), "journal.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListAttempts(t *testing.T) {
	store := openTestJournal(t)
	ctx := context.Background()
	base := time.Date(2025, 9, 18, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.RecordAttempt(ctx, services.Attempt{
		ID: "A1", At: base, State: services.StateFailed, Total: 13, Tier: services.TierModerate,
		Email: "Jo@Example.com ", Message: "Duplicate", RequestID: "req-1",
	}))
	require.NoError(t, store.RecordAttempt(ctx, services.Attempt{
		ID: "A2", At: base.Add(time.Minute), State: services.StateSucceeded, Total: 13, Tier: services.TierModerate,
		Email: "jo@example.com", Message: "Thanks, Jo! Your IPSS total is 13.",
	}))

	rows, err := store.ListAttempts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A2", rows[0].ID)
	assert.Equal(t, "succeeded", rows[0].Outcome)
	assert.Equal(t, "A1", rows[1].ID)
	assert.Equal(t, "Duplicate", rows[1].Message)
	assert.Equal(t, "req-1", rows[1].RequestID)
	assert.True(t, base.Equal(rows[1].At))

	assert.Equal(t, rows[0].EmailDigest, rows[1].EmailDigest)
	assert.Len(t, rows[0].EmailDigest, 64)
	assert.NotContains(t, rows[0].EmailDigest, "example")

	limited, err := store.ListAttempts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestListAttemptsOrdersWithinSecond(t *testing.T) {
	store := openTestJournal(t)
	ctx := context.Background()
	whole := time.Date(2025, 9, 18, 10, 0, 0, 0, time.UTC)
	half := whole.Add(500 * time.Millisecond)

	require.NoError(t, store.RecordAttempt(ctx, services.Attempt{ID: "B", At: half, State: services.StateFailed, Tier: services.TierMild}))
	require.NoError(t, store.RecordAttempt(ctx, services.Attempt{ID: "A", At: whole, State: services.StateFailed, Tier: services.TierMild}))
	require.NoError(t, store.RecordAttempt(ctx, services.Attempt{ID: "C", At: whole.Add(time.Second), State: services.StateFailed, Tier: services.TierMild}))

	rows, err := store.ListAttempts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.True(t, half.Equal(rows[1].At))
	assert.True(t, whole.Equal(rows[2].At))
}

func TestRecordAttemptDuplicateID(t *testing.T) {
	store := openTestJournal(t)
	a := services.Attempt{ID: "A1", At: time.Now(), State: services.StateFailed, Tier: services.TierMild}
	require.NoError(t, store.RecordAttempt(context.Background(), a))
	assert.Error(t, store.RecordAttempt(context.Background(), a))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	first, err := OpenJournal(context.Background(), path, nil)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenJournal(context.Background(), path, nil)
	require.NoError(t, err)
	defer second.Close()
	rows, err := second.ListAttempts(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpenJournalRequiresPath(t *testing.T) {
	_, err := OpenJournal(context.Background(), " ", nil)
	assert.Error(t, err)
}

func TestEmailDigestNormalizes(t *testing.T) {
	assert.Equal(t, EmailDigest("jo@example.com"), EmailDigest("  JO@example.COM"))
	assert.NotEqual(t, EmailDigest("jo@example.com"), EmailDigest("jo@example.org"))
}
