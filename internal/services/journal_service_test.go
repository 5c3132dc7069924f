package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soaringjerry/ipss-selfcheck/internal/models"
)

type stubLister struct {
	rows []models.AttemptRow
	err  error
}

func (s *stubLister) ListAttempts(_ context.Context, limit int) ([]models.AttemptRow, error) {
	return s.rows, s.err
}

func TestJournalSummary(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(26 * time.Hour)
	store := &stubLister{rows: []models.AttemptRow{
		{Outcome: "succeeded", Total: 13, EmailDigest: "a", At: day2},
		{Outcome: "failed", Total: 13, EmailDigest: "a", At: day2},
		{Outcome: "succeeded", Total: 4, EmailDigest: "b", At: day1},
		{Outcome: "failed", Total: 30, EmailDigest: "c", At: day1},
	}}

	sum, err := NewJournalService(store).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Attempts)
	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 3, sum.Emails)
	assert.InDelta(t, 8.5, sum.MeanTotal, 1e-9)
	assert.Equal(t, []TierCount{
		{Tier: TierMild, Count: 1},
		{Tier: TierModerate, Count: 1},
		{Tier: TierSevere, Count: 0},
	}, sum.Tiers)
	assert.Equal(t, []DailyCount{
		{Date: "2026-03-01", Attempts: 2, Succeeded: 1},
		{Date: "2026-03-02", Attempts: 2, Succeeded: 1},
	}, sum.Daily)
}

func TestJournalSummaryEmpty(t *testing.T) {
	sum, err := NewJournalService(&stubLister{}).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Attempts)
	assert.Zero(t, sum.MeanTotal)
	assert.Len(t, sum.Tiers, 3)
	assert.Empty(t, sum.Daily)
}

func TestJournalSummaryStoreError(t *testing.T) {
	_, err := NewJournalService(&stubLister{err: errors.New("boom")}).Summary(context.Background())
	assert.EqualError(t, err, "boom")
}
