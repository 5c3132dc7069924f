package services

import (
	"context"
	"sort"

	"github.com/soaringjerry/ipss-selfcheck/internal/models"
)

type AttemptLister interface {
	ListAttempts(ctx context.Context, limit int) ([]models.AttemptRow, error)
}

// JournalService summarizes the local attempt journal.
type JournalService struct {
	store AttemptLister
}

type TierCount struct {
	Tier  Tier `json:"tier"`
	Count int  `json:"count"`
}

type DailyCount struct {
	Date      string `json:"date"`
	Attempts  int    `json:"attempts"`
	Succeeded int    `json:"succeeded"`
}

type JournalSummary struct {
	Attempts  int          `json:"attempts"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Emails    int          `json:"emails"`
	MeanTotal float64      `json:"mean_total"`
	Tiers     []TierCount  `json:"tiers"`
	Daily     []DailyCount `json:"daily"`
}

func NewJournalService(store AttemptLister) *JournalService {
	return &JournalService{store: store}
}

// Summary counts every journaled attempt. Tiers and MeanTotal only cover accepted
// submissions, since a failed attempt's total was never confirmed by the endpoint.
func (s *JournalService) Summary(ctx context.Context) (*JournalSummary, error) {
	rows, err := s.store.ListAttempts(ctx, 0)
	if err != nil {
		return nil, err
	}
	sum := &JournalSummary{Attempts: len(rows)}
	tiers := map[Tier]int{}
	emails := map[string]struct{}{}
	days := map[string]*DailyCount{}
	totals := 0
	for _, r := range rows {
		day := r.At.UTC().Format("2006-01-02")
		d := days[day]
		if d == nil {
			d = &DailyCount{Date: day}
			days[day] = d
		}
		d.Attempts++
		if r.EmailDigest != "" {
			emails[r.EmailDigest] = struct{}{}
		}
		if SubmissionState(r.Outcome) != StateSucceeded {
			sum.Failed++
			continue
		}
		sum.Succeeded++
		d.Succeeded++
		totals += r.Total
		tiers[TierFor(r.Total)]++
	}
	sum.Emails = len(emails)
	if sum.Succeeded > 0 {
		sum.MeanTotal = float64(totals) / float64(sum.Succeeded)
	}
	for _, t := range []Tier{TierMild, TierModerate, TierSevere} {
		sum.Tiers = append(sum.Tiers, TierCount{Tier: t, Count: tiers[t]})
	}
	sum.Daily = buildDaily(days)
	return sum, nil
}

func buildDaily(days map[string]*DailyCount) []DailyCount {
	keys := make([]string, 0, len(days))
	for d := range days {
		keys = append(keys, d)
	}
	sort.Strings(keys)
	out := make([]DailyCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, *days[k])
	}
	return out
}
