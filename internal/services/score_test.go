package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		total int
		want  Tier
	}{
		{0, TierMild},
		{7, TierMild},
		{8, TierModerate},
		{13, TierModerate},
		{19, TierModerate},
		{20, TierSevere},
		{35, TierSevere},
		{-1, TierMild},
		{40, TierSevere},
	}
	for _, c := range cases {
		if got := TierFor(c.total); got != c.want {
			t.Fatalf("TierFor(%d)=%s, want %s", c.total, got, c.want)
		}
	}
}

func TestTierForCoversWholeRange(t *testing.T) {
	for x := 0; x <= MaxTotal; x++ {
		got := TierFor(x)
		switch {
		case x <= 7:
			assert.Equal(t, TierMild, got, "total %d", x)
		case x <= 19:
			assert.Equal(t, TierModerate, got, "total %d", x)
		default:
			assert.Equal(t, TierSevere, got, "total %d", x)
		}
	}
}

func TestTotalCompleteSets(t *testing.T) {
	sets := [][7]int{
		{0, 0, 0, 0, 0, 0, 0},
		{5, 5, 5, 5, 5, 5, 5},
		{2, 1, 0, 3, 2, 1, 4},
		{1, 2, 3, 4, 5, 0, 1},
	}
	for _, vals := range sets {
		answers := AnswerSet{}
		want := 0
		for i, q := range Questions {
			answers[q.Key] = vals[i]
			want += vals[i]
		}
		got := Total(answers)
		assert.Equal(t, want, got)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, MaxTotal)
	}
}

func TestTotalPartialCountsMissingAsZero(t *testing.T) {
	assert.Equal(t, 0, Total(nil))
	assert.Equal(t, 7, Total(AnswerSet{"q1": 3, "q7": 4}))
}

func TestTotalIgnoresUnknownKeys(t *testing.T) {
	assert.Equal(t, 2, Total(AnswerSet{"q2": 2, "q9": 5}))
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "Moderate", TierModerate.Label("en"))
	assert.Equal(t, "重度", TierSevere.Label("zh"))
	assert.Contains(t, TierMild.Advice("en"), "lifestyle changes")
}
