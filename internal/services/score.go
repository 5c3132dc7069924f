package services

import "github.com/soaringjerry/ipss-selfcheck/internal/utils"

// Tier is the qualitative severity bucket of an IPSS total.
type Tier string

const (
	TierMild     Tier = "mild"
	TierModerate Tier = "moderate"
	TierSevere   Tier = "severe"
)

// Total sums the answers of the seven questions. Missing answers count as 0, which gives the
// running partial score shown while the form is still being filled in.
func Total(answers AnswerSet) int {
	sum := 0
	for _, q := range Questions {
		sum += answers[q.Key]
	}
	return sum
}

// TierFor classifies a total: Mild 0–7, Moderate 8–19, Severe 20–35.
// Values outside 0..35 fall into the nearest bucket.
func TierFor(total int) Tier {
	switch {
	case total >= 20:
		return TierSevere
	case total >= 8:
		return TierModerate
	default:
		return TierMild
	}
}

// Label returns the localized badge text.
func (t Tier) Label(locale string) string {
	switch t {
	case TierSevere:
		return utils.T(locale, utils.MsgTierSevere)
	case TierModerate:
		return utils.T(locale, utils.MsgTierModerate)
	default:
		return utils.T(locale, utils.MsgTierMild)
	}
}

// Advice returns the localized guidance line for the tier.
func (t Tier) Advice(locale string) string {
	switch t {
	case TierSevere:
		return utils.T(locale, utils.MsgAdviceSevere)
	case TierModerate:
		return utils.T(locale, utils.MsgAdviceModerate)
	default:
		return utils.T(locale, utils.MsgAdviceMild)
	}
}
