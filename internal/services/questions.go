package services

// Question is one item of the IPSS instrument.
type Question struct {
	Key   string
	Label string
}

// Answer scale bounds shared by every question.
const (
	MinSeverity = 0
	MaxSeverity = 5
)

// Quality-of-life bounds. The range is only a hint, see QualityOfLifeInRange.
const (
	MinQualityOfLife = 0
	MaxQualityOfLife = 6
)

// MaxTotal is the highest possible IPSS total (7 questions * 5).
const MaxTotal = 35

// Questions is the fixed IPSS questionnaire in display order.
var Questions = []Question{
	{Key: "q1", Label: "Incomplete emptying"},
	{Key: "q2", Label: "Frequency"},
	{Key: "q3", Label: "Intermittency"},
	{Key: "q4", Label: "Urgency"},
	{Key: "q5", Label: "Weak stream"},
	{Key: "q6", Label: "Straining"},
	{Key: "q7", Label: "Nocturia (times/night)"},
}

// IsQuestionKey reports whether key names one of the seven questions.
func IsQuestionKey(key string) bool {
	for _, q := range Questions {
		if q.Key == key {
			return true
		}
	}
	return false
}

// SeverityScale returns the selectable answer values, 0 through 5.
func SeverityScale() []int {
	out := make([]int, 0, MaxSeverity-MinSeverity+1)
	for v := MinSeverity; v <= MaxSeverity; v++ {
		out = append(out, v)
	}
	return out
}
