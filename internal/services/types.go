package services

import "time"

// AnswerSet maps question keys (q1..q7) to a severity between 0 and 5.
type AnswerSet map[string]int

// Complete reports whether all seven questions have an answer.
func (a AnswerSet) Complete() bool {
	for _, q := range Questions {
		if _, ok := a[q.Key]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// IdentityField selects which contact field SetIdentity updates.
type IdentityField string

const (
	FieldName  IdentityField = "name"
	FieldEmail IdentityField = "email"
)

// Identity holds the raw contact fields as typed.
type Identity struct {
	Name  string
	Email string
}

// SubmissionState is the lifecycle state of the submit operation.
type SubmissionState string

const (
	StateIdle      SubmissionState = "idle"
	StatePending   SubmissionState = "pending"
	StateSucceeded SubmissionState = "succeeded"
	StateFailed    SubmissionState = "failed"
)

// Snapshot is an immutable view of the form used by renderers.
type Snapshot struct {
	Identity       Identity
	Answers        AnswerSet
	QualityOfLife  *int
	Consent        bool
	State          SubmissionState
	Message        string
	Error          string
	SubmittedTotal *int
	Total          int
	Tier           Tier
	Complete       bool
	CanSubmit      bool
	QoLAdvisory    bool
	Locale         string
}

// Result describes the terminal outcome of one Submit call.
type Result struct {
	State     SubmissionState
	Total     int
	Message   string
	RequestID string
}

// Attempt is one journaled submit attempt.
type Attempt struct {
	ID        string
	At        time.Time
	State     SubmissionState
	Total     int
	Tier      Tier
	Email     string
	Message   string
	RequestID string
}
