package services

import (
	"context"
	"strconv"
)

// Field is one multipart form field.
type Field struct {
	Key   string
	Value string
}

// FieldSet is the ordered payload of a submission.
type FieldSet []Field

// Get returns the value stored for key.
func (fs FieldSet) Get(key string) (string, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Reply mirrors the endpoint acknowledgment {ok, total?, error?}.
type Reply struct {
	OK        bool
	Total     *int
	Error     string
	RequestID string
}

// Submitter delivers a field set to the submission endpoint. A non-nil error means no usable
// reply was obtained (transport failure or malformed body).
type Submitter interface {
	Submit(ctx context.Context, fields FieldSet) (*Reply, error)
}

// AttemptRecorder stores submit attempts. Implementations must not retain the Attempt.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, a Attempt) error
}

// BuildFields assembles the submission payload: name, email, q1..q7, qol when present,
// then the attribution fields.
func BuildFields(id Identity, answers AnswerSet, qol *int, attr Attribution) FieldSet {
	fs := make(FieldSet, 0, 2+len(Questions)+1+6)
	fs = append(fs,
		Field{Key: "name", Value: trimmed(id.Name)},
		Field{Key: "email", Value: trimmed(id.Email)},
	)
	for _, q := range Questions {
		fs = append(fs, Field{Key: q.Key, Value: strconv.Itoa(answers[q.Key])})
	}
	if qol != nil {
		fs = append(fs, Field{Key: "qol", Value: strconv.Itoa(*qol)})
	}
	return append(fs, attr.Fields()...)
}
