package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// SubmitReply is the JSON acknowledgment returned by the submission endpoint.
// Total and Error are optional.
type SubmitReply struct {
	OK    bool   `json:"ok"`
	Total *Count `json:"total,omitempty"`
	Error string `json:"error,omitempty"`
}

// WholeTotal returns the reported total, or nil when it is absent or not a whole number.
func (r SubmitReply) WholeTotal() *int {
	if r.Total == nil || !r.Total.Valid {
		return nil
	}
	v := r.Total.Value
	return &v
}

// Count is a lenient JSON integer. Numbers and numeric strings holding a whole value are
// accepted; any other value decodes without error and leaves Valid false.
type Count struct {
	Value int
	Valid bool
}

func NewCount(n int) *Count { return &Count{Value: n, Valid: true} }

func (c *Count) UnmarshalJSON(b []byte) error {
	*c = Count{}
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	c.Value, c.Valid = int(f), true
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(c.Value), 10), nil
}

// AttemptRow is a journaled submit attempt as stored on disk. The email address is never
// stored, only its digest.
type AttemptRow struct {
	ID          string
	At          time.Time
	Outcome     string // succeeded or failed
	Total       int
	Tier        string
	EmailDigest string
	Message     string
	RequestID   string
}
