package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern rejects any Unicode space in each part, not only ASCII whitespace.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ValidName requires at least two characters after trimming.
func ValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= 2
}

// ValidEmail checks the simple local@domain.tld shape. The raw value is tested, so
// surrounding whitespace makes it invalid.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidSeverity reports whether v is a selectable answer value.
func ValidSeverity(v int) bool {
	return v >= MinSeverity && v <= MaxSeverity
}

// QualityOfLifeInRange is advisory only; it never gates submission.
func QualityOfLifeInRange(v int) bool {
	return v >= MinQualityOfLife && v <= MaxQualityOfLife
}

// FirstName returns the first whitespace-separated token of name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
