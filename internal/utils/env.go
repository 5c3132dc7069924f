package utils

import (
	"os"
	"strings"
)

// SafeEnv returns the environment variable value for key, or fallback if empty.
// Surrounding whitespace is ignored so "  " counts as unset.
func SafeEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// FirstEnv returns the first non-empty value among keys, or "" when none is set.
func FirstEnv(keys ...string) string {
	for _, k := range keys {
		if v := SafeEnv(k, ""); v != "" {
			return v
		}
	}
	return ""
}
