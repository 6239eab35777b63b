package models

import (
	"strings"
	"time"
)

// Form fields arrive as strings; normalization to NULL happens here, once,
// rather than scattered across handlers.

// NormalizeString trims s and returns nil for the empty string.
func NormalizeString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeDate parses a YYYY-MM-DD form value, returning nil when empty.
func NormalizeDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
