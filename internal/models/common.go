package models

import (
	"fmt"
	"time"
)

// Timestamps are stored as fixed-width ISO-8601 UTC strings so the document
// store can order and range-filter them lexically.
const isoLayout = "2006-01-02T15:04:05.000Z"

// NowISO returns the current UTC time in document timestamp form.
func NowISO() string {
	return time.Now().UTC().Format(isoLayout)
}

// FormatISO converts a time into document timestamp form.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// NormalizeISO parses a caller-supplied timestamp (RFC3339 or bare date)
// and rewrites it in document timestamp form, so lexical comparisons
// against stored values stay valid.
func NormalizeISO(s string) (string, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatISO(t), nil
		}
	}
	return "", fmt.Errorf("unrecognized timestamp %q", s)
}
