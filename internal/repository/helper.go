package repository

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date storage format for ledger and
// snapshot keys. Trade dates are dates, not timestamps.
const DateFormat = "2006-01-02"

// ParseTime parses a date string in "2006-01-02", RFC3339, or SQLite
// CURRENT_TIMESTAMP format.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{DateFormat, time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
