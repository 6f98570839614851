package testutil

import (
	"time"

	"github.com/google/uuid"
)

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// Date builds a UTC calendar date for test transactions.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
