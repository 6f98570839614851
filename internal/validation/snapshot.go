package validation

import (
	"strings"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
)

// ValidateSaveSnapshot validates a snapshot save request.
//
// Required fields:
//   - dateKey: Must be in YYYY-MM-DD format
//   - records: Must not be empty; every record needs a stockId
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateSaveSnapshot(req request.SaveSnapshotRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.DateKey) == "" {
		errors["dateKey"] = "dateKey is required"
	} else if _, err := time.Parse("2006-01-02", req.DateKey); err != nil {
		errors["dateKey"] = err.Error()
	}

	if len(req.Records) == 0 {
		errors["records"] = "records must not be empty"
	}
	for _, rec := range req.Records {
		if strings.TrimSpace(rec.StockID) == "" {
			errors["records"] = "every record requires a stockId"
			break
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateDateKey validates a snapshot date path parameter.
func ValidateDateKey(dateKey string) error {
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return &Error{Fields: map[string]string{"dateKey": err.Error()}}
	}
	return nil
}
