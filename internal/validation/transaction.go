package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"buy": true, "sell": true, "dividend": true,
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - stockId: Must not be empty
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: buy, sell, dividend
//   - shares: Must be positive
//   - price: Must not be negative
//
// Optional fields (validated if provided):
//   - fee, tax: Must not be negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.StockID) == "" {
		errors["stockId"] = "stockId is required"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Shares <= 0 {
		errors["shares"] = "shares must be positive"
	}

	if req.Price < 0 {
		errors["price"] = "price must not be negative"
	}

	if req.Fee != nil && *req.Fee < 0 {
		errors["fee"] = "fee must not be negative"
	}

	if req.Tax != nil && *req.Tax < 0 {
		errors["tax"] = "tax must not be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction replacement request.
// Edits are whole-record replacements, so the same constraints apply as
// for creation.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	return ValidateCreateTransaction(request.CreateTransactionRequest(req))
}

// ValidateListFilter validates the optional date-range filter of a
// ledger listing. Returns the parsed start and end dates (zero when
// absent).
func ValidateListFilter(startDate, endDate string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return time.Time{}, time.Time{}, &Error{Fields: map[string]string{"startDate": err.Error()}}
		}
	}
	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return time.Time{}, time.Time{}, &Error{Fields: map[string]string{"endDate": err.Error()}}
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s after %s", ErrInvalidDateRange, startDate, endDate)
	}

	return start, end, nil
}
