package validation

import (
	"strings"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
)

// ValidateTrade validates a simulated buy or sell request.
//
// Required fields:
//   - stockId: Must not be empty
//   - shares: Must be positive
//   - price: Must be positive
//
// Optional fields (validated if provided):
//   - date: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateTrade(req request.TradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.StockID) == "" {
		errors["stockId"] = "stockId is required"
	}

	if req.Shares <= 0 {
		errors["shares"] = "shares must be positive"
	}

	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
