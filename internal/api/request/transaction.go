package request

// CreateTransactionRequest is the payload for adding a ledger entry.
// Fee and Tax are optional; when omitted they are computed from the
// configured market rates.
type CreateTransactionRequest struct {
	StockID   string  `json:"stockId"`
	StockName string  `json:"stockName"`
	Industry  string  `json:"industry"`
	Type      string  `json:"type"`
	Shares    int64   `json:"shares"`
	Price     float64 `json:"price"`
	Fee       *int64  `json:"fee,omitempty"`
	Tax       *int64  `json:"tax,omitempty"`
	Date      string  `json:"date"`
	Note      string  `json:"note"`
}

// UpdateTransactionRequest replaces a ledger entry wholesale; edits are
// whole-record replacements, so the shape matches creation.
type UpdateTransactionRequest struct {
	StockID   string  `json:"stockId"`
	StockName string  `json:"stockName"`
	Industry  string  `json:"industry"`
	Type      string  `json:"type"`
	Shares    int64   `json:"shares"`
	Price     float64 `json:"price"`
	Fee       *int64  `json:"fee,omitempty"`
	Tax       *int64  `json:"tax,omitempty"`
	Date      string  `json:"date"`
	Note      string  `json:"note"`
}
