package model

import "time"

// Transaction types accepted by the ledger.
const (
	TransactionBuy      = "buy"
	TransactionSell     = "sell"
	TransactionDividend = "dividend"
)

// Ledger books. The real book records trades the user actually made;
// the sim book belongs to the simulated-trading module and is subject
// to cash-sufficiency checks.
const (
	BookReal = "real"
	BookSim  = "sim"
)

// Transaction represents a single ledger entry for a stock.
// For buy/sell entries Price is the unit price; for dividend entries
// Price is the per-share dividend amount and Shares the lot size it
// applies to. Records are immutable once created and are edited only
// by whole-record replacement.
type Transaction struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stockId"`
	StockName string    `json:"stockName"`
	Industry  string    `json:"industry,omitempty"`
	Type      string    `json:"type"`
	Shares    int64     `json:"shares"`
	Price     float64   `json:"price"`
	Fee       int64     `json:"fee"`
	Tax       int64     `json:"tax"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// TransactionFilter narrows a ledger listing. Zero values mean no
// constraint for that field.
type TransactionFilter struct {
	StockID   string
	StartDate time.Time
	EndDate   time.Time
}
