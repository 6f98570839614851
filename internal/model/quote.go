package model

import "time"

// Quote is a current-price observation for a single stock, supplied
// by the external market-data feed. The accounting engine treats the
// price as an opaque input and tolerates missing symbols.
type Quote struct {
	StockID   string    `json:"stockId"`
	Name      string    `json:"name,omitempty"`
	Price     float64   `json:"price"`
	FetchedAt time.Time `json:"fetchedAt"`
}
