package request

// TradeRequest is the payload for a simulated buy or sell. Date is
// optional and defaults to today.
type TradeRequest struct {
	StockID   string  `json:"stockId"`
	StockName string  `json:"stockName"`
	Industry  string  `json:"industry"`
	Shares    int64   `json:"shares"`
	Price     float64 `json:"price"`
	Date      string  `json:"date,omitempty"`
	Note      string  `json:"note,omitempty"`
}
