package quotes

// Response is the raw quote payload returned by the market-data API
// for a single symbol.
type Response struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}
