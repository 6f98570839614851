package model

// Holding represents a current position derived from the transaction
// ledger, enriched with a market valuation. Holdings are pure
// projections: they are recomputed from the ledger and never stored.
type Holding struct {
	StockID              string  `json:"stockId"`
	StockName            string  `json:"stockName"`
	Industry             string  `json:"industry"`
	TotalShares          int64   `json:"totalShares"`
	TotalCost            float64 `json:"totalCost"`
	AvgCost              float64 `json:"avgCost"`
	CurrentPrice         float64 `json:"currentPrice"`
	MarketValue          float64 `json:"marketValue"`
	UnrealizedPnL        float64 `json:"unrealizedPnl"`
	UnrealizedPnLPercent float64 `json:"unrealizedPnlPercent"`
}

// PortfolioSummary aggregates all active holdings plus realized
// results into the portfolio-level view the dashboard renders.
type PortfolioSummary struct {
	TotalCost            float64 `json:"totalCost"`
	MarketValue          float64 `json:"marketValue"`
	UnrealizedPnL        float64 `json:"unrealizedPnl"`
	UnrealizedPnLPercent float64 `json:"unrealizedPnlPercent"`
	RealizedPnL          float64 `json:"realizedPnl"`
	DividendIncome       float64 `json:"dividendIncome"`
	WinRate              float64 `json:"winRate"`
	HoldingCount         int     `json:"holdingCount"`
	RealizedTradeCount   int     `json:"realizedTradeCount"`
}

// IndustryWeight is one slice of the industry distribution chart:
// the market value held in one industry and its share of the total.
type IndustryWeight struct {
	Industry    string  `json:"industry"`
	MarketValue float64 `json:"marketValue"`
	Percent     float64 `json:"percent"`
}

// RealizedRecord is a completed sell with its locked-in profit or
// loss, computed against the average cost at the time of sale.
type RealizedRecord struct {
	StockID   string  `json:"stockId"`
	StockName string  `json:"stockName"`
	Date      string  `json:"date"`
	Shares    int64   `json:"shares"`
	Price     float64 `json:"price"`
	AvgCost   float64 `json:"avgCost"`
	Fee       int64   `json:"fee"`
	Tax       int64   `json:"tax"`
	PnL       float64 `json:"pnl"`
}

// ExportRow is the flat tabular shape handed to CSV/report exporters.
type ExportRow struct {
	StockID      string  `json:"stockId"`
	StockName    string  `json:"stockName"`
	Shares       int64   `json:"shares"`
	AvgCost      float64 `json:"avgCost"`
	CurrentPrice float64 `json:"currentPrice"`
	MarketValue  float64 `json:"marketValue"`
	PnL          float64 `json:"pnl"`
	PnLPercent   float64 `json:"pnlPercent"`
}
