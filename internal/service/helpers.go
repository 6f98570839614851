package service

import (
	"math"

	"github.com/stocknote/stock-dashboard-backend/internal/accounting"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// round2 rounds a monetary value to two decimals for API responses.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// valuePositions projects accounting positions into valued holdings
// using externally supplied current prices. Prices are untrusted and
// possibly missing: a symbol without a quote is valued at its average
// cost, which yields zero unrealized P&L instead of a crash.
func valuePositions(positions []accounting.Position, prices map[string]float64) []model.Holding {
	holdings := make([]model.Holding, 0, len(positions))

	for _, pos := range positions {
		price, ok := prices[pos.StockID]
		if !ok || price <= 0 {
			price = pos.AvgCost()
		}

		marketValue := price * float64(pos.TotalShares)
		pnl := marketValue - pos.TotalCost

		var pnlPercent float64
		if pos.TotalCost > 0 {
			pnlPercent = pnl / pos.TotalCost * 100
		}

		holdings = append(holdings, model.Holding{
			StockID:              pos.StockID,
			StockName:            pos.StockName,
			Industry:             pos.Industry,
			TotalShares:          pos.TotalShares,
			TotalCost:            round2(pos.TotalCost),
			AvgCost:              round2(pos.AvgCost()),
			CurrentPrice:         price,
			MarketValue:          round2(marketValue),
			UnrealizedPnL:        round2(pnl),
			UnrealizedPnLPercent: round2(pnlPercent),
		})
	}

	return holdings
}
