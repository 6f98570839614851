package service

import (
	"fmt"
	"sort"

	"github.com/stocknote/stock-dashboard-backend/internal/accounting"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
)

// PortfolioService computes the portfolio dashboard views: valued
// holdings, portfolio summary, industry distribution, realized
// history, and the flat export shape. Everything is a pure projection
// over the real ledger plus externally supplied current prices; no
// derived state is ever stored.
type PortfolioService struct {
	transactionRepo *repository.TransactionRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependency.
func NewPortfolioService(transactionRepo *repository.TransactionRepository) *PortfolioService {
	return &PortfolioService{transactionRepo: transactionRepo}
}

// book re-derives the accounting state from the full real ledger.
func (s *PortfolioService) book() (*accounting.Book, error) {
	transactions, err := s.transactionRepo.List(model.BookReal, model.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	book, err := accounting.Replay(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to replay ledger: %w", err)
	}
	return book, nil
}

// Holdings returns all active positions valued at the supplied current
// prices. Symbols with no quote fall back to their average cost.
func (s *PortfolioService) Holdings(prices map[string]float64) ([]model.Holding, error) {
	book, err := s.book()
	if err != nil {
		return nil, err
	}
	return valuePositions(book.Active(), prices), nil
}

// Summary aggregates all active holdings plus realized results into
// the portfolio-level totals the dashboard header shows.
func (s *PortfolioService) Summary(prices map[string]float64) (model.PortfolioSummary, error) {
	book, err := s.book()
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	holdings := valuePositions(book.Active(), prices)

	var totalCost, marketValue float64
	for _, h := range holdings {
		totalCost += h.TotalCost
		marketValue += h.MarketValue
	}

	unrealized := marketValue - totalCost
	var unrealizedPercent float64
	if totalCost > 0 {
		unrealizedPercent = unrealized / totalCost * 100
	}

	return model.PortfolioSummary{
		TotalCost:            round2(totalCost),
		MarketValue:          round2(marketValue),
		UnrealizedPnL:        round2(unrealized),
		UnrealizedPnLPercent: round2(unrealizedPercent),
		RealizedPnL:          round2(book.RealizedPnL()),
		DividendIncome:       round2(book.DividendIncome),
		WinRate:              round2(book.WinRate()),
		HoldingCount:         len(holdings),
		RealizedTradeCount:   len(book.Realized),
	}, nil
}

// Distribution groups the market value of active holdings by industry
// and computes each group's share of the total.
func (s *PortfolioService) Distribution(prices map[string]float64) ([]model.IndustryWeight, error) {
	book, err := s.book()
	if err != nil {
		return nil, err
	}

	holdings := valuePositions(book.Active(), prices)

	var total float64
	byIndustry := make(map[string]float64)
	for _, h := range holdings {
		byIndustry[h.Industry] += h.MarketValue
		total += h.MarketValue
	}

	weights := make([]model.IndustryWeight, 0, len(byIndustry))
	for industry, value := range byIndustry {
		var percent float64
		if total > 0 {
			percent = value / total * 100
		}
		weights = append(weights, model.IndustryWeight{
			Industry:    industry,
			MarketValue: round2(value),
			Percent:     round2(percent),
		})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].MarketValue != weights[j].MarketValue {
			return weights[i].MarketValue > weights[j].MarketValue
		}
		return weights[i].Industry < weights[j].Industry
	})

	return weights, nil
}

// Realized returns the completed-sell history, newest first.
func (s *PortfolioService) Realized() ([]model.RealizedRecord, error) {
	book, err := s.book()
	if err != nil {
		return nil, err
	}

	records := make([]model.RealizedRecord, 0, len(book.Realized))
	for _, e := range book.Realized {
		records = append(records, model.RealizedRecord{
			StockID:   e.StockID,
			StockName: e.StockName,
			Date:      e.Date.Format(repository.DateFormat),
			Shares:    e.Shares,
			Price:     e.Price,
			AvgCost:   round2(e.AvgCost),
			Fee:       e.Fee,
			Tax:       e.Tax,
			PnL:       round2(e.PnL),
		})
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })

	return records, nil
}

// ExportRows flattens the valued holdings into the tabular shape
// consumed by CSV/report exporters.
func (s *PortfolioService) ExportRows(prices map[string]float64) ([]model.ExportRow, error) {
	holdings, err := s.Holdings(prices)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ExportRow, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, model.ExportRow{
			StockID:      h.StockID,
			StockName:    h.StockName,
			Shares:       h.TotalShares,
			AvgCost:      h.AvgCost,
			CurrentPrice: h.CurrentPrice,
			MarketValue:  h.MarketValue,
			PnL:          h.UnrealizedPnL,
			PnLPercent:   h.UnrealizedPnLPercent,
		})
	}
	return rows, nil
}
