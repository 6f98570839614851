package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stocknote/stock-dashboard-backend/internal/accounting"
	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
)

// SimulationService runs the simulated-trading module: a cash ledger
// starting at a fixed initial capital plus its own transaction book,
// fully separate from the real portfolio.
//
// Every trade is all-or-nothing. The full new state (cash, position,
// ledger record) is computed and validated first; only then is it
// committed in one SQL transaction. A rejected trade leaves nothing
// changed.
type SimulationService struct {
	simRepo         *repository.SimulationRepository
	transactionRepo *repository.TransactionRepository
	calculator      *accounting.Calculator
	initialCapital  int64
}

// NewSimulationService creates a new SimulationService with the provided dependencies.
func NewSimulationService(
	simRepo *repository.SimulationRepository,
	transactionRepo *repository.TransactionRepository,
	calculator *accounting.Calculator,
	initialCapital int64,
) *SimulationService {
	return &SimulationService{
		simRepo:         simRepo,
		transactionRepo: transactionRepo,
		calculator:      calculator,
		initialCapital:  initialCapital,
	}
}

// Init creates the cash ledger on first run. Existing state survives
// restarts untouched.
func (s *SimulationService) Init(ctx context.Context) error {
	return s.simRepo.EnsureState(ctx, s.initialCapital)
}

// book re-derives the simulated positions from the sim transaction book.
func (s *SimulationService) book() (*accounting.Book, error) {
	transactions, err := s.transactionRepo.List(model.BookSim, model.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	book, err := accounting.Replay(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to replay simulated ledger: %w", err)
	}
	return book, nil
}

// Status returns the simulated portfolio: remaining cash plus holdings
// valued at the supplied current prices.
func (s *SimulationService) Status(prices map[string]float64) (model.SimulationStatus, error) {
	state, err := s.simRepo.GetState()
	if err != nil {
		return model.SimulationStatus{}, err
	}

	book, err := s.book()
	if err != nil {
		return model.SimulationStatus{}, err
	}

	holdings := valuePositions(book.Active(), prices)
	var marketValue float64
	for _, h := range holdings {
		marketValue += h.MarketValue
	}

	return model.SimulationStatus{
		Cash:           state.Cash,
		InitialCapital: state.InitialCapital,
		Holdings:       holdings,
		MarketValue:    round2(marketValue),
		TotalAssets:    round2(float64(state.Cash) + marketValue),
		RealizedPnL:    round2(book.RealizedPnL()),
	}, nil
}

// Buy executes a simulated purchase. The trade is rejected with
// ErrInsufficientCash if the cash balance cannot cover amount plus fee.
func (s *SimulationService) Buy(ctx context.Context, req request.TradeRequest) (*model.TradeResult, error) {
	amount, fee, _, err := s.calculator.Calculate(model.TransactionBuy, req.Shares, req.Price)
	if err != nil {
		return nil, err
	}

	state, err := s.simRepo.GetState()
	if err != nil {
		return nil, err
	}

	cost := amount + fee
	if state.Cash < cost {
		return nil, fmt.Errorf("%w: need %d, have %d", apperrors.ErrInsufficientCash, cost, state.Cash)
	}

	transaction, err := s.tradeRecord(model.TransactionBuy, req, fee, 0)
	if err != nil {
		return nil, err
	}

	newCash := state.Cash - cost
	if err := s.simRepo.ExecuteTrade(ctx, newCash, transaction); err != nil {
		return nil, err
	}

	return &model.TradeResult{
		Transaction: *transaction,
		Amount:      amount,
		Fee:         fee,
		Cash:        newCash,
	}, nil
}

// Sell executes a simulated sale. The trade is rejected with
// ErrInsufficientShares if the simulated position lacks coverage.
func (s *SimulationService) Sell(ctx context.Context, req request.TradeRequest) (*model.TradeResult, error) {
	amount, fee, tax, err := s.calculator.Calculate(model.TransactionSell, req.Shares, req.Price)
	if err != nil {
		return nil, err
	}

	state, err := s.simRepo.GetState()
	if err != nil {
		return nil, err
	}

	book, err := s.book()
	if err != nil {
		return nil, err
	}
	pos, ok := book.Position(req.StockID)
	if !ok || pos.TotalShares < req.Shares {
		return nil, fmt.Errorf("%w: %s holds %d, selling %d",
			apperrors.ErrInsufficientShares, req.StockID, pos.TotalShares, req.Shares)
	}

	transaction, err := s.tradeRecord(model.TransactionSell, req, fee, tax)
	if err != nil {
		return nil, err
	}

	realized := (req.Price-pos.AvgCost())*float64(req.Shares) - float64(fee) - float64(tax)
	newCash := state.Cash + amount - fee - tax
	if err := s.simRepo.ExecuteTrade(ctx, newCash, transaction); err != nil {
		return nil, err
	}

	return &model.TradeResult{
		Transaction: *transaction,
		Amount:      amount,
		Fee:         fee,
		Tax:         tax,
		Cash:        newCash,
		RealizedPnL: round2(realized),
	}, nil
}

// Reset clears all simulated holdings and transactions and restores
// cash to the initial capital. Only ever invoked explicitly by the
// user.
func (s *SimulationService) Reset(ctx context.Context) error {
	return s.simRepo.Reset(ctx, s.initialCapital)
}

// Transactions returns the simulated trade history in insertion order.
func (s *SimulationService) Transactions() ([]model.Transaction, error) {
	return s.transactionRepo.List(model.BookSim, model.TransactionFilter{})
}

// tradeRecord builds the ledger record for a validated trade. The date
// defaults to today when the request leaves it empty.
func (s *SimulationService) tradeRecord(txType string, req request.TradeRequest, fee, tax int64) (*model.Transaction, error) {
	now := time.Now().UTC()

	date := now.Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		date = parsed
	}

	return &model.Transaction{
		ID:        uuid.New().String(),
		StockID:   req.StockID,
		StockName: req.StockName,
		Industry:  req.Industry,
		Type:      txType,
		Shares:    req.Shares,
		Price:     req.Price,
		Fee:       fee,
		Tax:       tax,
		Date:      date,
		Note:      req.Note,
		CreatedAt: now,
	}, nil
}
