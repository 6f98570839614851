package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stocknote/stock-dashboard-backend/internal/accounting"
	"github.com/stocknote/stock-dashboard-backend/internal/api/request"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
	"github.com/stocknote/stock-dashboard-backend/internal/repository"
)

// TransactionService handles the real transaction ledger: the
// append-only, user-editable record of trades the user actually made.
//
// Unlike the simulation path, this ledger enforces neither sell
// coverage nor cash sufficiency: a recorded sell may exceed the
// computed holding, representing a manual correction or a
// broker-reported trade the user is just writing down. Strict checks
// live in SimulationService.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	calculator      *accounting.Calculator
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	calculator *accounting.Calculator,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		calculator:      calculator,
	}
}

// Create validates and appends a transaction to the real ledger,
// assigning its ID and creation timestamp. Fee and tax are computed
// from the configured market rates when the caller does not supply
// them.
func (s *TransactionService) Create(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	transaction.ID = uuid.New().String()
	transaction.CreatedAt = time.Now().UTC()

	if err := s.transactionRepo.Insert(ctx, model.BookReal, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// Update replaces an existing transaction wholesale, keeping its ID
// and creation timestamp. Derived holdings are recomputed from the
// ledger on the next read, so no further invalidation is needed.
func (s *TransactionService) Update(ctx context.Context, id string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.fromRequest(request.CreateTransactionRequest(req))
	if err != nil {
		return nil, err
	}
	transaction.ID = id

	if err := s.transactionRepo.Update(ctx, model.BookReal, transaction); err != nil {
		return nil, err
	}

	updated, err := s.transactionRepo.Get(model.BookReal, id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a transaction from the real ledger.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, model.BookReal, id)
}

// Get retrieves a single transaction by ID.
func (s *TransactionService) Get(id string) (model.Transaction, error) {
	return s.transactionRepo.Get(model.BookReal, id)
}

// List returns the real ledger, optionally filtered by symbol and date
// range, in insertion order. Display code is free to re-sort; the
// accounting fold orders chronologically on its own.
func (s *TransactionService) List(filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.List(model.BookReal, filter)
}

// fromRequest builds a ledger record from a validated request,
// computing fee and tax when absent.
func (s *TransactionService) fromRequest(req request.CreateTransactionRequest) (*model.Transaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	_, fee, tax, err := s.calculator.Calculate(req.Type, req.Shares, req.Price)
	if err != nil {
		return nil, err
	}
	if req.Fee != nil {
		fee = *req.Fee
	}
	if req.Tax != nil {
		tax = *req.Tax
	}

	return &model.Transaction{
		StockID:   req.StockID,
		StockName: req.StockName,
		Industry:  req.Industry,
		Type:      req.Type,
		Shares:    req.Shares,
		Price:     req.Price,
		Fee:       fee,
		Tax:       tax,
		Date:      date,
		Note:      req.Note,
	}, nil
}
