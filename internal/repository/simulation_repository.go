package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// SimulationRepository provides data access methods for the simulated
// portfolio's cash ledger and its transaction book. Trades and resets
// run inside a single SQL transaction so cash and ledger never advance
// separately.
type SimulationRepository struct {
	db *sql.DB
}

// NewSimulationRepository creates a new SimulationRepository with the provided database connection.
func NewSimulationRepository(db *sql.DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

// EnsureState creates the cash ledger row on first use. Existing state
// is left untouched.
func (r *SimulationRepository) EnsureState(ctx context.Context, initialCapital int64) error {
	query := `
		INSERT INTO sim_state (id, cash, initial_capital)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, initialCapital, initialCapital); err != nil {
		return fmt.Errorf("failed to initialize simulation state: %w", err)
	}
	return nil
}

// GetState returns the current cash balance and initial capital.
func (r *SimulationRepository) GetState() (model.SimulationState, error) {
	var state model.SimulationState
	err := r.db.QueryRow(`SELECT cash, initial_capital FROM sim_state WHERE id = 1`).
		Scan(&state.Cash, &state.InitialCapital)
	if err != nil {
		return model.SimulationState{}, fmt.Errorf("failed to query simulation state: %w", err)
	}
	return state, nil
}

// ExecuteTrade commits a fully validated simulated trade: the new cash
// balance and the ledger append go through one SQL transaction, so a
// failure leaves both unchanged. Validation (cash and share coverage)
// happens in the service before this is called.
func (r *SimulationRepository) ExecuteTrade(ctx context.Context, newCash int64, t *model.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin trade transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.ExecContext(ctx,
		`UPDATE sim_state SET cash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`, newCash)
	if err != nil {
		return fmt.Errorf("failed to update cash balance: %w", err)
	}

	insert := `
		INSERT INTO "transaction" (id, book, stock_id, stock_name, industry, type, shares, price, fee, tax, date, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insert,
		t.ID, model.BookSim, t.StockID, t.StockName, t.Industry, t.Type,
		t.Shares, t.Price, t.Fee, t.Tax,
		t.Date.Format(DateFormat), t.Note, t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record simulated trade: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trade: %w", err)
	}
	return nil
}

// Reset clears the simulated book and restores cash to the initial
// capital, atomically.
func (r *SimulationRepository) Reset(ctx context.Context, initialCapital int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM "transaction" WHERE book = ?`, model.BookSim); err != nil {
		return fmt.Errorf("failed to clear simulated transactions: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE sim_state SET cash = ?, initial_capital = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
		initialCapital, initialCapital)
	if err != nil {
		return fmt.Errorf("failed to reset cash balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
