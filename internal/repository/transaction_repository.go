package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// One table holds both ledgers; the book column separates the real
// portfolio from the simulated one.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Insert appends a transaction to the given book.
func (r *TransactionRepository) Insert(ctx context.Context, book string, t *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (id, book, stock_id, stock_name, industry, type, shares, price, fee, tax, date, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, book, t.StockID, t.StockName, t.Industry, t.Type,
		t.Shares, t.Price, t.Fee, t.Tax,
		t.Date.Format(DateFormat), t.Note, t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// Update replaces a transaction record wholesale. ID and CreatedAt are
// kept; every other field comes from the replacement.
// Returns ErrTransactionNotFound if the id does not exist in the book.
func (r *TransactionRepository) Update(ctx context.Context, book string, t *model.Transaction) error {
	query := `
		UPDATE "transaction"
		SET stock_id = ?, stock_name = ?, industry = ?, type = ?, shares = ?, price = ?, fee = ?, tax = ?, date = ?, note = ?
		WHERE id = ? AND book = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		t.StockID, t.StockName, t.Industry, t.Type,
		t.Shares, t.Price, t.Fee, t.Tax,
		t.Date.Format(DateFormat), t.Note,
		t.ID, book,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, t.ID)
	}
	return nil
}

// Delete removes a transaction record.
// Returns ErrTransactionNotFound if the id does not exist in the book.
func (r *TransactionRepository) Delete(ctx context.Context, book, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ? AND book = ?`, id, book)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, id)
	}
	return nil
}

// Get retrieves a single transaction by ID within a book.
func (r *TransactionRepository) Get(book, id string) (model.Transaction, error) {
	query := `
		SELECT id, stock_id, stock_name, industry, type, shares, price, fee, tax, date, note, created_at
		FROM "transaction"
		WHERE id = ? AND book = ?
	`
	row := r.db.QueryRow(query, id, book)

	t, err := scanTransaction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, id)
	}
	if err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// List retrieves the transactions of a book, optionally filtered by
// symbol and inclusive date range. Rows come back in insertion order;
// the accounting fold re-sorts chronologically itself and display code
// sorts however the UI wants.
func (r *TransactionRepository) List(book string, filter model.TransactionFilter) ([]model.Transaction, error) {
	query := `
		SELECT id, stock_id, stock_name, industry, type, shares, price, fee, tax, date, note, created_at
		FROM "transaction"
		WHERE book = ?
	`
	args := []any{book}

	if filter.StockID != "" {
		query += ` AND stock_id = ?`
		args = append(args, filter.StockID)
	}
	if !filter.StartDate.IsZero() {
		query += ` AND date >= ?`
		args = append(args, filter.StartDate.Format(DateFormat))
	}
	if !filter.EndDate.IsZero() {
		query += ` AND date <= ?`
		args = append(args, filter.EndDate.Format(DateFormat))
	}

	query += ` ORDER BY rowid ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// Symbols returns the distinct stock IDs present in a book. Used by
// the quote refresher to know which prices to fetch.
func (r *TransactionRepository) Symbols(book string) ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT stock_id FROM "transaction" WHERE book = ? ORDER BY stock_id`, book)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	symbols := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symbols: %w", err)
	}

	return symbols, nil
}

// scanTransaction maps one row of the transaction projection used by
// Get and List into a model.Transaction.
func scanTransaction(scan func(...any) error) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string

	err := scan(
		&t.ID,
		&t.StockID,
		&t.StockName,
		&t.Industry,
		&t.Type,
		&t.Shares,
		&t.Price,
		&t.Fee,
		&t.Tax,
		&dateStr,
		&t.Note,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}
