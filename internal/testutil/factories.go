package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test
// ledger entries.
//
// Example usage:
//
//	// Simple creation with defaults (buy 1000 @ 100 in the real book)
//	tx := testutil.NewTransaction("2330").Build(t, db)
//
//	// Customized entry
//	tx := testutil.NewTransaction("2330").
//	    Sell().
//	    WithShares(500).
//	    WithPrice(130).
//	    WithDate(testutil.Date(2024, 3, 5)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID        string
	Book      string
	StockID   string
	StockName string
	Industry  string
	Type      string
	Shares    int64
	Price     float64
	Fee       int64
	Tax       int64
	Date      time.Time
	Note      string
	CreatedAt time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction(stockID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		Book:      model.BookReal,
		StockID:   stockID,
		StockName: "Test Stock " + stockID,
		Industry:  "semiconductor",
		Type:      model.TransactionBuy,
		Shares:    1000,
		Price:     100,
		Date:      Date(2024, 1, 15),
		CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

// InBook places the entry in a specific ledger book.
func (b *TransactionBuilder) InBook(book string) *TransactionBuilder {
	b.Book = book
	return b
}

// Sell marks the entry as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionSell
	return b
}

// Dividend marks the entry as a dividend.
func (b *TransactionBuilder) Dividend() *TransactionBuilder {
	b.Type = model.TransactionDividend
	return b
}

// WithShares sets the share count.
func (b *TransactionBuilder) WithShares(shares int64) *TransactionBuilder {
	b.Shares = shares
	return b
}

// WithPrice sets the unit price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithFeeTax sets explicit fee and tax amounts.
func (b *TransactionBuilder) WithFeeTax(fee, tax int64) *TransactionBuilder {
	b.Fee = fee
	b.Tax = tax
	return b
}

// WithDate sets the trade date and aligns the creation timestamp.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	b.CreatedAt = date.Add(9 * time.Hour)
	return b
}

// WithIndustry sets the industry tag.
func (b *TransactionBuilder) WithIndustry(industry string) *TransactionBuilder {
	b.Industry = industry
	return b
}

// WithName sets the display name.
func (b *TransactionBuilder) WithName(name string) *TransactionBuilder {
	b.StockName = name
	return b
}

// Build inserts the transaction into the database and returns the model.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, book, stock_id, stock_name, industry, type, shares, price, fee, tax, date, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query,
		b.ID, b.Book, b.StockID, b.StockName, b.Industry, b.Type,
		b.Shares, b.Price, b.Fee, b.Tax,
		b.Date.Format("2006-01-02"), b.Note, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}

	return model.Transaction{
		ID:        b.ID,
		StockID:   b.StockID,
		StockName: b.StockName,
		Industry:  b.Industry,
		Type:      b.Type,
		Shares:    b.Shares,
		Price:     b.Price,
		Fee:       b.Fee,
		Tax:       b.Tax,
		Date:      b.Date,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}
