package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// IndustryUnclassified is used when a transaction carries no industry tag.
const IndustryUnclassified = "unclassified"

// Position is the derived state for one stock: total shares held and
// the weighted-average cost basis. Buy fees are deliberately excluded
// from the cost basis; they only reduce cash and realized results,
// which keeps reported P&L identical to the dashboard's historical
// numbers.
type Position struct {
	StockID     string
	StockName   string
	Industry    string
	TotalShares int64
	TotalCost   float64
}

// AvgCost returns the average cost per share, or 0 for an empty position.
func (p Position) AvgCost() float64 {
	if p.TotalShares <= 0 {
		return 0
	}
	return p.TotalCost / float64(p.TotalShares)
}

// RealizedEvent is the outcome of one completed sell: profit or loss
// locked in against the average cost at the time of sale.
type RealizedEvent struct {
	StockID   string
	StockName string
	Date      time.Time
	Shares    int64
	Price     float64
	AvgCost   float64
	Fee       int64
	Tax       int64
	PnL       float64
}

// Book folds a transaction ledger into per-symbol positions plus the
// cumulative dividend income and realized-sell history. A Book is the
// single place average-cost accounting happens; both the real
// portfolio and the simulated one are Books over different ledgers.
//
// Apply assumes chronological input. Use Replay when transaction order
// is not already guaranteed: average cost depends on accumulated
// history, so folding out of date order produces wrong bases.
type Book struct {
	positions      map[string]*Position
	DividendIncome float64
	Realized       []RealizedEvent
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{positions: make(map[string]*Position)}
}

// Replay folds the full transaction list into a fresh Book, sorting a
// copy by trade date ascending (creation time, then insertion order,
// as tie-breakers) before applying. The stored ledger keeps insertion
// order and display code sorts descending for the UI, so the
// chronological sort lives here and nowhere else.
func Replay(txns []model.Transaction) (*Book, error) {
	ordered := make([]model.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	book := NewBook()
	for _, t := range ordered {
		if err := book.Apply(t); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// Apply folds a single transaction into the Book. On error the Book is
// left untouched; all checks happen before any mutation.
func (b *Book) Apply(t model.Transaction) error {
	if t.Shares <= 0 {
		return fmt.Errorf("shares must be positive: %d", t.Shares)
	}

	switch t.Type {
	case model.TransactionBuy:
		pos := b.ensure(t)
		pos.TotalShares += t.Shares
		pos.TotalCost += float64(t.Shares) * t.Price

	case model.TransactionSell:
		pos, ok := b.positions[t.StockID]
		if !ok || pos.TotalShares < t.Shares {
			return fmt.Errorf("%w: %s holds %d, selling %d",
				apperrors.ErrInsufficientShares, t.StockID, b.shares(t.StockID), t.Shares)
		}
		avg := pos.AvgCost()
		pos.TotalShares -= t.Shares
		if pos.TotalShares == 0 {
			// Basis resets when the position closes; a later re-buy
			// starts from zero with no carried history.
			pos.TotalCost = 0
		} else {
			pos.TotalCost -= float64(t.Shares) * avg
		}
		b.Realized = append(b.Realized, RealizedEvent{
			StockID:   t.StockID,
			StockName: pos.StockName,
			Date:      t.Date,
			Shares:    t.Shares,
			Price:     t.Price,
			AvgCost:   avg,
			Fee:       t.Fee,
			Tax:       t.Tax,
			PnL:       (t.Price-avg)*float64(t.Shares) - float64(t.Fee) - float64(t.Tax),
		})

	case model.TransactionDividend:
		// Dividends never touch shares or cost basis.
		b.DividendIncome += float64(t.Shares) * t.Price

	default:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionType, t.Type)
	}

	return nil
}

func (b *Book) ensure(t model.Transaction) *Position {
	pos, ok := b.positions[t.StockID]
	if !ok {
		industry := t.Industry
		if industry == "" {
			industry = IndustryUnclassified
		}
		pos = &Position{StockID: t.StockID, StockName: t.StockName, Industry: industry}
		b.positions[t.StockID] = pos
	}
	if t.StockName != "" {
		pos.StockName = t.StockName
	}
	if t.Industry != "" {
		pos.Industry = t.Industry
	}
	return pos
}

func (b *Book) shares(stockID string) int64 {
	if pos, ok := b.positions[stockID]; ok {
		return pos.TotalShares
	}
	return 0
}

// Position returns the position for a stock, if any shares were ever
// bought. The second return is false for unknown symbols.
func (b *Book) Position(stockID string) (Position, bool) {
	pos, ok := b.positions[stockID]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// Active returns positions with shares still held, sorted by stock ID.
// Closed positions are excluded from listings but remain in the Book
// so a re-buy reopens them.
func (b *Book) Active() []Position {
	out := make([]Position, 0, len(b.positions))
	for _, pos := range b.positions {
		if pos.TotalShares > 0 {
			out = append(out, *pos)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockID < out[j].StockID })
	return out
}

// RealizedPnL sums the profit and loss of all completed sells.
func (b *Book) RealizedPnL() float64 {
	var total float64
	for _, e := range b.Realized {
		total += e.PnL
	}
	return total
}

// WinRate returns the percentage of realized sells that closed with a
// positive result. Open positions never count; 0 when nothing has been
// realized yet.
func (b *Book) WinRate() float64 {
	if len(b.Realized) == 0 {
		return 0
	}
	var wins int
	for _, e := range b.Realized {
		if e.PnL > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(b.Realized)) * 100
}
