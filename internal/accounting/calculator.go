// Package accounting implements the position and cash accounting engine:
// fee/tax calculation, the average-cost fold over the transaction ledger,
// and realized profit/loss tracking. Everything in this package is pure
// computation over in-memory values; persistence and HTTP concerns live
// in the repository and service layers.
package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// Default Taiwan market rates: 0.1425% broker commission on both sides,
// 0.3% securities transaction tax on sells only.
const (
	DefaultFeeRate     = 0.001425
	DefaultSellTaxRate = 0.003
)

// Calculator computes the gross amount, broker fee, and transaction tax
// for a trade. It is pure and side-effect-free; both the real ledger
// path and the simulation path must share one instance so the rates
// cannot diverge.
type Calculator struct {
	feeRate     decimal.Decimal
	sellTaxRate decimal.Decimal
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(feeRate, sellTaxRate float64) *Calculator {
	return &Calculator{
		feeRate:     decimal.NewFromFloat(feeRate),
		sellTaxRate: decimal.NewFromFloat(sellTaxRate),
	}
}

// Calculate returns (amount, fee, tax) in whole currency units for a
// transaction of the given type.
//
// amount is shares*price rounded half-up to the nearest dollar. The fee
// applies to buys and sells and the tax to sells only; both are
// truncated to whole dollars, matching broker statements (a 1000-share
// buy at 580 yields fee 826, not 827).
func (c *Calculator) Calculate(txType string, shares int64, price float64) (amount, fee, tax int64, err error) {
	if shares <= 0 {
		return 0, 0, 0, fmt.Errorf("shares must be positive: %d", shares)
	}
	if price < 0 {
		return 0, 0, 0, fmt.Errorf("%w: price %f", apperrors.ErrNegativeAmount, price)
	}

	gross := decimal.NewFromInt(shares).Mul(decimal.NewFromFloat(price))
	amount = gross.Round(0).IntPart()

	switch txType {
	case model.TransactionBuy:
		fee = gross.Mul(c.feeRate).RoundDown(0).IntPart()
	case model.TransactionSell:
		fee = gross.Mul(c.feeRate).RoundDown(0).IntPart()
		tax = gross.Mul(c.sellTaxRate).RoundDown(0).IntPart()
	case model.TransactionDividend:
		// No fee or tax on dividend entries.
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionType, txType)
	}

	return amount, fee, tax, nil
}
