package accounting

import (
	"errors"
	"testing"

	"github.com/stocknote/stock-dashboard-backend/internal/apperrors"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

func TestCalculator_Calculate(t *testing.T) {
	calc := NewCalculator(DefaultFeeRate, DefaultSellTaxRate)

	t.Run("buy fee is truncated to whole dollars", func(t *testing.T) {
		amount, fee, tax, err := calc.Calculate(model.TransactionBuy, 1000, 580)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount != 580000 {
			t.Errorf("Expected amount 580000, got %d", amount)
		}
		// 580000 * 0.001425 = 826.5, truncated
		if fee != 826 {
			t.Errorf("Expected fee 826, got %d", fee)
		}
		if tax != 0 {
			t.Errorf("Expected no tax on buy, got %d", tax)
		}
	})

	t.Run("sell adds transaction tax", func(t *testing.T) {
		amount, fee, tax, err := calc.Calculate(model.TransactionSell, 1000, 580)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount != 580000 {
			t.Errorf("Expected amount 580000, got %d", amount)
		}
		if fee != 826 {
			t.Errorf("Expected fee 826, got %d", fee)
		}
		if tax != 1740 {
			t.Errorf("Expected tax 1740, got %d", tax)
		}
	})

	t.Run("dividend carries no fee or tax", func(t *testing.T) {
		amount, fee, tax, err := calc.Calculate(model.TransactionDividend, 2000, 1.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount != 3000 {
			t.Errorf("Expected amount 3000, got %d", amount)
		}
		if fee != 0 || tax != 0 {
			t.Errorf("Expected zero fee/tax, got fee=%d tax=%d", fee, tax)
		}
	})

	t.Run("fractional prices round amount half-up", func(t *testing.T) {
		amount, _, _, err := calc.Calculate(model.TransactionBuy, 1000, 58.55)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount != 58550 {
			t.Errorf("Expected amount 58550, got %d", amount)
		}
	})

	t.Run("rejects non-positive shares", func(t *testing.T) {
		if _, _, _, err := calc.Calculate(model.TransactionBuy, 0, 100); err == nil {
			t.Error("Expected error for zero shares")
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, _, _, err := calc.Calculate(model.TransactionBuy, 100, -1)
		if !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		_, _, _, err := calc.Calculate("short", 100, 50)
		if !errors.Is(err, apperrors.ErrInvalidTransactionType) {
			t.Errorf("Expected ErrInvalidTransactionType, got %v", err)
		}
	})
}
