package calc_test

import (
	"math"
	"testing"

	"github.com/immocalc/Immo-Calculator-Backend/internal/calc"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

func TestAmortizationSchedule(t *testing.T) {
	loan := model.LoanInputs{
		PurchasePrice:          300000,
		DownPayment:            30000,
		AnnualInterestRatePct:  4.0,
		AnnualRepaymentRatePct: 2.0,
	}
	tax := model.TaxInputs{AfaRatePct: 2.0, MarginalTaxRatePct: 42.0}

	t.Run("schedule shape and first row", func(t *testing.T) {
		rows, err := calc.AmortizationSchedule(loan, tax)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		// 27.5 years of monthly rows.
		if len(rows) != 330 {
			t.Fatalf("Expected 330 rows, got %d", len(rows))
		}

		first := rows[0]
		if first.Month != 1 {
			t.Errorf("Expected first row month 1, got %d", first.Month)
		}
		if math.Abs(first.Payment-1350.00) > 1e-9 {
			t.Errorf("Expected payment 1350.00, got %v", first.Payment)
		}
		if math.Abs(first.Interest-900.00) > 0.01 {
			t.Errorf("Expected first-month interest 900.00, got %v", first.Interest)
		}
		if math.Abs(first.Principal-450.00) > 0.01 {
			t.Errorf("Expected first-month principal 450.00, got %v", first.Principal)
		}
		if math.Abs(first.RemainingBalance-269550.00) > 0.01 {
			t.Errorf("Expected balance 269550.00, got %v", first.RemainingBalance)
		}
	})

	t.Run("rows are internally consistent", func(t *testing.T) {
		rows, err := calc.AmortizationSchedule(loan, tax)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		totalPrincipal := 0.0
		for i, row := range rows {
			if math.Abs(row.Interest+row.Principal-row.Payment) > 1e-9 {
				t.Fatalf("Row %d: interest %v + principal %v != payment %v", row.Month, row.Interest, row.Principal, row.Payment)
			}
			if i > 0 && row.RemainingBalance > rows[i-1].RemainingBalance {
				t.Fatalf("Row %d: balance %v grew from %v", row.Month, row.RemainingBalance, rows[i-1].RemainingBalance)
			}
			totalPrincipal += row.Principal
		}

		// The truncated term leaves at most one payment of residual debt.
		if math.Abs(totalPrincipal-270000) > 1350 {
			t.Errorf("Expected total principal near 270000, got %v", totalPrincipal)
		}
		if last := rows[len(rows)-1].RemainingBalance; last >= 1350 {
			t.Errorf("Expected final balance below one payment, got %v", last)
		}
	})

	t.Run("rows carry tax deductions", func(t *testing.T) {
		rows, err := calc.AmortizationSchedule(loan, tax)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		first := rows[0]
		want := calc.MonthlyTaxBenefit(loan, tax, 1)
		if first.TaxBenefit != want.TaxBenefit {
			t.Errorf("Expected tax benefit %v, got %v", want.TaxBenefit, first.TaxBenefit)
		}
		if first.AfaDeduction != want.AfaDeduction {
			t.Errorf("Expected AFA deduction %v, got %v", want.AfaDeduction, first.AfaDeduction)
		}
	})

	t.Run("zero interest amortizes linearly", func(t *testing.T) {
		zero := model.LoanInputs{
			PurchasePrice:          100000,
			DownPayment:            0,
			AnnualInterestRatePct:  0,
			AnnualRepaymentRatePct: 5.0,
		}
		rows, err := calc.AmortizationSchedule(zero, tax)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(rows) != 240 {
			t.Fatalf("Expected 240 rows, got %d", len(rows))
		}
		for _, row := range rows {
			if row.Interest != 0 {
				t.Fatalf("Row %d: expected zero interest, got %v", row.Month, row.Interest)
			}
		}
		if last := rows[len(rows)-1].RemainingBalance; math.Abs(last) > 0.01 {
			t.Errorf("Expected full payoff, got %v", last)
		}
	})

	t.Run("non-amortizing loan surfaces the solver error", func(t *testing.T) {
		bad := loan
		bad.AnnualRepaymentRatePct = 0
		if _, err := calc.AmortizationSchedule(bad, tax); err == nil {
			t.Error("Expected error for non-amortizing loan, got nil")
		}
	})
}
