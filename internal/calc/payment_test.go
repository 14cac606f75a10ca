package calc_test

import (
	"math"
	"testing"

	"github.com/immocalc/Immo-Calculator-Backend/internal/calc"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("repayment-rate mode is constant interest plus repayment", func(t *testing.T) {
		payment := calc.MonthlyPayment(model.LoanInputs{
			PurchasePrice:          300000,
			DownPayment:            30000,
			AnnualInterestRatePct:  4.0,
			AnnualRepaymentRatePct: 2.0,
		})

		// 270000 * 6% / 12 = 1350.00
		if math.Abs(payment-1350.00) > 1e-9 {
			t.Errorf("Expected 1350.00, got %v", payment)
		}
	})

	t.Run("fixed-term mode uses the annuity formula", func(t *testing.T) {
		// 100k at 5% for 30 years is the classic ~536.82/month case.
		payment := calc.MonthlyPayment(model.LoanInputs{
			PurchasePrice:         100000,
			DownPayment:           0,
			AnnualInterestRatePct: 5.0,
			TermMonths:            360,
		})

		if math.Abs(payment-536.82) > 0.01 {
			t.Errorf("Expected approximately 536.82, got %v", payment)
		}
	})

	t.Run("fixed-term mode with zero rate divides the principal evenly", func(t *testing.T) {
		payment := calc.MonthlyPayment(model.LoanInputs{
			PurchasePrice:         1200,
			DownPayment:           0,
			AnnualInterestRatePct: 0,
			TermMonths:            12,
		})

		if math.Abs(payment-100.0) > 1e-9 {
			t.Errorf("Expected 100.00, got %v", payment)
		}
	})
}

func TestAnnuity(t *testing.T) {
	t.Run("totals are consistent with the monthly payment", func(t *testing.T) {
		loan := model.LoanInputs{
			PurchasePrice:         10000,
			DownPayment:           0,
			AnnualInterestRatePct: 12.0,
			TermMonths:            24,
		}
		result := calc.Annuity(loan)

		if result.MonthlyPayment <= 0 {
			t.Fatalf("Expected positive monthly payment, got %v", result.MonthlyPayment)
		}
		if math.Abs(result.TotalPayment-result.MonthlyPayment*24) > 1e-9 {
			t.Errorf("Total payment %v inconsistent with monthly %v", result.TotalPayment, result.MonthlyPayment)
		}
		if math.Abs(result.TotalInterest-(result.TotalPayment-10000)) > 1e-9 {
			t.Errorf("Total interest %v inconsistent with total payment %v", result.TotalInterest, result.TotalPayment)
		}
		if result.TotalInterest <= 0 {
			t.Errorf("Expected positive total interest, got %v", result.TotalInterest)
		}
	})
}
