package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/calc"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

func referenceInput() model.ReportInput {
	return model.ReportInput{
		Loan: model.LoanInputs{
			PurchasePrice:          300000,
			DownPayment:            30000,
			AnnualInterestRatePct:  4.0,
			AnnualRepaymentRatePct: 2.0,
		},
		Tax: model.TaxInputs{
			AfaRatePct:         2.0,
			MarginalTaxRatePct: 42.0,
		},
		Rent: model.RentInputs{
			BaseMonthlyRent:     2500,
			AnnualRentGrowthPct: 1.5,
		},
		MonthlyExpenses:     500,
		AppreciationRatePct: 3.0,
	}
}

func TestMetrics(t *testing.T) {
	in := referenceInput()
	schedule, err := calc.AmortizationSchedule(in.Loan, in.Tax)
	if err != nil {
		t.Fatalf("Failed to build schedule: %v", err)
	}

	t.Run("reference case", func(t *testing.T) {
		m, err := calc.Metrics(in, schedule)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if m.LoanTermYears != 27.5 {
			t.Errorf("Expected term 27.5, got %v", m.LoanTermYears)
		}
		if math.Abs(m.MonthlyMortgage-1350.00) > 1e-9 {
			t.Errorf("Expected mortgage 1350.00, got %v", m.MonthlyMortgage)
		}

		// 2500 - (1350 + 500) + first-month tax benefit of 587.37.
		if math.Abs(m.MonthlyCashFlow-1237.37) > 0.01 {
			t.Errorf("Expected cash flow 1237.37, got %v", m.MonthlyCashFlow)
		}
		if math.Abs(m.AnnualCashFlow-m.MonthlyCashFlow*12) > 1e-9 {
			t.Errorf("Expected annual cash flow %v, got %v", m.MonthlyCashFlow*12, m.AnnualCashFlow)
		}
		wantCoC := m.AnnualCashFlow / 30000 * 100
		if math.Abs(m.CashOnCashReturnPct-wantCoC) > 1e-9 {
			t.Errorf("Expected cash-on-cash %v, got %v", wantCoC, m.CashOnCashReturnPct)
		}

		wantFuture := 300000 * math.Pow(1.03, 27.5)
		if math.Abs(m.FuturePropertyValue-wantFuture) > 1e-6 {
			t.Errorf("Expected future value %v, got %v", wantFuture, m.FuturePropertyValue)
		}
		wantEquity := wantFuture - schedule[len(schedule)-1].RemainingBalance
		if math.Abs(m.TotalEquity-wantEquity) > 1e-6 {
			t.Errorf("Expected equity %v, got %v", wantEquity, m.TotalEquity)
		}

		if m.AvgRentalIncome <= 2500 {
			t.Errorf("Expected escalated average above base rent, got %v", m.AvgRentalIncome)
		}
		if m.AnnualTaxBenefit <= 0 || m.AnnualTaxBenefit > m.MonthlyTaxBenefit*12 {
			t.Errorf("Expected annual benefit between 0 and %v, got %v", m.MonthlyTaxBenefit*12, m.AnnualTaxBenefit)
		}
	})

	t.Run("zero down payment has no defined return", func(t *testing.T) {
		noDown := in
		noDown.Loan.DownPayment = 0

		zeroSchedule, err := calc.AmortizationSchedule(noDown.Loan, noDown.Tax)
		if err != nil {
			t.Fatalf("Failed to build schedule: %v", err)
		}
		if _, err := calc.Metrics(noDown, zeroSchedule); !errors.Is(err, apperrors.ErrUndefinedReturn) {
			t.Errorf("Expected ErrUndefinedReturn, got %v", err)
		}
	})

	t.Run("empty schedule leaves schedule-derived metrics zero", func(t *testing.T) {
		paid := in
		paid.Loan.DownPayment = paid.Loan.PurchasePrice

		m, err := calc.Metrics(paid, nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if m.AnnualTaxBenefit != 0 {
			t.Errorf("Expected zero annual benefit, got %v", m.AnnualTaxBenefit)
		}
		if m.AvgRentalIncome != 2500 {
			t.Errorf("Expected base rent fallback 2500, got %v", m.AvgRentalIncome)
		}
	})
}
