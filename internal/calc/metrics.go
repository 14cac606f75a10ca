package calc

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// Metrics aggregates the summary investment metrics from the inputs and a
// precomputed amortization schedule.
//
// The monthly cash flow deliberately uses the base rent and the first month's
// tax benefit rather than escalated averages; the escalated average is carried
// separately in AvgRentalIncome. Returns ErrUndefinedReturn when the down
// payment is zero, since cash-on-cash return divides by it.
func Metrics(in model.ReportInput, schedule []model.AmortizationRow) (model.InvestmentMetrics, error) {
	loanTermYears, err := LoanTermYears(in.Loan)
	if err != nil {
		return model.InvestmentMetrics{}, err
	}

	monthlyMortgage := MonthlyPayment(in.Loan)
	initial := MonthlyTaxBenefit(in.Loan, in.Tax, 1)

	monthlyCashFlow := in.Rent.BaseMonthlyRent - (monthlyMortgage + in.MonthlyExpenses) + initial.TaxBenefit
	annualCashFlow := monthlyCashFlow * 12

	if in.Loan.DownPayment == 0 {
		return model.InvestmentMetrics{}, apperrors.ErrUndefinedReturn
	}
	cashOnCashReturn := annualCashFlow / in.Loan.DownPayment * 100

	futureValue := in.Loan.PurchasePrice * math.Pow(1+fraction(in.AppreciationRatePct), loanTermYears)
	if math.IsInf(futureValue, 0) || math.IsNaN(futureValue) {
		return model.InvestmentMetrics{}, apperrors.ErrComputation
	}

	var remainingBalance float64
	if len(schedule) > 0 {
		remainingBalance = schedule[len(schedule)-1].RemainingBalance
	}
	totalEquity := futureValue - remainingBalance

	var benefitSum float64
	for _, row := range schedule {
		benefitSum += row.TaxBenefit
	}
	var annualTaxBenefit float64
	if len(schedule) > 0 {
		annualTaxBenefit = benefitSum / float64(len(schedule)) * 12
	}

	return model.InvestmentMetrics{
		LoanTermYears:       loanTermYears,
		MonthlyMortgage:     monthlyMortgage,
		MonthlyCashFlow:     monthlyCashFlow,
		AnnualCashFlow:      annualCashFlow,
		CashOnCashReturnPct: cashOnCashReturn,
		FuturePropertyValue: futureValue,
		TotalEquity:         totalEquity,
		MonthlyTaxBenefit:   initial.TaxBenefit,
		AnnualTaxBenefit:    annualTaxBenefit,
		AvgRentalIncome:     AverageRent(in.Rent, len(schedule)),
	}, nil
}
