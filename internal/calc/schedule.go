package calc

import (
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// AmortizationSchedule produces the full month-by-month schedule for a
// repayment-rate loan: constant payment split into interest and principal,
// remaining balance, and the month's tax deduction breakdown.
//
// The number of payments is the truncated month count of the one-decimal
// loan term, matching how terms are reported. The recorded balance is floored
// at zero while the running balance is carried forward unfloored, so the last
// row absorbs any sub-payment residual.
func AmortizationSchedule(loan model.LoanInputs, tax model.TaxInputs) ([]model.AmortizationRow, error) {
	termYears, err := LoanTermYears(loan)
	if err != nil {
		return nil, err
	}

	numPayments := int(termYears * 12)
	monthlyPayment := MonthlyPayment(loan)
	monthlyInterestRate := monthlyRate(loan.AnnualInterestRatePct)

	rows := make([]model.AmortizationRow, 0, numPayments)
	remainingBalance := loan.Amount()

	for month := 1; month <= numPayments; month++ {
		deduction := MonthlyTaxBenefit(loan, tax, month)

		interest := remainingBalance * monthlyInterestRate
		principal := monthlyPayment - interest
		remainingBalance -= principal

		recorded := remainingBalance
		if recorded < 0 {
			recorded = 0
		}

		rows = append(rows, model.AmortizationRow{
			Month:             month,
			Payment:           monthlyPayment,
			Principal:         principal,
			Interest:          interest,
			RemainingBalance:  recorded,
			InterestDeduction: deduction.InterestDeduction,
			AfaDeduction:      deduction.AfaDeduction,
			TaxBenefit:        deduction.TaxBenefit,
		})
	}

	return rows, nil
}
