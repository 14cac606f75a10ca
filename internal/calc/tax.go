package calc

import (
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// MonthlyTaxBenefit computes the deductible amounts and resulting tax saving
// for one month of the holding period.
//
// The remaining loan is a linear approximation based on the repayment rate,
// intentionally decoupled from the amortization-derived balance used in the
// schedule. The AFA depreciation is straight-line and therefore constant
// every month.
func MonthlyTaxBenefit(loan model.LoanInputs, tax model.TaxInputs, month int) model.TaxDeduction {
	yearsPassed := float64(month) / 12

	remainingLoan := loan.Amount() * (1 - yearsPassed*fraction(loan.AnnualRepaymentRatePct))
	if remainingLoan < 0 {
		remainingLoan = 0
	}

	monthlyInterest := remainingLoan * monthlyRate(loan.AnnualInterestRatePct)
	monthlyAfa := loan.PurchasePrice * fraction(tax.AfaRatePct) / 12

	return model.TaxDeduction{
		InterestDeduction: monthlyInterest,
		AfaDeduction:      monthlyAfa,
		TaxBenefit:        (monthlyInterest + monthlyAfa) * fraction(tax.MarginalTaxRatePct),
	}
}
