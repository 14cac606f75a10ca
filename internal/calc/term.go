package calc

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// LoanTermYears derives the payoff horizon in years from the loan amount, the
// interest rate and a fixed annual repayment rate, using the closed-form
// n = -log(1 - (P*r)/PMT) / log(1 + r) with everything expressed monthly.
//
// The result is rounded to one decimal. With a zero interest rate the formula
// degenerates to loanAmount/monthlyPayment months, converted to years with the
// same rounding so the unit is consistent across both branches.
//
// Returns ErrNonAmortizingLoan when the payment does not cover the interest,
// which makes the log argument non-positive and the payoff horizon infinite.
func LoanTermYears(loan model.LoanInputs) (float64, error) {
	loanAmount := loan.Amount()
	if loanAmount < 0 {
		return 0, apperrors.ErrInvalidLoanAmount
	}
	if loanAmount == 0 {
		return 0, nil
	}

	monthlyInterest := monthlyRate(loan.AnnualInterestRatePct)
	monthlyRepayment := monthlyRate(loan.AnnualRepaymentRatePct)
	monthlyPayment := loanAmount * (monthlyInterest + monthlyRepayment)

	if monthlyPayment <= loanAmount*monthlyInterest {
		return 0, apperrors.ErrNonAmortizingLoan
	}

	if monthlyInterest == 0 {
		termMonths := loanAmount / monthlyPayment
		return round1(termMonths / 12), nil
	}

	logArg := 1 - (loanAmount*monthlyInterest)/monthlyPayment
	if logArg <= 0 {
		return 0, apperrors.ErrNonAmortizingLoan
	}

	termMonths := -math.Log(logArg) / math.Log(1+monthlyInterest)
	return round1(termMonths / 12), nil
}
