package calc

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// MonthlyPayment returns the constant monthly mortgage payment for the loan.
//
// Two modes share this entry point, selected by which inputs are supplied:
// with TermMonths set the classic fixed-term annuity formula applies,
// otherwise the payment is loanAmount x (interest + repayment) / 12 / 100,
// the German repayment-rate convention.
func MonthlyPayment(loan model.LoanInputs) float64 {
	if loan.TermMonths > 0 {
		return annuityPayment(loan.Amount(), loan.AnnualInterestRatePct, loan.TermMonths)
	}
	return loan.Amount() * (loan.AnnualInterestRatePct + loan.AnnualRepaymentRatePct) / 12 / 100
}

// annuityPayment computes PMT = L*r / (1-(1+r)^-n). A zero rate degenerates
// to straight division of the principal over the term.
func annuityPayment(loanAmount, annualInterestRatePct float64, termMonths int) float64 {
	n := float64(termMonths)
	r := monthlyRate(annualInterestRatePct)
	if r == 0 {
		return loanAmount / n
	}
	return loanAmount * r / (1 - math.Pow(1+r, -n))
}

// Annuity computes the fixed-term mode result: the constant monthly payment
// plus the totals paid over the full term.
func Annuity(loan model.LoanInputs) model.AnnuityResult {
	payment := MonthlyPayment(loan)
	total := payment * float64(loan.TermMonths)
	return model.AnnuityResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - loan.Amount(),
	}
}
