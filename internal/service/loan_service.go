package service

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/calc"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// LoanService exposes the standalone loan calculations: fixed-term annuity
// payments and payoff-term derivation for repayment-rate loans.
type LoanService struct{}

// NewLoanService creates a new LoanService.
func NewLoanService() *LoanService {
	return &LoanService{}
}

// CalculateAnnuity computes the fixed-term mode result: the constant monthly
// payment and the totals paid over the term. Inputs are range-validated by
// the caller.
func (s *LoanService) CalculateAnnuity(loan model.LoanInputs) model.AnnuityResult {
	result := calc.Annuity(loan)
	return model.AnnuityResult{
		MonthlyPayment: roundTo2Decimals(result.MonthlyPayment),
		TotalPayment:   roundTo2Decimals(result.TotalPayment),
		TotalInterest:  roundTo2Decimals(result.TotalInterest),
	}
}

// LoanTerm derives the payoff horizon in years for a repayment-rate loan.
func (s *LoanService) LoanTerm(loan model.LoanInputs) (float64, error) {
	return calc.LoanTermYears(loan)
}

// roundTo2Decimals rounds a float64 to 2 decimal places
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
