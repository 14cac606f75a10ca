package validation

import (
	"fmt"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/request"
)

// ValidateReport range-checks a report request before it reaches the engine.
func ValidateReport(req request.ReportRequest) error {
	errors := reportFieldErrors(req)
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// reportFieldErrors collects per-field range violations. Shared between the
// report request and the scenario create request, which carries the same
// numeric fields.
func reportFieldErrors(req request.ReportRequest) map[string]string {
	errors := make(map[string]string)

	if req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be greater than zero"
	}
	if req.DownPayment < 0 {
		errors["downPayment"] = "down payment cannot be negative"
	} else if req.DownPayment > req.PurchasePrice {
		errors["downPayment"] = "down payment cannot exceed purchase price"
	}
	if req.AnnualInterestRatePct < 0 || req.AnnualInterestRatePct > MaxInterestRatePct {
		errors["annualInterestRatePct"] = fmt.Sprintf("interest rate must be between 0 and %.0f", MaxInterestRatePct)
	}
	if req.AnnualRepaymentRatePct <= 0 || req.AnnualRepaymentRatePct > MaxRepaymentRatePct {
		errors["annualRepaymentRatePct"] = fmt.Sprintf("repayment rate must be greater than 0 and at most %.0f", MaxRepaymentRatePct)
	}
	if req.MonthlyExpenses < 0 {
		errors["monthlyExpenses"] = "monthly expenses cannot be negative"
	}
	if req.BaseMonthlyRent < 0 {
		errors["baseMonthlyRent"] = "rental income cannot be negative"
	}
	if req.AnnualRentGrowthPct < 0 || req.AnnualRentGrowthPct > MaxRentGrowthPct {
		errors["annualRentGrowthPct"] = fmt.Sprintf("rent growth must be between 0 and %.0f", MaxRentGrowthPct)
	}
	if req.AppreciationRatePct < MinAppreciationPct || req.AppreciationRatePct > MaxAppreciationPct {
		errors["appreciationRatePct"] = fmt.Sprintf("appreciation rate must be between %.0f and %.0f", MinAppreciationPct, MaxAppreciationPct)
	}
	if req.AfaRatePct < 0 || req.AfaRatePct > MaxAfaRatePct {
		errors["afaRatePct"] = fmt.Sprintf("AFA rate must be between 0 and %.0f", MaxAfaRatePct)
	}
	if req.MarginalTaxRatePct < 0 || req.MarginalTaxRatePct > MaxMarginalTaxRatePct {
		errors["marginalTaxRatePct"] = fmt.Sprintf("tax rate must be between 0 and %.0f", MaxMarginalTaxRatePct)
	}
	if req.EtfAnnualReturnPct != nil && *req.EtfAnnualReturnPct < 0 {
		errors["etfAnnualReturnPct"] = "ETF return cannot be negative"
	}

	validateRentIncreases(req.RentIncreases, errors)

	return errors
}

// ValidateAnnuity range-checks a fixed-term annuity request.
func ValidateAnnuity(req request.AnnuityRequest) error {
	errors := make(map[string]string)

	if req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be greater than zero"
	}
	if req.DownPayment < 0 {
		errors["downPayment"] = "down payment cannot be negative"
	} else if req.DownPayment >= req.PurchasePrice {
		errors["downPayment"] = "down payment must be less than purchase price"
	}
	if req.AnnualInterestRatePct < 0 || req.AnnualInterestRatePct > MaxInterestRatePct {
		errors["annualInterestRatePct"] = fmt.Sprintf("interest rate must be between 0 and %.0f", MaxInterestRatePct)
	}
	if req.TermMonths <= 0 || req.TermMonths > MaxTermMonths {
		errors["termMonths"] = fmt.Sprintf("term must be between 1 and %d months", MaxTermMonths)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateRentIncreases(increases []request.RentIncreaseRequest, errors map[string]string) {
	for i, inc := range increases {
		if inc.Year < 1 || inc.Year > MaxRentIncreaseYear {
			errors[fmt.Sprintf("rentIncreases[%d].year", i)] = fmt.Sprintf("year must be between 1 and %d", MaxRentIncreaseYear)
		}
		if inc.MonthlyAmount < 0 {
			errors[fmt.Sprintf("rentIncreases[%d].monthlyAmount", i)] = "amount cannot be negative"
		}
	}
}
