package validation

import (
	"fmt"
	"strings"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/request"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

func ValidateCreateScenario(req request.CreateScenarioRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	// Optional but has constraints
	if len(req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	for field, msg := range reportFieldErrors(scenarioAsReport(req)) {
		errors[field] = msg
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateScenario(req request.UpdateScenarioRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Description != nil && len(*req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	if req.PurchasePrice != nil && *req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be greater than zero"
	}
	if req.DownPayment != nil && *req.DownPayment < 0 {
		errors["downPayment"] = "down payment cannot be negative"
	}
	if req.AnnualInterestRatePct != nil && (*req.AnnualInterestRatePct < 0 || *req.AnnualInterestRatePct > MaxInterestRatePct) {
		errors["annualInterestRatePct"] = fmt.Sprintf("interest rate must be between 0 and %.0f", MaxInterestRatePct)
	}
	if req.AnnualRepaymentRatePct != nil && (*req.AnnualRepaymentRatePct <= 0 || *req.AnnualRepaymentRatePct > MaxRepaymentRatePct) {
		errors["annualRepaymentRatePct"] = fmt.Sprintf("repayment rate must be greater than 0 and at most %.0f", MaxRepaymentRatePct)
	}
	if req.MonthlyExpenses != nil && *req.MonthlyExpenses < 0 {
		errors["monthlyExpenses"] = "monthly expenses cannot be negative"
	}
	if req.BaseMonthlyRent != nil && *req.BaseMonthlyRent < 0 {
		errors["baseMonthlyRent"] = "rental income cannot be negative"
	}
	if req.AnnualRentGrowthPct != nil && (*req.AnnualRentGrowthPct < 0 || *req.AnnualRentGrowthPct > MaxRentGrowthPct) {
		errors["annualRentGrowthPct"] = fmt.Sprintf("rent growth must be between 0 and %.0f", MaxRentGrowthPct)
	}
	if req.AppreciationRatePct != nil && (*req.AppreciationRatePct < MinAppreciationPct || *req.AppreciationRatePct > MaxAppreciationPct) {
		errors["appreciationRatePct"] = fmt.Sprintf("appreciation rate must be between %.0f and %.0f", MinAppreciationPct, MaxAppreciationPct)
	}
	if req.AfaRatePct != nil && (*req.AfaRatePct < 0 || *req.AfaRatePct > MaxAfaRatePct) {
		errors["afaRatePct"] = fmt.Sprintf("AFA rate must be between 0 and %.0f", MaxAfaRatePct)
	}
	if req.MarginalTaxRatePct != nil && (*req.MarginalTaxRatePct < 0 || *req.MarginalTaxRatePct > MaxMarginalTaxRatePct) {
		errors["marginalTaxRatePct"] = fmt.Sprintf("tax rate must be between 0 and %.0f", MaxMarginalTaxRatePct)
	}
	if req.RentIncreases != nil {
		validateRentIncreases(*req.RentIncreases, errors)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateAddRentIncrease checks one rent increase addition.
func ValidateAddRentIncrease(req request.AddRentIncreaseRequest) error {
	errors := make(map[string]string)

	if req.Year < 1 || req.Year > MaxRentIncreaseYear {
		errors["year"] = fmt.Sprintf("year must be between 1 and %d", MaxRentIncreaseYear)
	}
	if req.MonthlyAmount < 0 {
		errors["monthlyAmount"] = "amount cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateScenario range-checks a fully merged scenario before it is
// persisted. Per-field update checks cannot see cross-field constraints,
// such as the down payment staying within the purchase price, so the merged
// state runs through the same rules the create path applies.
func ValidateScenario(s model.Scenario) error {
	increases := make([]request.RentIncreaseRequest, len(s.RentIncreases))
	for i, inc := range s.RentIncreases {
		increases[i] = request.RentIncreaseRequest{
			Year:          inc.Year,
			MonthlyAmount: inc.MonthlyAmount,
		}
	}

	errors := reportFieldErrors(request.ReportRequest{
		PurchasePrice:          s.PurchasePrice,
		DownPayment:            s.DownPayment,
		AnnualInterestRatePct:  s.AnnualInterestRatePct,
		AnnualRepaymentRatePct: s.AnnualRepaymentRatePct,
		MonthlyExpenses:        s.MonthlyExpenses,
		BaseMonthlyRent:        s.BaseMonthlyRent,
		AnnualRentGrowthPct:    s.AnnualRentGrowthPct,
		AppreciationRatePct:    s.AppreciationRatePct,
		AfaRatePct:             s.AfaRatePct,
		MarginalTaxRatePct:     s.MarginalTaxRatePct,
		EtfAnnualReturnPct:     s.EtfAnnualReturnPct,
		RentIncreases:          increases,
	})
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func scenarioAsReport(req request.CreateScenarioRequest) request.ReportRequest {
	return request.ReportRequest{
		PurchasePrice:          req.PurchasePrice,
		DownPayment:            req.DownPayment,
		AnnualInterestRatePct:  req.AnnualInterestRatePct,
		AnnualRepaymentRatePct: req.AnnualRepaymentRatePct,
		MonthlyExpenses:        req.MonthlyExpenses,
		BaseMonthlyRent:        req.BaseMonthlyRent,
		AnnualRentGrowthPct:    req.AnnualRentGrowthPct,
		AppreciationRatePct:    req.AppreciationRatePct,
		AfaRatePct:             req.AfaRatePct,
		MarginalTaxRatePct:     req.MarginalTaxRatePct,
		EtfAnnualReturnPct:     req.EtfAnnualReturnPct,
		RentIncreases:          req.RentIncreases,
	}
}
