package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/request"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/service"
	"github.com/immocalc/Immo-Calculator-Backend/internal/validation"
)

// ReportHandler handles investment report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Report computes a full investment report from ad-hoc inputs.
//
// Endpoint: POST /api/report
// Response: 200 OK with the report, 400 on validation failure,
// 422 when the inputs describe a loan the engine cannot evaluate.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req request.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateReport(req); err != nil {
		respondValidationError(w, err)
		return
	}

	report, err := h.reportService.ComputeReport(reportInputFromRequest(req))
	if err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func reportInputFromRequest(req request.ReportRequest) model.ReportInput {
	increases := make([]model.RentIncrease, len(req.RentIncreases))
	for i, inc := range req.RentIncreases {
		increases[i] = model.RentIncrease{
			Year:          inc.Year,
			MonthlyAmount: inc.MonthlyAmount,
		}
	}

	return model.ReportInput{
		Loan: model.LoanInputs{
			PurchasePrice:          req.PurchasePrice,
			DownPayment:            req.DownPayment,
			AnnualInterestRatePct:  req.AnnualInterestRatePct,
			AnnualRepaymentRatePct: req.AnnualRepaymentRatePct,
		},
		Tax: model.TaxInputs{
			AfaRatePct:         req.AfaRatePct,
			MarginalTaxRatePct: req.MarginalTaxRatePct,
		},
		Rent: model.RentInputs{
			BaseMonthlyRent:     req.BaseMonthlyRent,
			AnnualRentGrowthPct: req.AnnualRentGrowthPct,
			CustomIncreases:     increases,
		},
		MonthlyExpenses:     req.MonthlyExpenses,
		AppreciationRatePct: req.AppreciationRatePct,
		EtfAnnualReturnPct:  req.EtfAnnualReturnPct,
	}
}
