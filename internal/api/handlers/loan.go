package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/request"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/service"
	"github.com/immocalc/Immo-Calculator-Backend/internal/validation"
)

// LoanHandler handles standalone loan calculation HTTP requests
type LoanHandler struct {
	loanService *service.LoanService
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Annuity computes the fixed-term annuity payment and totals.
//
// Endpoint: POST /api/loan/annuity
func (h *LoanHandler) Annuity(w http.ResponseWriter, r *http.Request) {
	var req request.AnnuityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateAnnuity(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result := h.loanService.CalculateAnnuity(model.LoanInputs{
		PurchasePrice:         req.PurchasePrice,
		DownPayment:           req.DownPayment,
		AnnualInterestRatePct: req.AnnualInterestRatePct,
		TermMonths:            req.TermMonths,
	})

	respondJSON(w, http.StatusOK, result)
}
