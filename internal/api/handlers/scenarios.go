package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/request"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/service"
	"github.com/immocalc/Immo-Calculator-Backend/internal/validation"
)

// ScenarioHandler handles scenario-related HTTP requests
type ScenarioHandler struct {
	scenarioService *service.ScenarioService
	reportService   *service.ReportService
}

// NewScenarioHandler creates a new ScenarioHandler
func NewScenarioHandler(scenarioService *service.ScenarioService, reportService *service.ReportService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
		reportService:   reportService,
	}
}

// Scenarios lists all stored scenarios.
//
// Endpoint: GET /api/scenario
func (h *ScenarioHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.scenarioService.GetAllScenarios()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve scenarios",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, scenarios)
}

// Scenario retrieves a single scenario by ID.
//
// Endpoint: GET /api/scenario/{scenarioId}
func (h *ScenarioHandler) Scenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "scenarioId")

	scenario, err := h.scenarioService.GetScenario(scenarioID)
	if err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, scenario)
}

// CreateScenario stores a new scenario.
//
// Endpoint: POST /api/scenario
func (h *ScenarioHandler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateCreateScenario(req); err != nil {
		respondValidationError(w, err)
		return
	}

	scenario, err := h.scenarioService.CreateScenario(scenarioFromCreateRequest(req))
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to create scenario",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusCreated, scenario)
}

// UpdateScenario updates the provided fields of a stored scenario.
//
// Endpoint: PUT /api/scenario/{scenarioId}
func (h *ScenarioHandler) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "scenarioId")

	var req request.UpdateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateUpdateScenario(req); err != nil {
		respondValidationError(w, err)
		return
	}

	// Per-field checks above cannot catch cross-field violations against the
	// stored state, so the merged scenario is validated before it persists.
	scenario, err := h.scenarioService.UpdateScenario(scenarioID, func(s *model.Scenario) error {
		applyScenarioUpdate(s, req)
		return validation.ValidateScenario(*s)
	})
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			respondValidationError(w, err)
			return
		}
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, scenario)
}

// DeleteScenario removes a stored scenario.
//
// Endpoint: DELETE /api/scenario/{scenarioId}
func (h *ScenarioHandler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "scenarioId")

	if err := h.scenarioService.DeleteScenario(scenarioID); err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// AddRentIncrease appends one rent increase to a stored scenario.
//
// Endpoint: POST /api/scenario/{scenarioId}/rent-increase
func (h *ScenarioHandler) AddRentIncrease(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "scenarioId")

	var req request.AddRentIncreaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateAddRentIncrease(req); err != nil {
		respondValidationError(w, err)
		return
	}

	scenario, err := h.scenarioService.AddRentIncrease(scenarioID, model.RentIncrease{
		Year:          req.Year,
		MonthlyAmount: req.MonthlyAmount,
	})
	if err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, scenario)
}

// ClearRentIncreases removes all rent increases from a stored scenario.
//
// Endpoint: DELETE /api/scenario/{scenarioId}/rent-increase
func (h *ScenarioHandler) ClearRentIncreases(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "scenarioId")

	if err := h.scenarioService.ClearRentIncreases(scenarioID); err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// ScenarioReport computes the investment report for a stored scenario.
//
// Endpoint: GET /api/scenario/{scenarioId}/report
func (h *ScenarioHandler) ScenarioReport(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "scenarioId")

	report, err := h.reportService.ComputeScenarioReport(scenarioID)
	if err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// CompareScenarios computes reports for several stored scenarios.
//
// Endpoint: POST /api/scenario/compare
func (h *ScenarioHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	var req request.CompareScenariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateUUIDs(req.ScenarioIDs); err != nil {
		respondValidationError(w, err)
		return
	}

	results, err := h.reportService.CompareScenarios(req.ScenarioIDs)
	if err != nil {
		respondCalculationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

func scenarioFromCreateRequest(req request.CreateScenarioRequest) model.Scenario {
	increases := make([]model.RentIncrease, len(req.RentIncreases))
	for i, inc := range req.RentIncreases {
		increases[i] = model.RentIncrease{
			Year:          inc.Year,
			MonthlyAmount: inc.MonthlyAmount,
		}
	}

	return model.Scenario{
		Name:                   req.Name,
		Description:            req.Description,
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
		RentIncreases:          increases,
	}
}

func applyScenarioUpdate(s *model.Scenario, req request.UpdateScenarioRequest) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.PurchasePrice != nil {
		s.PurchasePrice = *req.PurchasePrice
	}
	if req.DownPayment != nil {
		s.DownPayment = *req.DownPayment
	}
	if req.AnnualInterestRatePct != nil {
		s.AnnualInterestRatePct = *req.AnnualInterestRatePct
	}
	if req.AnnualRepaymentRatePct != nil {
		s.AnnualRepaymentRatePct = *req.AnnualRepaymentRatePct
	}
	if req.MonthlyExpenses != nil {
		s.MonthlyExpenses = *req.MonthlyExpenses
	}
	if req.BaseMonthlyRent != nil {
		s.BaseMonthlyRent = *req.BaseMonthlyRent
	}
	if req.AnnualRentGrowthPct != nil {
		s.AnnualRentGrowthPct = *req.AnnualRentGrowthPct
	}
	if req.AppreciationRatePct != nil {
		s.AppreciationRatePct = *req.AppreciationRatePct
	}
	if req.AfaRatePct != nil {
		s.AfaRatePct = *req.AfaRatePct
	}
	if req.MarginalTaxRatePct != nil {
		s.MarginalTaxRatePct = *req.MarginalTaxRatePct
	}
	if req.EtfAnnualReturnPct != nil {
		s.EtfAnnualReturnPct = req.EtfAnnualReturnPct
	}
	if req.RentIncreases != nil {
		increases := make([]model.RentIncrease, len(*req.RentIncreases))
		for i, inc := range *req.RentIncreases {
			increases[i] = model.RentIncrease{
				Year:          inc.Year,
				MonthlyAmount: inc.MonthlyAmount,
			}
		}
		s.RentIncreases = increases
	}
}
