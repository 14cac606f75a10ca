package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondCalculationError maps engine and repository failures to HTTP
// responses. Calculation errors are the caller's problem (unprocessable
// input combinations), missing scenarios are 404, everything else is 500.
func respondCalculationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrScenarioNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrNonAmortizingLoan),
		errors.Is(err, apperrors.ErrUndefinedReturn),
		errors.Is(err, apperrors.ErrInvalidLoanAmount),
		errors.Is(err, apperrors.ErrComputation):
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
		})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "calculation failed",
			"detail": err.Error(),
		})
	}
}

// respondValidationError sends a 400 with the validation failure details,
// including the per-field messages when available.
func respondValidationError(w http.ResponseWriter, err error) {
	body := map[string]any{
		"error":  "validation failed",
		"detail": err.Error(),
	}
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		body["fields"] = validationErr.Fields
	}
	respondJSON(w, http.StatusBadRequest, body)
}
