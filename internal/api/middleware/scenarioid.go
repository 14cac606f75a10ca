// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/response"
	"github.com/immocalc/Immo-Calculator-Backend/internal/validation"
)

// ValidateScenarioIDMiddleware validates that the scenarioId URL parameter is
// present and is a valid UUID. Returns 400 Bad Request otherwise.
//
// Example usage in router:
//
//	r.Route("/{scenarioId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateScenarioIDMiddleware)
//	    r.Get("/", handler.Scenario)
//	})
func ValidateScenarioIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scenarioID := chi.URLParam(r, "scenarioId")

		if scenarioID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid scenario ID is required", "")
			return
		}

		if err := validation.ValidateUUID(scenarioID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid scenario ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
