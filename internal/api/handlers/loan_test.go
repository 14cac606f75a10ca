package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/handlers"
	"github.com/immocalc/Immo-Calculator-Backend/internal/api/request"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/testutil"
)

func TestLoanHandler_Annuity(t *testing.T) {
	handler := handlers.NewLoanHandler(testutil.NewTestLoanService(t))

	t.Run("valid request returns payment and totals", func(t *testing.T) {
		body := request.AnnuityRequest{
			PurchasePrice:         100000,
			DownPayment:           0,
			AnnualInterestRatePct: 5.0,
			TermMonths:            360,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/loan/annuity", body, nil)
		w := httptest.NewRecorder()
		handler.Annuity(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.AnnuityResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.MonthlyPayment != 536.82 {
			t.Errorf("Expected payment 536.82, got %v", result.MonthlyPayment)
		}
		if result.TotalPayment <= result.TotalInterest {
			t.Errorf("Expected total payment above total interest: %v vs %v", result.TotalPayment, result.TotalInterest)
		}
	})

	t.Run("missing term returns 400", func(t *testing.T) {
		body := request.AnnuityRequest{
			PurchasePrice:         100000,
			AnnualInterestRatePct: 5.0,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/loan/annuity", body, nil)
		w := httptest.NewRecorder()
		handler.Annuity(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/loan/annuity", nil)
		w := httptest.NewRecorder()
		handler.Annuity(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
