package testutil

import (
	"database/sql"
	"testing"

	"github.com/immocalc/Immo-Calculator-Backend/internal/repository"
	"github.com/immocalc/Immo-Calculator-Backend/internal/service"
)

// DefaultEtfReturnPct is the ETF return used by test services.
const DefaultEtfReturnPct = 7.0

func NewTestScenarioService(t *testing.T, db *sql.DB) *service.ScenarioService {
	t.Helper()

	scenarioRepo := repository.NewScenarioRepository(db)

	return service.NewScenarioService(scenarioRepo)
}

func NewTestReportService(t *testing.T, db *sql.DB) *service.ReportService {
	t.Helper()

	scenarioRepo := repository.NewScenarioRepository(db)
	cache := repository.NewMemoryCache()

	return service.NewReportService(scenarioRepo, cache, DefaultEtfReturnPct)
}

// NewTestReportServiceWithCache wires a report service around a caller-owned
// cache, so tests can observe cache contents.
func NewTestReportServiceWithCache(t *testing.T, db *sql.DB, cache repository.CacheRepository) *service.ReportService {
	t.Helper()

	scenarioRepo := repository.NewScenarioRepository(db)

	return service.NewReportService(scenarioRepo, cache, DefaultEtfReturnPct)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestLoanService(t *testing.T) *service.LoanService {
	t.Helper()

	return service.NewLoanService()
}

// Float64Ptr returns a pointer to the given float64, for optional request fields.
func Float64Ptr(v float64) *float64 {
	return &v
}

// StringPtr returns a pointer to the given string, for optional request fields.
func StringPtr(v string) *string {
	return &v
}
