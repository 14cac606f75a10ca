package service_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/testutil"
)

// countingCache wraps an in-memory store and counts hits and writes, so tests
// can tell a cached result from a recomputed one.
type countingCache struct {
	mu      sync.Mutex
	entries map[string]string
	hits    int
	sets    int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[string]string{}}
}

func (c *countingCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return value, ok
}

func (c *countingCache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.sets++
	return nil
}

func TestReportService_ComputeReport(t *testing.T) {
	t.Run("ad-hoc inputs produce a full report", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		report, err := svc.ComputeReport(model.ReportInput{
			Loan: model.LoanInputs{
				PurchasePrice:          300000,
				DownPayment:            30000,
				AnnualInterestRatePct:  4.0,
				AnnualRepaymentRatePct: 2.0,
			},
			Tax:             model.TaxInputs{AfaRatePct: 2.0, MarginalTaxRatePct: 42.0},
			Rent:            model.RentInputs{BaseMonthlyRent: 2500, AnnualRentGrowthPct: 1.5},
			MonthlyExpenses: 500,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if report.Metrics.LoanTermYears != 27.5 {
			t.Errorf("Expected term 27.5, got %v", report.Metrics.LoanTermYears)
		}
		if len(report.Schedule) == 0 {
			t.Error("Expected a non-empty schedule")
		}
	})

	t.Run("calculation errors pass through", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		_, err := svc.ComputeReport(model.ReportInput{
			Loan: model.LoanInputs{
				PurchasePrice:         300000,
				DownPayment:           30000,
				AnnualInterestRatePct: 4.0,
			},
		})
		if !errors.Is(err, apperrors.ErrNonAmortizingLoan) {
			t.Errorf("Expected ErrNonAmortizingLoan, got %v", err)
		}
	})
}

func TestReportService_ComputeScenarioReport(t *testing.T) {
	t.Run("second computation is served from the cache", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		cache := newCountingCache()
		svc := testutil.NewTestReportServiceWithCache(t, db, cache)

		scenario := testutil.CreateScenario(t, db, "Cached")

		first, err := svc.ComputeScenarioReport(scenario.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cache.hits != 0 || cache.sets != 1 {
			t.Fatalf("Expected a cache write on first compute, got hits=%d sets=%d", cache.hits, cache.sets)
		}

		second, err := svc.ComputeScenarioReport(scenario.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cache.hits != 1 {
			t.Errorf("Expected a cache hit on second compute, got hits=%d", cache.hits)
		}
		if first.Metrics != second.Metrics {
			t.Errorf("Cached metrics diverge: %+v vs %+v", first.Metrics, second.Metrics)
		}
	})

	t.Run("scenario update misses the cache", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		cache := newCountingCache()
		svc := testutil.NewTestReportServiceWithCache(t, db, cache)
		scenarios := testutil.NewTestScenarioService(t, db)

		scenario := testutil.CreateScenario(t, db, "Mutating")
		if _, err := svc.ComputeScenarioReport(scenario.ID); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if _, err := scenarios.UpdateScenario(scenario.ID, func(s *model.Scenario) error {
			s.BaseMonthlyRent = 3000
			return nil
		}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if _, err := svc.ComputeScenarioReport(scenario.ID); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cache.hits != 0 {
			t.Errorf("Expected changed inputs to miss the cache, got hits=%d", cache.hits)
		}
		if cache.sets != 2 {
			t.Errorf("Expected two distinct cache entries, got sets=%d", cache.sets)
		}
	})

	t.Run("corrupt cache entry falls back to recomputation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		cache := newCountingCache()
		svc := testutil.NewTestReportServiceWithCache(t, db, cache)

		scenario := testutil.CreateScenario(t, db, "Corrupt")
		if _, err := svc.ComputeScenarioReport(scenario.ID); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		for key := range cache.entries {
			cache.entries[key] = "{not json"
		}

		report, err := svc.ComputeScenarioReport(scenario.ID)
		if err != nil {
			t.Fatalf("Expected recomputation, got %v", err)
		}
		if report.Metrics.LoanTermYears != 27.5 {
			t.Errorf("Expected recomputed term 27.5, got %v", report.Metrics.LoanTermYears)
		}
	})

	t.Run("explicit zero ETF return is kept, not defaulted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		defaulted := testutil.NewScenario().WithName("Defaulted").Build(t, db)
		zeroed := testutil.NewScenario().WithName("Zeroed").WithEtfReturn(0).Build(t, db)

		defaultReport, err := svc.ComputeScenarioReport(defaulted.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		zeroReport, err := svc.ComputeScenarioReport(zeroed.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		last := len(zeroReport.EtfProjection) - 1
		if zeroReport.EtfProjection[last] >= defaultReport.EtfProjection[last] {
			t.Errorf("Expected 0%% return to trail the %v%% default: %v vs %v",
				testutil.DefaultEtfReturnPct, zeroReport.EtfProjection[last], defaultReport.EtfProjection[last])
		}
	})

	t.Run("missing scenario returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		_, err := svc.ComputeScenarioReport(uuid.New().String())
		if !errors.Is(err, apperrors.ErrScenarioNotFound) {
			t.Errorf("Expected ErrScenarioNotFound, got %v", err)
		}
	})
}

func TestReportService_CompareScenarios(t *testing.T) {
	t.Run("results align positionally with the requested IDs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		a := testutil.NewScenario().WithName("Lean").WithDownPayment(20000).Build(t, db)
		b := testutil.NewScenario().WithName("Heavy").WithDownPayment(90000).Build(t, db)

		results, err := svc.CompareScenarios([]string{b.ID, a.ID})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(results))
		}
		if results[0].Name != "Heavy" || results[1].Name != "Lean" {
			t.Errorf("Results out of order: %q then %q", results[0].Name, results[1].Name)
		}
		if results[0].Report == nil || results[1].Report == nil {
			t.Fatal("Expected reports for both scenarios")
		}
		if results[0].Report.Metrics.MonthlyMortgage >= results[1].Report.Metrics.MonthlyMortgage {
			t.Errorf("Expected the larger down payment to carry the smaller mortgage: %v vs %v",
				results[0].Report.Metrics.MonthlyMortgage, results[1].Report.Metrics.MonthlyMortgage)
		}
	})

	t.Run("one missing scenario fails the whole comparison", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		a := testutil.CreateScenario(t, db, "Present")
		missing := uuid.New().String()

		_, err := svc.CompareScenarios([]string{a.ID, missing})
		if !errors.Is(err, apperrors.ErrScenarioNotFound) {
			t.Fatalf("Expected ErrScenarioNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), missing) {
			t.Errorf("Expected the failing ID in the error, got %q", err.Error())
		}
	})

	t.Run("empty request yields empty results", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestReportService(t, db)

		results, err := svc.CompareScenarios(nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})
}
