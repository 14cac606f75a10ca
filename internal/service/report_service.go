package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/immocalc/Immo-Calculator-Backend/internal/calc"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/repository"
)

// ReportService computes investment reports, either from ad-hoc inputs or
// from stored scenarios. Each computation is an independent, stateless unit
// of work; stored-scenario reports are transiently memoized in the cache.
type ReportService struct {
	scenarioRepo        *repository.ScenarioRepository
	cache               repository.CacheRepository
	defaultEtfReturnPct float64
}

// NewReportService creates a new ReportService with the provided dependencies.
func NewReportService(
	scenarioRepo *repository.ScenarioRepository,
	cache repository.CacheRepository,
	defaultEtfReturnPct float64,
) *ReportService {
	return &ReportService{
		scenarioRepo:        scenarioRepo,
		cache:               cache,
		defaultEtfReturnPct: defaultEtfReturnPct,
	}
}

// ComputeReport runs the full engine for the given inputs.
func (s *ReportService) ComputeReport(in model.ReportInput) (*model.InvestmentReport, error) {
	s.applyDefaultEtfReturn(&in)
	return calc.Report(in)
}

// applyDefaultEtfReturn fills in the configured ETF return when the caller
// left it unset. An explicit zero is a real 0% assumption and is kept.
func (s *ReportService) applyDefaultEtfReturn(in *model.ReportInput) {
	if in.EtfAnnualReturnPct == nil {
		v := s.defaultEtfReturnPct
		in.EtfAnnualReturnPct = &v
	}
}

// ComputeScenarioReport computes the report for a stored scenario.
// Results are memoized under a content hash of the inputs, so a scenario
// update naturally misses the cache and recomputes.
func (s *ReportService) ComputeScenarioReport(scenarioID string) (*model.InvestmentReport, error) {
	scenario, err := s.scenarioRepo.GetScenario(scenarioID)
	if err != nil {
		return nil, err
	}
	return s.computeForScenario(scenario)
}

// CompareScenarios computes reports for several stored scenarios concurrently.
// Results are positionally aligned with the requested IDs. Any failure aborts
// the whole comparison.
func (s *ReportService) CompareScenarios(scenarioIDs []string) ([]model.ScenarioReport, error) {
	results := make([]model.ScenarioReport, len(scenarioIDs))

	var g errgroup.Group
	for i, id := range scenarioIDs {
		i, id := i, id
		g.Go(func() error {
			scenario, err := s.scenarioRepo.GetScenario(id)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", id, err)
			}
			report, err := s.computeForScenario(scenario)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", id, err)
			}
			results[i] = model.ScenarioReport{
				ScenarioID: scenario.ID,
				Name:       scenario.Name,
				Report:     report,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ReportService) computeForScenario(scenario model.Scenario) (*model.InvestmentReport, error) {
	in := scenario.ReportInput()
	s.applyDefaultEtfReturn(&in)

	key, err := reportCacheKey(in)
	if err == nil {
		if cached, ok := s.cache.Get(key); ok {
			var report model.InvestmentReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
			// Corrupt entry, fall through and recompute.
		}
	}

	report, err := calc.Report(in)
	if err != nil {
		return nil, err
	}

	// Cache failures are non-fatal; the next request recomputes.
	if key != "" {
		if encoded, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(key, string(encoded)); err != nil {
				log.Printf("failed to cache report for scenario %s: %v", scenario.ID, err)
			}
		}
	}

	return report, nil
}

// reportCacheKey derives a content-addressed cache key from the inputs.
func reportCacheKey(in model.ReportInput) (string, error) {
	encoded, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("failed to encode report input: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return "report:" + hex.EncodeToString(sum[:]), nil
}
