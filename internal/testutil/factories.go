package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
	"github.com/immocalc/Immo-Calculator-Backend/internal/repository"
)

// ScenarioBuilder provides a fluent interface for creating test scenarios.
//
// Example usage:
//
//	// Simple creation with defaults
//	scenario := testutil.NewScenario().Build(t, db)
//
//	// Customized scenario
//	scenario := testutil.NewScenario().
//	    WithName("High leverage").
//	    WithDownPayment(10000).
//	    WithRentIncrease(5, 100).
//	    Build(t, db)
type ScenarioBuilder struct {
	scenario model.Scenario
}

// NewScenario creates a ScenarioBuilder with sensible defaults: the worked
// reference case of a 300k property with 10% down, 4% interest and 2%
// repayment.
func NewScenario() *ScenarioBuilder {
	now := time.Now().UTC()
	return &ScenarioBuilder{
		scenario: model.Scenario{
			ID:                     uuid.New().String(),
			Name:                   "Test Scenario",
			Description:            "Test description",
			PurchasePrice:          300000,
			DownPayment:            30000,
			AnnualInterestRatePct:  4.0,
			AnnualRepaymentRatePct: 2.0,
			MonthlyExpenses:        500,
			BaseMonthlyRent:        2500,
			AnnualRentGrowthPct:    1.5,
			AppreciationRatePct:    3.0,
			AfaRatePct:             2.0,
			MarginalTaxRatePct:     42.0,
			CreatedAt:              now,
			UpdatedAt:              now,
		},
	}
}

// WithID sets a custom ID.
func (b *ScenarioBuilder) WithID(id string) *ScenarioBuilder {
	b.scenario.ID = id
	return b
}

// WithName sets a custom name.
func (b *ScenarioBuilder) WithName(name string) *ScenarioBuilder {
	b.scenario.Name = name
	return b
}

// WithPurchasePrice sets the purchase price.
func (b *ScenarioBuilder) WithPurchasePrice(price float64) *ScenarioBuilder {
	b.scenario.PurchasePrice = price
	return b
}

// WithDownPayment sets the down payment.
func (b *ScenarioBuilder) WithDownPayment(amount float64) *ScenarioBuilder {
	b.scenario.DownPayment = amount
	return b
}

// WithInterestRate sets the annual interest rate in percent.
func (b *ScenarioBuilder) WithInterestRate(pct float64) *ScenarioBuilder {
	b.scenario.AnnualInterestRatePct = pct
	return b
}

// WithRepaymentRate sets the annual repayment rate in percent.
func (b *ScenarioBuilder) WithRepaymentRate(pct float64) *ScenarioBuilder {
	b.scenario.AnnualRepaymentRatePct = pct
	return b
}

// WithBaseRent sets the base monthly rent.
func (b *ScenarioBuilder) WithBaseRent(rent float64) *ScenarioBuilder {
	b.scenario.BaseMonthlyRent = rent
	return b
}

// WithRentGrowth sets the annual rent growth rate in percent.
func (b *ScenarioBuilder) WithRentGrowth(pct float64) *ScenarioBuilder {
	b.scenario.AnnualRentGrowthPct = pct
	return b
}

// WithEtfReturn sets an explicit ETF annual return in percent. Unset means
// the configured default applies at report time.
func (b *ScenarioBuilder) WithEtfReturn(pct float64) *ScenarioBuilder {
	b.scenario.EtfAnnualReturnPct = &pct
	return b
}

// WithRentIncrease appends a custom rent increase.
func (b *ScenarioBuilder) WithRentIncrease(year int, amount float64) *ScenarioBuilder {
	b.scenario.RentIncreases = append(b.scenario.RentIncreases, model.RentIncrease{
		Year:          year,
		MonthlyAmount: amount,
	})
	return b
}

// Build persists the scenario and returns it.
func (b *ScenarioBuilder) Build(t *testing.T, db *sql.DB) model.Scenario {
	t.Helper()

	repo := repository.NewScenarioRepository(db)
	if err := repo.CreateScenario(b.scenario); err != nil {
		t.Fatalf("Failed to create test scenario: %v", err)
	}
	return b.scenario
}

// CreateScenario persists a default scenario with the given name.
func CreateScenario(t *testing.T, db *sql.DB, name string) model.Scenario {
	t.Helper()
	return NewScenario().WithName(name).Build(t, db)
}
