package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// ScenarioRepository provides data access methods for the scenario and
// scenario_rent_increase tables. Stored scenarios are the only persistent
// state; computed reports are never written to the database.
type ScenarioRepository struct {
	db *sql.DB
}

// NewScenarioRepository creates a new ScenarioRepository with the provided database connection.
func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

const scenarioColumns = `
          id, name, description,
          purchase_price, down_payment,
          annual_interest_rate_pct, annual_repayment_rate_pct,
          monthly_expenses, base_monthly_rent, annual_rent_growth_pct,
          appreciation_rate_pct, afa_rate_pct, marginal_tax_rate_pct,
          etf_annual_return_pct, created_at, updated_at
      `

// GetScenarios retrieves all scenarios ordered by creation time, including
// their rent increases. Returns an empty slice when none exist.
func (r *ScenarioRepository) GetScenarios() ([]model.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenario ORDER BY created_at`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenario table: %w", err)
	}
	defer rows.Close()

	scenarios := []model.Scenario{}

	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scenarios: %w", err)
	}

	for i := range scenarios {
		increases, err := r.getRentIncreases(scenarios[i].ID)
		if err != nil {
			return nil, err
		}
		scenarios[i].RentIncreases = increases
	}

	return scenarios, nil
}

// GetScenario retrieves a single scenario by ID, including its rent increases.
// Returns apperrors.ErrScenarioNotFound if no such scenario exists.
func (r *ScenarioRepository) GetScenario(id string) (model.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenario WHERE id = ?`

	row := r.db.QueryRow(query, id)
	s, err := scanScenario(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Scenario{}, apperrors.ErrScenarioNotFound
		}
		return model.Scenario{}, err
	}

	increases, err := r.getRentIncreases(s.ID)
	if err != nil {
		return model.Scenario{}, err
	}
	s.RentIncreases = increases

	return s, nil
}

// CreateScenario inserts a scenario and its rent increases in one transaction.
func (r *ScenarioRepository) CreateScenario(s model.Scenario) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.Exec(`
          INSERT INTO scenario (`+scenarioColumns+`)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `,
		s.ID, s.Name, s.Description,
		s.PurchasePrice, s.DownPayment,
		s.AnnualInterestRatePct, s.AnnualRepaymentRatePct,
		s.MonthlyExpenses, s.BaseMonthlyRent, s.AnnualRentGrowthPct,
		s.AppreciationRatePct, s.AfaRatePct, s.MarginalTaxRatePct,
		s.EtfAnnualReturnPct, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}

	for _, inc := range s.RentIncreases {
		if err := insertRentIncrease(tx, s.ID, inc); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scenario: %w", err)
	}
	return nil
}

// UpdateScenario replaces the stored values of an existing scenario and its
// rent increases. Returns apperrors.ErrScenarioNotFound if the ID is unknown.
func (r *ScenarioRepository) UpdateScenario(s model.Scenario) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	result, err := tx.Exec(`
          UPDATE scenario SET
              name = ?, description = ?,
              purchase_price = ?, down_payment = ?,
              annual_interest_rate_pct = ?, annual_repayment_rate_pct = ?,
              monthly_expenses = ?, base_monthly_rent = ?, annual_rent_growth_pct = ?,
              appreciation_rate_pct = ?, afa_rate_pct = ?, marginal_tax_rate_pct = ?,
              etf_annual_return_pct = ?, updated_at = ?
          WHERE id = ?
      `,
		s.Name, s.Description,
		s.PurchasePrice, s.DownPayment,
		s.AnnualInterestRatePct, s.AnnualRepaymentRatePct,
		s.MonthlyExpenses, s.BaseMonthlyRent, s.AnnualRentGrowthPct,
		s.AppreciationRatePct, s.AfaRatePct, s.MarginalTaxRatePct,
		s.EtfAnnualReturnPct, s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scenario: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScenarioNotFound
	}

	// Replace the rent increase list wholesale.
	if _, err := tx.Exec(`DELETE FROM scenario_rent_increase WHERE scenario_id = ?`, s.ID); err != nil {
		return fmt.Errorf("failed to clear rent increases: %w", err)
	}
	for _, inc := range s.RentIncreases {
		if err := insertRentIncrease(tx, s.ID, inc); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scenario update: %w", err)
	}
	return nil
}

// DeleteScenario removes a scenario; its rent increases cascade.
// Returns apperrors.ErrScenarioNotFound if the ID is unknown.
func (r *ScenarioRepository) DeleteScenario(id string) error {
	result, err := r.db.Exec(`DELETE FROM scenario WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScenarioNotFound
	}
	return nil
}

// AddRentIncrease appends one rent increase to a scenario.
func (r *ScenarioRepository) AddRentIncrease(scenarioID string, inc model.RentIncrease) error {
	if _, err := r.GetScenario(scenarioID); err != nil {
		return err
	}
	return insertRentIncrease(r.db, scenarioID, inc)
}

// ClearRentIncreases removes all rent increases from a scenario.
func (r *ScenarioRepository) ClearRentIncreases(scenarioID string) error {
	if _, err := r.GetScenario(scenarioID); err != nil {
		return err
	}
	if _, err := r.db.Exec(`DELETE FROM scenario_rent_increase WHERE scenario_id = ?`, scenarioID); err != nil {
		return fmt.Errorf("failed to clear rent increases: %w", err)
	}
	return nil
}

// execer covers *sql.DB and *sql.Tx for the insert helper.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertRentIncrease(e execer, scenarioID string, inc model.RentIncrease) error {
	_, err := e.Exec(`
          INSERT INTO scenario_rent_increase (id, scenario_id, year, monthly_amount)
          VALUES (?, ?, ?, ?)
      `, uuid.New().String(), scenarioID, inc.Year, inc.MonthlyAmount)
	if err != nil {
		return fmt.Errorf("failed to insert rent increase: %w", err)
	}
	return nil
}

func (r *ScenarioRepository) getRentIncreases(scenarioID string) ([]model.RentIncrease, error) {
	rows, err := r.db.Query(`
          SELECT year, monthly_amount
          FROM scenario_rent_increase
          WHERE scenario_id = ?
          ORDER BY year, monthly_amount
      `, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rent increases: %w", err)
	}
	defer rows.Close()

	increases := []model.RentIncrease{}
	for rows.Next() {
		var inc model.RentIncrease
		if err := rows.Scan(&inc.Year, &inc.MonthlyAmount); err != nil {
			return nil, fmt.Errorf("failed to scan rent increase: %w", err)
		}
		increases = append(increases, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rent increases: %w", err)
	}
	return increases, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(row scanner) (model.Scenario, error) {
	var s model.Scenario
	var etfReturn sql.NullFloat64
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.PurchasePrice,
		&s.DownPayment,
		&s.AnnualInterestRatePct,
		&s.AnnualRepaymentRatePct,
		&s.MonthlyExpenses,
		&s.BaseMonthlyRent,
		&s.AnnualRentGrowthPct,
		&s.AppreciationRatePct,
		&s.AfaRatePct,
		&s.MarginalTaxRatePct,
		&etfReturn,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Scenario{}, err
		}
		return model.Scenario{}, fmt.Errorf("failed to scan scenario: %w", err)
	}

	if etfReturn.Valid {
		v := etfReturn.Float64
		s.EtfAnnualReturnPct = &v
	}
	s.CreatedAt = createdAt.UTC()
	s.UpdatedAt = updatedAt.UTC()
	return s, nil
}
