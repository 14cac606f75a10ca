package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Scenario table
		CREATE TABLE IF NOT EXISTS scenario (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			purchase_price REAL NOT NULL,
			down_payment REAL NOT NULL,
			annual_interest_rate_pct REAL NOT NULL,
			annual_repayment_rate_pct REAL NOT NULL,
			monthly_expenses REAL NOT NULL DEFAULT 0,
			base_monthly_rent REAL NOT NULL DEFAULT 0,
			annual_rent_growth_pct REAL NOT NULL DEFAULT 0,
			appreciation_rate_pct REAL NOT NULL DEFAULT 0,
			afa_rate_pct REAL NOT NULL DEFAULT 0,
			marginal_tax_rate_pct REAL NOT NULL DEFAULT 0,
			etf_annual_return_pct REAL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		-- Rent increase table
		CREATE TABLE IF NOT EXISTS scenario_rent_increase (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			scenario_id VARCHAR(36) NOT NULL,
			year INTEGER NOT NULL,
			monthly_amount REAL NOT NULL,
			FOREIGN KEY (scenario_id) REFERENCES scenario (id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_scenario_rent_increase_scenario_id
			ON scenario_rent_increase (scenario_id);
	`

	_, err := db.Exec(schema)
	return err
}
