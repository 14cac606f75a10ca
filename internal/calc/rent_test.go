package calc_test

import (
	"math"
	"testing"

	"github.com/immocalc/Immo-Calculator-Backend/internal/calc"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

func TestRentAtMonth(t *testing.T) {
	t.Run("base rent with no growth", func(t *testing.T) {
		rent := model.RentInputs{BaseMonthlyRent: 1000}

		for _, month := range []int{0, 1, 12, 120} {
			if got := calc.RentAtMonth(rent, month); got != 1000 {
				t.Errorf("Month %d: expected 1000, got %v", month, got)
			}
		}
	})

	t.Run("growth compounds continuously", func(t *testing.T) {
		rent := model.RentInputs{BaseMonthlyRent: 1000, AnnualRentGrowthPct: 2.0}

		// One full year of growth.
		if got := calc.RentAtMonth(rent, 12); math.Abs(got-1020) > 1e-9 {
			t.Errorf("Expected 1020 at month 12, got %v", got)
		}
		// Half a year applies the fractional exponent.
		want := 1000 * math.Pow(1.02, 0.5)
		if got := calc.RentAtMonth(rent, 6); math.Abs(got-want) > 1e-9 {
			t.Errorf("Expected %v at month 6, got %v", want, got)
		}
	})

	t.Run("custom increase unlocks at its year boundary", func(t *testing.T) {
		rent := model.RentInputs{
			BaseMonthlyRent: 1000,
			CustomIncreases: []model.RentIncrease{{Year: 2, MonthlyAmount: 150}},
		}

		if got := calc.RentAtMonth(rent, 23); got != 1000 {
			t.Errorf("Expected 1000 just before year 2, got %v", got)
		}
		if got := calc.RentAtMonth(rent, 24); got != 1150 {
			t.Errorf("Expected 1150 at year 2, got %v", got)
		}
	})

	t.Run("duplicate years stack additively", func(t *testing.T) {
		rent := model.RentInputs{
			BaseMonthlyRent: 1000,
			CustomIncreases: []model.RentIncrease{
				{Year: 1, MonthlyAmount: 100},
				{Year: 1, MonthlyAmount: 50},
			},
		}

		if got := calc.RentAtMonth(rent, 12); got != 1150 {
			t.Errorf("Expected stacked increases to give 1150, got %v", got)
		}
	})
}

func TestAverageRent(t *testing.T) {
	t.Run("flat rent averages to itself", func(t *testing.T) {
		rent := model.RentInputs{BaseMonthlyRent: 1200}

		if got := calc.AverageRent(rent, 120); got != 1200 {
			t.Errorf("Expected 1200, got %v", got)
		}
	})

	t.Run("growing rent averages above the base", func(t *testing.T) {
		rent := model.RentInputs{BaseMonthlyRent: 1200, AnnualRentGrowthPct: 2.0}

		got := calc.AverageRent(rent, 120)
		if got <= 1200 {
			t.Errorf("Expected average above base, got %v", got)
		}
		last := calc.RentAtMonth(rent, 120)
		if got >= last {
			t.Errorf("Expected average %v below final rent %v", got, last)
		}
	})

	t.Run("empty period falls back to base rent", func(t *testing.T) {
		rent := model.RentInputs{BaseMonthlyRent: 900, AnnualRentGrowthPct: 3.0}

		if got := calc.AverageRent(rent, 0); got != 900 {
			t.Errorf("Expected base rent 900, got %v", got)
		}
	})
}
