package calc

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// RentAtMonth returns the escalated monthly rent for the given month index.
//
// The base rent compounds continuously at the annual growth rate. Custom
// increases unlock once the holding period reaches their year and stay
// applied for every later month; duplicate years stack additively.
// Month 0 always yields the base rent.
func RentAtMonth(rent model.RentInputs, month int) float64 {
	year := float64(month) / 12
	current := rent.BaseMonthlyRent * math.Pow(1+fraction(rent.AnnualRentGrowthPct), year)

	completedYears := month / 12
	for _, inc := range rent.CustomIncreases {
		if inc.Year <= completedYears {
			current += inc.MonthlyAmount
		}
	}
	return current
}

// AverageRent returns the time-weighted average of the escalated rent over
// months 1..totalMonths. Returns the base rent for an empty period.
func AverageRent(rent model.RentInputs, totalMonths int) float64 {
	if totalMonths <= 0 {
		return rent.BaseMonthlyRent
	}
	var sum float64
	for month := 1; month <= totalMonths; month++ {
		sum += RentAtMonth(rent, month)
	}
	return sum / float64(totalMonths)
}
