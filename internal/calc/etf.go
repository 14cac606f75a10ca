package calc

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// DefaultEtfAnnualReturnPct is the reference investment's assumed annual
// return when the caller does not override it.
const DefaultEtfAnnualReturnPct = 7.0

// EtfProjection simulates a monthly compounded reference investment (an index
// fund) that starts with the down payment and each month receives the net
// cash flow the property would have produced: escalated rent minus the
// mortgage payment and expenses.
//
// The returned series has one balance per month 0..totalMonths. Balances are
// not clamped; a cash-flow-negative property can drive them below zero.
func EtfProjection(initialBalance, monthlyOutflow float64, rent model.RentInputs, totalMonths int, annualReturnPct float64) []float64 {
	monthlyReturn := math.Pow(1+fraction(annualReturnPct), 1.0/12) - 1

	balance := make([]float64, 0, totalMonths+1)
	balance = append(balance, initialBalance)

	for month := 1; month <= totalMonths; month++ {
		netCashFlow := RentAtMonth(rent, month) - monthlyOutflow
		balance = append(balance, (balance[month-1]+netCashFlow)*(1+monthlyReturn))
	}
	return balance
}
