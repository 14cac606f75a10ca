// Package calc implements the buy-and-hold investment calculation engine:
// loan term derivation, amortization scheduling with tax benefit
// decomposition, aggregate investment metrics, rent escalation and the
// comparative ETF projection.
//
// Every function in this package is pure: results depend only on the passed
// inputs, nothing is mutated and no I/O happens. Formulas follow the common
// simplified German buy-and-hold model (AFA straight-line depreciation, linear
// remaining-loan approximation for the tax side) and make no claim of tax-law
// correctness.
package calc

import "math"

func monthlyRate(annualPct float64) float64 {
	return annualPct / 12 / 100
}

func fraction(pct float64) float64 {
	return pct / 100
}

// round1 rounds to one decimal place, the precision loan terms are reported in.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
