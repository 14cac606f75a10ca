package validation

import (
	"fmt"
	"strings"
)

// Error collects per-field validation failures.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// Input range bounds. Anything outside them is rejected before the
// engine runs.
const (
	MaxInterestRatePct    = 20.0
	MaxRepaymentRatePct   = 20.0
	MaxRentGrowthPct      = 10.0
	MinAppreciationPct    = -10.0
	MaxAppreciationPct    = 20.0
	MaxAfaRatePct         = 5.0
	MaxMarginalTaxRatePct = 45.0
	MaxTermMonths         = 480 // 40 years
	MaxRentIncreaseYear   = 50
)
