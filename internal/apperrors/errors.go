package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrScenarioNotFound indicates that a scenario with the given ID does not exist.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// Calculation errors represent conditions under which the engine cannot
// produce a meaningful result. They must reach the caller as named failures,
// never as NaN or infinity embedded in output.
var (
	// ErrNonAmortizingLoan indicates that the monthly payment does not cover
	// the monthly interest, so the loan balance never decreases and no finite
	// payoff term exists.
	ErrNonAmortizingLoan = errors.New("monthly payment does not cover interest, loan never amortizes")

	// ErrUndefinedReturn indicates that cash-on-cash return was requested with
	// a zero down payment. With no capital invested the return is undefined.
	ErrUndefinedReturn = errors.New("cash-on-cash return undefined, no capital invested")

	// ErrInvalidLoanAmount indicates that the down payment exceeds the purchase
	// price, which would make the loan amount negative.
	ErrInvalidLoanAmount = errors.New("down payment exceeds purchase price")

	// ErrComputation indicates a numeric failure during calculation, such as
	// overflow on extreme appreciation rates.
	ErrComputation = errors.New("calculation produced a non-finite result")
)
