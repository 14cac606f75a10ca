package model

// LoanInputs describes the mortgage side of an investment. Two payment modes
// coexist: when TermMonths is zero the payment is derived from the annual
// repayment (amortization) rate, otherwise the classic fixed-term annuity
// formula applies.
type LoanInputs struct {
	PurchasePrice          float64 `json:"purchasePrice"`
	DownPayment            float64 `json:"downPayment"`
	AnnualInterestRatePct  float64 `json:"annualInterestRatePct"`
	AnnualRepaymentRatePct float64 `json:"annualRepaymentRatePct"`
	TermMonths             int     `json:"termMonths,omitempty"`
}

// Amount returns the financed loan amount.
func (l LoanInputs) Amount() float64 {
	return l.PurchasePrice - l.DownPayment
}

// TaxInputs describes the German tax treatment of the property: straight-line
// depreciation (AFA) as a percentage of the purchase price per year, and the
// investor's marginal income tax rate.
type TaxInputs struct {
	AfaRatePct         float64 `json:"afaRatePct"`
	MarginalTaxRatePct float64 `json:"marginalTaxRatePct"`
}

// RentIncrease is a discrete one-time rent increase taking effect at the
// start of the given year of the holding period. Duplicate years are additive.
type RentIncrease struct {
	Year          int     `json:"year"`
	MonthlyAmount float64 `json:"monthlyAmount"`
}

// RentInputs describes rental income: the base monthly rent, a compound
// annual growth rate and optional discrete one-time increases.
type RentInputs struct {
	BaseMonthlyRent     float64        `json:"baseMonthlyRent"`
	AnnualRentGrowthPct float64        `json:"annualRentGrowthPct"`
	CustomIncreases     []RentIncrease `json:"customIncreases,omitempty"`
}

// ReportInput bundles everything a full investment report needs.
// A nil EtfAnnualReturnPct selects the engine default; an explicit zero is a
// genuine 0% return assumption.
type ReportInput struct {
	Loan                LoanInputs `json:"loan"`
	Tax                 TaxInputs  `json:"tax"`
	Rent                RentInputs `json:"rent"`
	MonthlyExpenses     float64    `json:"monthlyExpenses"`
	AppreciationRatePct float64    `json:"appreciationRatePct"`
	EtfAnnualReturnPct  *float64   `json:"etfAnnualReturnPct,omitempty"`
}

// TaxDeduction breaks one month's deductible amounts into their parts.
type TaxDeduction struct {
	InterestDeduction float64 `json:"interestDeduction"`
	AfaDeduction      float64 `json:"afaDeduction"`
	TaxBenefit        float64 `json:"taxBenefit"`
}

// AmortizationRow is one month of the amortization schedule. RemainingBalance
// is floored at zero for presentation even when the running balance overshoots
// in the final month.
type AmortizationRow struct {
	Month             int     `json:"month"`
	Payment           float64 `json:"payment"`
	Principal         float64 `json:"principal"`
	Interest          float64 `json:"interest"`
	RemainingBalance  float64 `json:"remainingBalance"`
	InterestDeduction float64 `json:"interestDeduction"`
	AfaDeduction      float64 `json:"afaDeduction"`
	TaxBenefit        float64 `json:"taxBenefit"`
}

// InvestmentMetrics is the aggregate snapshot of a buy-and-hold investment.
// MonthlyCashFlow uses the base rent and the first month's tax benefit only,
// not escalated averages; AvgRentalIncome carries the time-weighted average
// of the escalated rent over the full loan term.
type InvestmentMetrics struct {
	LoanTermYears       float64 `json:"loanTermYears"`
	MonthlyMortgage     float64 `json:"monthlyMortgage"`
	MonthlyCashFlow     float64 `json:"monthlyCashFlow"`
	AnnualCashFlow      float64 `json:"annualCashFlow"`
	CashOnCashReturnPct float64 `json:"cashOnCashReturnPct"`
	FuturePropertyValue float64 `json:"futurePropertyValue"`
	TotalEquity         float64 `json:"totalEquity"`
	MonthlyTaxBenefit   float64 `json:"monthlyTaxBenefit"`
	AnnualTaxBenefit    float64 `json:"annualTaxBenefit"`
	AvgRentalIncome     float64 `json:"avgRentalIncome"`
}

// MonthlyBreakdown is the first month's cash flow decomposition, the data
// behind the breakdown chart.
type MonthlyBreakdown struct {
	MortgagePayment float64 `json:"mortgagePayment"`
	OtherExpenses   float64 `json:"otherExpenses"`
	TaxBenefit      float64 `json:"taxBenefit"`
	NetCashFlow     float64 `json:"netCashFlow"`
}

// ProjectionSeries holds the per-month chart series over the holding period.
// Every slice has one entry per month 0..N where N is the number of payments,
// so all series share the same x axis.
type ProjectionSeries struct {
	MonthlyRent          []float64 `json:"monthlyRent"`
	CumulativeRent       []float64 `json:"cumulativeRent"`
	CumulativeRentAndTax []float64 `json:"cumulativeRentAndTax"`
	CumulativePayments   []float64 `json:"cumulativePayments"`
	PropertyValue        []float64 `json:"propertyValue"`
	TotalReturn          []float64 `json:"totalReturn"`
}

// InvestmentReport is the full result of one calculation: aggregate metrics,
// the month-by-month schedule, the reference ETF projection and the chart
// series. It is produced fresh per request and never mutated.
type InvestmentReport struct {
	Metrics          InvestmentMetrics `json:"metrics"`
	Schedule         []AmortizationRow `json:"schedule"`
	EtfProjection    []float64         `json:"etfProjection"`
	Series           ProjectionSeries  `json:"series"`
	MonthlyBreakdown MonthlyBreakdown  `json:"monthlyBreakdown"`
}

// AnnuityResult is the outcome of a fixed-term annuity calculation.
type AnnuityResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}
