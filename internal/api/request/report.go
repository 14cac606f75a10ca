package request

// RentIncreaseRequest is one discrete rent increase in a request body.
type RentIncreaseRequest struct {
	Year          int     `json:"year"`
	MonthlyAmount float64 `json:"monthlyAmount"`
}

// ReportRequest represents the request body for computing an investment report.
// All monetary values are in the property's currency; rates are percentages.
type ReportRequest struct {
	PurchasePrice          float64               `json:"purchasePrice"`
	DownPayment            float64               `json:"downPayment"`
	AnnualInterestRatePct  float64               `json:"annualInterestRatePct"`
	AnnualRepaymentRatePct float64               `json:"annualRepaymentRatePct"`
	MonthlyExpenses        float64               `json:"monthlyExpenses"`
	BaseMonthlyRent        float64               `json:"baseMonthlyRent"`
	AnnualRentGrowthPct    float64               `json:"annualRentGrowthPct"`
	AppreciationRatePct    float64               `json:"appreciationRatePct"`
	AfaRatePct             float64               `json:"afaRatePct"`
	MarginalTaxRatePct     float64               `json:"marginalTaxRatePct"`
	EtfAnnualReturnPct     *float64              `json:"etfAnnualReturnPct,omitempty"`
	RentIncreases          []RentIncreaseRequest `json:"rentIncreases,omitempty"`
}

// AnnuityRequest represents the request body for a fixed-term annuity
// calculation, the second payment mode.
type AnnuityRequest struct {
	PurchasePrice         float64 `json:"purchasePrice"`
	DownPayment           float64 `json:"downPayment"`
	AnnualInterestRatePct float64 `json:"annualInterestRatePct"`
	TermMonths            int     `json:"termMonths"`
}
