package request

// CreateScenarioRequest represents the request body for creating a scenario
type CreateScenarioRequest struct {
	Name                   string                `json:"name"`
	Description            string                `json:"description"`
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

// UpdateScenarioRequest represents the request body for updating a scenario.
// All fields are optional (use pointers). Only provided fields will be updated.
type UpdateScenarioRequest struct {
	Name                   *string                `json:"name,omitempty"`
	Description            *string                `json:"description,omitempty"`
	PurchasePrice          *float64               `json:"purchasePrice,omitempty"`
	DownPayment            *float64               `json:"downPayment,omitempty"`
	AnnualInterestRatePct  *float64               `json:"annualInterestRatePct,omitempty"`
	AnnualRepaymentRatePct *float64               `json:"annualRepaymentRatePct,omitempty"`
	MonthlyExpenses        *float64               `json:"monthlyExpenses,omitempty"`
	BaseMonthlyRent        *float64               `json:"baseMonthlyRent,omitempty"`
	AnnualRentGrowthPct    *float64               `json:"annualRentGrowthPct,omitempty"`
	AppreciationRatePct    *float64               `json:"appreciationRatePct,omitempty"`
	AfaRatePct             *float64               `json:"afaRatePct,omitempty"`
	MarginalTaxRatePct     *float64               `json:"marginalTaxRatePct,omitempty"`
	EtfAnnualReturnPct     *float64               `json:"etfAnnualReturnPct,omitempty"`
	RentIncreases          *[]RentIncreaseRequest `json:"rentIncreases,omitempty"`
}

// AddRentIncreaseRequest represents the request body for appending one rent
// increase to a stored scenario.
type AddRentIncreaseRequest struct {
	Year          int     `json:"year"`
	MonthlyAmount float64 `json:"monthlyAmount"`
}

// CompareScenariosRequest represents the request body for comparing several
// stored scenarios.
type CompareScenariosRequest struct {
	ScenarioIDs []string `json:"scenarioIds"`
}
