package model

import "time"

// Scenario is a named, persisted set of calculation inputs. It is the only
// state the backend stores; calculation results are always derived fresh.
type Scenario struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name"`
	Description            string         `json:"description"`
	PurchasePrice          float64        `json:"purchasePrice"`
	DownPayment            float64        `json:"downPayment"`
	AnnualInterestRatePct  float64        `json:"annualInterestRatePct"`
	AnnualRepaymentRatePct float64        `json:"annualRepaymentRatePct"`
	MonthlyExpenses        float64        `json:"monthlyExpenses"`
	BaseMonthlyRent        float64        `json:"baseMonthlyRent"`
	AnnualRentGrowthPct    float64        `json:"annualRentGrowthPct"`
	AppreciationRatePct    float64        `json:"appreciationRatePct"`
	AfaRatePct             float64        `json:"afaRatePct"`
	MarginalTaxRatePct     float64        `json:"marginalTaxRatePct"`
	EtfAnnualReturnPct     *float64       `json:"etfAnnualReturnPct,omitempty"`
	RentIncreases          []RentIncrease `json:"rentIncreases"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

// ReportInput assembles the engine input for this scenario.
func (s Scenario) ReportInput() ReportInput {
	return ReportInput{
		Loan: LoanInputs{
			PurchasePrice:          s.PurchasePrice,
			DownPayment:            s.DownPayment,
			AnnualInterestRatePct:  s.AnnualInterestRatePct,
			AnnualRepaymentRatePct: s.AnnualRepaymentRatePct,
		},
		Tax: TaxInputs{
			AfaRatePct:         s.AfaRatePct,
			MarginalTaxRatePct: s.MarginalTaxRatePct,
		},
		Rent: RentInputs{
			BaseMonthlyRent:     s.BaseMonthlyRent,
			AnnualRentGrowthPct: s.AnnualRentGrowthPct,
			CustomIncreases:     s.RentIncreases,
		},
		MonthlyExpenses:     s.MonthlyExpenses,
		AppreciationRatePct: s.AppreciationRatePct,
		EtfAnnualReturnPct:  s.EtfAnnualReturnPct,
	}
}

// ScenarioReport pairs a stored scenario with its computed report, used by
// the compare operation.
type ScenarioReport struct {
	ScenarioID string            `json:"scenarioId"`
	Name       string            `json:"name"`
	Report     *InvestmentReport `json:"report"`
}
