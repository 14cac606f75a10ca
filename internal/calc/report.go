package calc

import (
	"math"

	"github.com/immocalc/Immo-Calculator-Backend/internal/apperrors"
	"github.com/immocalc/Immo-Calculator-Backend/internal/model"
)

// Report computes the full investment report: aggregate metrics, the
// amortization schedule, the comparative ETF projection and the chart series.
// Any upstream failure aborts the whole report; no partial result is returned.
func Report(in model.ReportInput) (*model.InvestmentReport, error) {
	schedule, err := AmortizationSchedule(in.Loan, in.Tax)
	if err != nil {
		return nil, err
	}

	metrics, err := Metrics(in, schedule)
	if err != nil {
		return nil, err
	}

	etfReturn := DefaultEtfAnnualReturnPct
	if in.EtfAnnualReturnPct != nil {
		etfReturn = *in.EtfAnnualReturnPct
	}

	totalMonths := len(schedule)
	etf := EtfProjection(in.Loan.DownPayment, metrics.MonthlyMortgage+in.MonthlyExpenses, in.Rent, totalMonths, etfReturn)
	if len(etf) > 0 && !isFinite(etf[len(etf)-1]) {
		return nil, apperrors.ErrComputation
	}

	return &model.InvestmentReport{
		Metrics:       metrics,
		Schedule:      schedule,
		EtfProjection: etf,
		Series:        projectionSeries(in, metrics, totalMonths),
		MonthlyBreakdown: model.MonthlyBreakdown{
			MortgagePayment: metrics.MonthlyMortgage,
			OtherExpenses:   in.MonthlyExpenses,
			TaxBenefit:      metrics.MonthlyTaxBenefit,
			NetCashFlow:     metrics.MonthlyCashFlow,
		},
	}, nil
}

// projectionSeries derives the chart series over months 0..totalMonths:
// escalated rent, cumulative income and outflow, property value and the
// combined total return including appreciation.
func projectionSeries(in model.ReportInput, metrics model.InvestmentMetrics, totalMonths int) model.ProjectionSeries {
	n := totalMonths + 1
	series := model.ProjectionSeries{
		MonthlyRent:          make([]float64, n),
		CumulativeRent:       make([]float64, n),
		CumulativeRentAndTax: make([]float64, n),
		CumulativePayments:   make([]float64, n),
		PropertyValue:        make([]float64, n),
		TotalReturn:          make([]float64, n),
	}

	monthlyOutflow := metrics.MonthlyMortgage + in.MonthlyExpenses
	for month := 0; month < n; month++ {
		rent := RentAtMonth(in.Rent, month)
		year := float64(month) / 12

		series.MonthlyRent[month] = rent
		series.CumulativeRent[month] = rent * float64(month)
		series.CumulativeRentAndTax[month] = (rent + metrics.MonthlyTaxBenefit) * float64(month)
		series.CumulativePayments[month] = monthlyOutflow * float64(month)
		series.PropertyValue[month] = in.Loan.PurchasePrice * math.Pow(1+fraction(in.AppreciationRatePct), year)
		series.TotalReturn[month] = series.CumulativeRent[month] +
			series.CumulativeRentAndTax[month] +
			(series.PropertyValue[month] - in.Loan.PurchasePrice)
	}
	return series
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
