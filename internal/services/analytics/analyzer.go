package analytics

import (
	"BudgetWise/internal/domain/models"
)

// The observed window is treated as one month and scaled linearly, with no
// geometric compounding and no adjustment for the window's true day count.
// This is an intentional simplification for an illustrative estimator;
// switching to CAGR would change every downstream number.
const monthsPerYear = 12

// Analyze computes the derived summary of a price series. It never fails:
// an empty series yields the zero analysis, and a non-positive start price
// yields a zero period return.
func Analyze(series *models.PriceSeries) models.PriceAnalysis {
	if series.Len() == 0 {
		return models.PriceAnalysis{}
	}

	points := series.Points
	startPrice := points[0].Close
	endPrice := points[len(points)-1].Close

	// High/low are taken across closes only, not intraday highs and lows.
	highPrice := points[0].Close
	lowPrice := points[0].Close
	for _, p := range points[1:] {
		if p.Close > highPrice {
			highPrice = p.Close
		}
		if p.Close < lowPrice {
			lowPrice = p.Close
		}
	}

	var periodReturn float64
	if startPrice > 0 {
		periodReturn = (endPrice - startPrice) / startPrice
	}

	annualizedRate := periodReturn * monthsPerYear

	return models.PriceAnalysis{
		StartPrice:          startPrice,
		EndPrice:            endPrice,
		PeriodReturn:        periodReturn,
		AnnualizedRate:      annualizedRate,
		AnnualizedReturnPct: annualizedRate * 100,
		// One more synthetic month forward at the implied monthly rate.
		ForecastedPrice: endPrice * (1 + annualizedRate/monthsPerYear),
		HighPrice:       highPrice,
		LowPrice:        lowPrice,
	}
}
