package analytics

import (
	"time"

	"BudgetWise/internal/domain/models"
)

// DefaultHorizonDays is the forward projection window.
const DefaultHorizonDays = 30

// ProjectForward produces a horizonDays+1 point projection, day 0 being
// currentPrice. The monthly rate implied by annualizedRate is interpolated
// linearly across the horizon: day i grows by monthlyRate × i/horizonDays.
// No compounding, no randomness; the result is deterministic and is
// regenerated from scratch on every call.
func ProjectForward(currentPrice, annualizedRate float64, horizonDays int, start time.Time) []models.ForecastPoint {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	monthlyRate := annualizedRate / monthsPerYear
	points := make([]models.ForecastPoint, 0, horizonDays+1)
	for i := 0; i <= horizonDays; i++ {
		growth := monthlyRate * float64(i) / float64(horizonDays)
		points = append(points, models.ForecastPoint{
			Date:           start.AddDate(0, 0, i).Format("2006-01-02"),
			ProjectedPrice: currentPrice * (1 + growth),
		})
	}

	return points
}
