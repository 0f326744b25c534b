package analytics

import (
	"math"

	"BudgetWise/internal/domain/models"
)

// RemainingBudget subtracts expense categories from income. A negative
// remainder means overspending; it is a valid first-class outcome and
// propagates unchanged to downstream consumers.
func RemainingBudget(income float64, expenses []models.ExpenseCategory) models.BudgetBreakdown {
	income = sanitize(income)

	total := 0.0
	for _, e := range expenses {
		total += sanitize(e.Amount)
	}

	remaining := income - total
	return models.BudgetBreakdown{
		Income:        income,
		TotalExpenses: total,
		Remaining:     remaining,
		Overspent:     remaining < 0,
	}
}

// sanitize treats non-finite numeric input as 0, mirroring the lenient
// handling of absent or unparseable form fields.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
