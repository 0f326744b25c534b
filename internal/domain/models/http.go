package models

// ExpenseCategory is one named monthly expense. A zero or absent amount
// simply contributes nothing.
type ExpenseCategory struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// BudgetRequest is the payload for POST /api/budget.
type BudgetRequest struct {
	Income   float64           `json:"income" validate:"gte=0"`
	Expenses []ExpenseCategory `json:"expenses"`
}

// PlanRequest is the payload for POST /api/plan.
type PlanRequest struct {
	Income   float64           `json:"income" validate:"gte=0"`
	Expenses []ExpenseCategory `json:"expenses"`
	Profile  string            `json:"profile" default:"balanced" validate:"oneof=conservative balanced aggressive"`
}

// ForecastRequest is the query for GET /api/forecast.
type ForecastRequest struct {
	Symbol string `query:"symbol" validate:"required"`
	Days   int    `query:"days" default:"30" validate:"gte=1,lte=365"`
}

// AnalysisRequest is the query for GET /api/analysis.
type AnalysisRequest struct {
	Symbol string `query:"symbol" validate:"required"`
}

// AllocationsRequest is the query for GET /api/allocations.
type AllocationsRequest struct {
	Profile string `query:"profile" default:"balanced" validate:"oneof=conservative balanced aggressive"`
}
