package models

// RiskProfile is one of three fixed allocation tiers.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// Valid reports whether the profile is one of the known tiers.
func (p RiskProfile) Valid() bool {
	switch p {
	case RiskConservative, RiskBalanced, RiskAggressive:
		return true
	}
	return false
}

// AllocationEntry is one row of the fixed allocation table for a profile.
// Weights within a profile sum to 1.0.
type AllocationEntry struct {
	Instrument  string  `json:"instrument"`
	Symbol      string  `json:"symbol"`
	Weight      float64 `json:"weight"`
	RiskLevel   string  `json:"riskLevel"`
	Description string  `json:"description"`
}

// PlannedAllocation is an allocation entry scaled against the remaining
// budget. Amount is zero when the budget is overspent.
type PlannedAllocation struct {
	AllocationEntry
	Amount          float64 `json:"amount"`
	PeriodReturnPct float64 `json:"periodReturnPct"`
}

// InstrumentInsight bundles the per-symbol pipeline output.
type InstrumentInsight struct {
	Symbol   string          `json:"symbol"`
	Analysis PriceAnalysis   `json:"analysis"`
	Forecast []ForecastPoint `json:"forecast"`
}

// BudgetBreakdown is the budget calculator's output.
type BudgetBreakdown struct {
	Income        float64 `json:"income"`
	TotalExpenses float64 `json:"totalExpenses"`
	// Remaining may be negative; overspending is a valid state that
	// propagates unchanged to consumers.
	Remaining float64 `json:"remaining"`
	Overspent bool    `json:"overspent"`
}

// InvestmentPlan is the full pipeline output consumed by the UI.
type InvestmentPlan struct {
	Budget            BudgetBreakdown     `json:"budget"`
	Profile           RiskProfile         `json:"profile"`
	Instruments       []InstrumentInsight `json:"instruments"`
	Allocations       []PlannedAllocation `json:"allocations"`
	WeightedReturnPct float64             `json:"weightedReturnPct"`
}
