package analytics

import (
	"BudgetWise/internal/domain/models"
)

// Instruments is the fixed instrument order. Per-instrument return slices
// passed to WeightedReturn follow this order.
var Instruments = [3]string{"BND", "SPY", "QQQ"}

// The allocation tables are static configuration: three fixed instruments
// per risk profile, weights summing to 1.0.
var allocationTables = map[models.RiskProfile][3]models.AllocationEntry{
	models.RiskConservative: {
		{Instrument: "Total Bond Market", Symbol: "BND", Weight: 0.5, RiskLevel: "Low", Description: "Broad investment-grade bond exposure to preserve capital"},
		{Instrument: "S&P 500 Index", Symbol: "SPY", Weight: 0.3, RiskLevel: "Medium", Description: "Large-cap US equities for steady growth"},
		{Instrument: "Nasdaq-100 Index", Symbol: "QQQ", Weight: 0.2, RiskLevel: "High", Description: "Growth-tilted tech exposure in a small dose"},
	},
	models.RiskBalanced: {
		{Instrument: "Total Bond Market", Symbol: "BND", Weight: 0.3, RiskLevel: "Low", Description: "Bond ballast against equity swings"},
		{Instrument: "S&P 500 Index", Symbol: "SPY", Weight: 0.4, RiskLevel: "Medium", Description: "Core large-cap US equity holding"},
		{Instrument: "Nasdaq-100 Index", Symbol: "QQQ", Weight: 0.3, RiskLevel: "High", Description: "Growth allocation for higher upside"},
	},
	models.RiskAggressive: {
		{Instrument: "Total Bond Market", Symbol: "BND", Weight: 0.1, RiskLevel: "Low", Description: "Minimal bond cushion"},
		{Instrument: "S&P 500 Index", Symbol: "SPY", Weight: 0.4, RiskLevel: "Medium", Description: "Broad equity base"},
		{Instrument: "Nasdaq-100 Index", Symbol: "QQQ", Weight: 0.5, RiskLevel: "High", Description: "Concentrated growth bet for maximum upside"},
	},
}

// Allocate returns the fixed allocation table for a risk profile. An
// unknown profile falls back to balanced rather than failing.
func Allocate(profile models.RiskProfile) []models.AllocationEntry {
	table, ok := allocationTables[profile]
	if !ok {
		table = allocationTables[models.RiskBalanced]
	}
	entries := make([]models.AllocationEntry, len(table))
	copy(entries, table[:])
	return entries
}

// WeightedReturn computes the profile-weighted portfolio return, as a
// percentage, from per-instrument period returns (percentages, in
// Instruments order). Fewer than 3 returns yields 0; that is an explicit
// guard, not an error.
func WeightedReturn(profile models.RiskProfile, returnsPct []float64) float64 {
	if len(returnsPct) < 3 {
		return 0
	}

	entries := Allocate(profile)
	total := 0.0
	for i, e := range entries {
		total += e.Weight * returnsPct[i] / 100
	}
	return total * 100
}
