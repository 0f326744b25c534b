package usecase

import (
	"context"
	"fmt"
	"time"

	"BudgetWise/internal/domain/models"
	drepo "BudgetWise/internal/domain/repository"
	"BudgetWise/internal/services/analytics"
	applogger "BudgetWise/pkg/logger"
)

// PlanUseCase orchestrates the pipeline: cache → throttled fetch →
// analyze → forecast → allocate, plus the independent budget math.
type PlanUseCase struct {
	source  drepo.SeriesSource
	cache   drepo.SeriesCache
	logger  *applogger.Logger
	symbols []string

	// now supplies the forecast start date; overridable in tests.
	now func() time.Time
}

// NewPlanUseCase creates the use case. symbols is the fixed set of tickers
// a full plan covers, fetched sequentially through the shared throttle.
func NewPlanUseCase(source drepo.SeriesSource, cache drepo.SeriesCache, logger *applogger.Logger, symbols []string) *PlanUseCase {
	return &PlanUseCase{
		source:  source,
		cache:   cache,
		logger:  logger,
		symbols: symbols,
		now:     time.Now,
	}
}

// Series returns the price series for symbol, from cache when fresh.
func (uc *PlanUseCase) Series(ctx context.Context, symbol string) (*models.PriceSeries, error) {
	if series, ok := uc.cache.Get(ctx, symbol); ok {
		return series, nil
	}

	series, err := uc.source.FetchDailySeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(ctx, symbol, series)
	return series, nil
}

// RefreshSeries re-fetches symbol unconditionally and overwrites the cache.
func (uc *PlanUseCase) RefreshSeries(ctx context.Context, symbol string) error {
	series, err := uc.source.FetchDailySeries(ctx, symbol)
	if err != nil {
		return err
	}
	uc.cache.Put(ctx, symbol, series)
	return nil
}

// Analysis returns the derived summary for one symbol.
func (uc *PlanUseCase) Analysis(ctx context.Context, symbol string) (models.PriceAnalysis, error) {
	series, err := uc.Series(ctx, symbol)
	if err != nil {
		return models.PriceAnalysis{}, err
	}
	return analytics.Analyze(series), nil
}

// Forecast returns the linear projection for one symbol over days.
func (uc *PlanUseCase) Forecast(ctx context.Context, symbol string, days int) ([]models.ForecastPoint, error) {
	series, err := uc.Series(ctx, symbol)
	if err != nil {
		return nil, err
	}
	a := analytics.Analyze(series)
	return analytics.ProjectForward(a.EndPrice, a.AnnualizedRate, days, uc.now()), nil
}

// Allocations returns the fixed allocation table for a profile.
func (uc *PlanUseCase) Allocations(profile models.RiskProfile) []models.AllocationEntry {
	return analytics.Allocate(profile)
}

// Budget computes the remaining monthly budget.
func (uc *PlanUseCase) Budget(income float64, expenses []models.ExpenseCategory) models.BudgetBreakdown {
	return analytics.RemainingBudget(income, expenses)
}

// BuildPlan runs the full pipeline. Symbols are fetched one after another,
// so with a cold cache the caller experiences the cumulative throttle delay.
// Any fetch error fails the plan with its category intact.
func (uc *PlanUseCase) BuildPlan(ctx context.Context, income float64, expenses []models.ExpenseCategory, profile models.RiskProfile) (*models.InvestmentPlan, error) {
	budget := analytics.RemainingBudget(income, expenses)

	// Overspending is valid budget output, but nothing is investable.
	investable := budget.Remaining
	if investable < 0 {
		investable = 0
	}

	start := time.Now()
	insights := make([]models.InstrumentInsight, 0, len(uc.symbols))
	returnsBySymbol := make(map[string]float64, len(uc.symbols))
	for _, symbol := range uc.symbols {
		series, err := uc.Series(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("build plan: %w", err)
		}
		a := analytics.Analyze(series)
		insights = append(insights, models.InstrumentInsight{
			Symbol:   symbol,
			Analysis: a,
			Forecast: analytics.ProjectForward(a.EndPrice, a.AnnualizedRate, analytics.DefaultHorizonDays, uc.now()),
		})
		returnsBySymbol[symbol] = a.PeriodReturn * 100
	}
	uc.logger.Info("plan pipeline complete",
		applogger.Strings("symbols", uc.symbols),
		applogger.Duration("duration_ms", time.Since(start)),
	)

	entries := analytics.Allocate(profile)
	allocations := make([]models.PlannedAllocation, 0, len(entries))
	for _, e := range entries {
		allocations = append(allocations, models.PlannedAllocation{
			AllocationEntry: e,
			Amount:          e.Weight * investable,
			PeriodReturnPct: returnsBySymbol[e.Symbol],
		})
	}

	returnsPct := make([]float64, 0, len(analytics.Instruments))
	for _, symbol := range analytics.Instruments {
		r, ok := returnsBySymbol[symbol]
		if !ok {
			// Fewer than 3 known returns: WeightedReturn guards to 0.
			returnsPct = nil
			break
		}
		returnsPct = append(returnsPct, r)
	}

	return &models.InvestmentPlan{
		Budget:            budget,
		Profile:           profile,
		Instruments:       insights,
		Allocations:       allocations,
		WeightedReturnPct: analytics.WeightedReturn(profile, returnsPct),
	}, nil
}
