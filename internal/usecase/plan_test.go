package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"BudgetWise/internal/domain/models"
	"BudgetWise/internal/services/analytics"
	applogger "BudgetWise/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	series  map[string]*models.PriceSeries
	err     error
	fetches []string
}

func (f *fakeSource) FetchDailySeries(_ context.Context, symbol string) (*models.PriceSeries, error) {
	f.fetches = append(f.fetches, symbol)
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.series[symbol]
	if !ok {
		return nil, errors.New("unknown symbol")
	}
	return s, nil
}

type fakeCache struct {
	m map[string]*models.PriceSeries
}

func newFakeCache() *fakeCache { return &fakeCache{m: make(map[string]*models.PriceSeries)} }

func (f *fakeCache) Get(_ context.Context, symbol string) (*models.PriceSeries, bool) {
	s, ok := f.m[symbol]
	return s, ok
}

func (f *fakeCache) Put(_ context.Context, symbol string, series *models.PriceSeries) {
	f.m[symbol] = series
}

func twoPointSeries(symbol string, start, end float64) *models.PriceSeries {
	return &models.PriceSeries{Symbol: symbol, Points: []models.PricePoint{
		{Date: "2026-08-01", Close: start},
		{Date: "2026-08-28", Close: end},
	}}
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestUseCase(t *testing.T, src *fakeSource) (*PlanUseCase, *fakeCache) {
	cache := newFakeCache()
	uc := NewPlanUseCase(src, cache, testLogger(t), []string{"BND", "SPY", "QQQ"})
	uc.now = func() time.Time { return time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC) }
	return uc, cache
}

func threeSymbolSource() *fakeSource {
	return &fakeSource{series: map[string]*models.PriceSeries{
		"BND": twoPointSeries("BND", 100, 101),
		"SPY": twoPointSeries("SPY", 100, 110),
		"QQQ": twoPointSeries("QQQ", 100, 120),
	}}
}

func TestSeriesUsesCache(t *testing.T) {
	assert := assert.New(t)
	src := threeSymbolSource()
	uc, _ := newTestUseCase(t, src)
	ctx := context.Background()

	first, err := uc.Series(ctx, "SPY")
	assert.NoError(err)
	second, err := uc.Series(ctx, "SPY")
	assert.NoError(err)

	assert.Equal(first.Points, second.Points)
	assert.Equal([]string{"SPY"}, src.fetches, "second call must hit the cache")
}

func TestRefreshSeriesBypassesCache(t *testing.T) {
	assert := assert.New(t)
	src := threeSymbolSource()
	uc, cache := newTestUseCase(t, src)
	ctx := context.Background()

	cache.Put(ctx, "SPY", twoPointSeries("SPY", 1, 1))
	assert.NoError(uc.RefreshSeries(ctx, "SPY"))
	assert.Equal([]string{"SPY"}, src.fetches)

	got, ok := cache.Get(ctx, "SPY")
	assert.True(ok)
	assert.Equal(110.0, got.LastClose())
}

func TestForecastStartsAtLastClose(t *testing.T) {
	assert := assert.New(t)
	uc, _ := newTestUseCase(t, threeSymbolSource())

	points, err := uc.Forecast(context.Background(), "SPY", 30)
	assert.NoError(err)
	assert.Len(points, 31)
	assert.Equal(110.0, points[0].ProjectedPrice)
	assert.Equal("2026-08-28", points[0].Date)
	// endPrice × (1 + annualizedRate/12) = 110 × 1.1
	assert.InDelta(121.0, points[30].ProjectedPrice, 1e-9)
}

func TestBuildPlan(t *testing.T) {
	assert := assert.New(t)
	uc, _ := newTestUseCase(t, threeSymbolSource())

	expenses := []models.ExpenseCategory{
		{Name: "rent", Amount: 2_000_000},
		{Name: "food", Amount: 1_000_000},
		{Name: "transport", Amount: 500_000},
		{Name: "other", Amount: 300_000},
	}
	plan, err := uc.BuildPlan(context.Background(), 5_000_000, expenses, models.RiskConservative)
	assert.NoError(err)

	assert.Equal(1_200_000.0, plan.Budget.Remaining)
	assert.False(plan.Budget.Overspent)
	assert.Len(plan.Instruments, 3)
	assert.Len(plan.Allocations, 3)

	// Allocation fully partitions the remaining budget.
	sum := 0.0
	for _, a := range plan.Allocations {
		sum += a.Amount
	}
	assert.InDelta(plan.Budget.Remaining, sum, 1e-6)
	assert.InDelta(0.5*1_200_000, plan.Allocations[0].Amount, 1e-6)

	// 0.5×1 + 0.3×10 + 0.2×20 = 7.5
	assert.InDelta(7.5, plan.WeightedReturnPct, 1e-9)
}

func TestBuildPlanOverspentBudget(t *testing.T) {
	assert := assert.New(t)
	uc, _ := newTestUseCase(t, threeSymbolSource())

	plan, err := uc.BuildPlan(context.Background(), 1_000_000,
		[]models.ExpenseCategory{{Name: "rent", Amount: 1_500_000}}, models.RiskBalanced)
	assert.NoError(err)

	// The negative remainder passes through unmodified...
	assert.Equal(-500_000.0, plan.Budget.Remaining)
	assert.True(plan.Budget.Overspent)
	// ...while suggested amounts drop to zero.
	for _, a := range plan.Allocations {
		assert.Equal(0.0, a.Amount)
	}
}

func TestBuildPlanPropagatesFetchErrors(t *testing.T) {
	sentinel := errors.New("rate limited")
	uc, _ := newTestUseCase(t, &fakeSource{err: sentinel})

	_, err := uc.BuildPlan(context.Background(), 1000, nil, models.RiskBalanced)
	assert.ErrorIs(t, err, sentinel)
}

func TestBuildPlanFetchesSequentially(t *testing.T) {
	src := threeSymbolSource()
	uc, _ := newTestUseCase(t, src)

	_, err := uc.BuildPlan(context.Background(), 1000, nil, models.RiskAggressive)
	assert.NoError(t, err)
	assert.Equal(t, []string{"BND", "SPY", "QQQ"}, src.fetches)
}

func TestAllocationsPassThrough(t *testing.T) {
	uc, _ := newTestUseCase(t, threeSymbolSource())
	assert.Equal(t, analytics.Allocate(models.RiskAggressive), uc.Allocations(models.RiskAggressive))
}
