package cache

import (
	"context"
	"testing"
	"time"

	"BudgetWise/internal/domain/models"
	pkgcache "BudgetWise/pkg/cache"
)

type metricsStub struct {
	hits   int
	misses int
}

func (m *metricsStub) RecordFetch(string, float64) {}
func (m *metricsStub) RecordFetchError(string)     {}
func (m *metricsStub) RecordCacheLookup(hit bool) {
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}
func (m *metricsStub) RecordLastClose(string, float64) {}
func (m *metricsStub) RecordThrottleWait(float64)      {}

func sampleSeries() *models.PriceSeries {
	return &models.PriceSeries{
		Symbol: "SPY",
		Points: []models.PricePoint{
			{Date: "2026-08-01", Open: 100, High: 102, Low: 99, Close: 101, Volume: 1000},
			{Date: "2026-08-02", Open: 101, High: 104, Low: 100, Close: 103, Volume: 1200},
		},
	}
}

func TestSeriesCacheRoundTrip(t *testing.T) {
	backend := pkgcache.NewMemoryCache()
	defer backend.Close()

	stub := &metricsStub{}
	sc := NewSeriesCache(backend, time.Minute, stub)
	ctx := context.Background()

	if _, ok := sc.Get(ctx, "SPY"); ok {
		t.Fatal("expected miss on empty cache")
	}

	sc.Put(ctx, "SPY", sampleSeries())

	got, ok := sc.Get(ctx, "SPY")
	if !ok {
		t.Fatal("expected hit after put")
	}
	if got.Symbol != "SPY" || len(got.Points) != 2 {
		t.Fatalf("unexpected cached series: %+v", got)
	}
	if got.Points[1].Close != 103 {
		t.Fatalf("close = %v, want 103", got.Points[1].Close)
	}
	if stub.hits != 1 || stub.misses != 1 {
		t.Fatalf("lookup metrics = %d hits / %d misses, want 1/1", stub.hits, stub.misses)
	}
}

func TestSeriesCacheKeysBySymbol(t *testing.T) {
	backend := pkgcache.NewMemoryCache()
	defer backend.Close()

	sc := NewSeriesCache(backend, time.Minute, &metricsStub{})
	ctx := context.Background()

	sc.Put(ctx, "SPY", sampleSeries())

	if _, ok := sc.Get(ctx, "QQQ"); ok {
		t.Fatal("expected miss for a different symbol")
	}
}

func TestSeriesCacheExpiry(t *testing.T) {
	backend := pkgcache.NewMemoryCache()
	defer backend.Close()

	sc := NewSeriesCache(backend, 10*time.Millisecond, &metricsStub{})
	ctx := context.Background()

	sc.Put(ctx, "SPY", sampleSeries())
	time.Sleep(30 * time.Millisecond)

	if _, ok := sc.Get(ctx, "SPY"); ok {
		t.Fatal("expected stale entry to miss")
	}
}
