package cache

import (
	"context"
	"errors"
	"time"

	"BudgetWise/internal/domain/models"
	drepo "BudgetWise/internal/domain/repository"
	pkgcache "BudgetWise/pkg/cache"
)

// SeriesCache adapts a pkg/cache Service to the typed SeriesCache the
// use-case layer expects. Caching sits outside the fetch contract: a miss
// simply falls through to the throttled fetcher.
type SeriesCache struct {
	svc     pkgcache.Service
	ttl     time.Duration
	metrics drepo.Metrics
}

// NewSeriesCache creates a typed series cache with the given TTL.
func NewSeriesCache(svc pkgcache.Service, ttl time.Duration, metrics drepo.Metrics) *SeriesCache {
	return &SeriesCache{svc: svc, ttl: ttl, metrics: metrics}
}

func key(symbol string) string {
	return "series:" + symbol
}

// Get returns the cached series for symbol, if present and fresh.
func (c *SeriesCache) Get(ctx context.Context, symbol string) (*models.PriceSeries, bool) {
	var series models.PriceSeries
	err := c.svc.Get(ctx, key(symbol), &series)
	if err != nil {
		if !errors.Is(err, pkgcache.ErrCacheMiss) {
			// A broken cache backend must not take the pipeline down;
			// treat it as a miss.
			return nil, false
		}
		c.metrics.RecordCacheLookup(false)
		return nil, false
	}
	c.metrics.RecordCacheLookup(true)
	return &series, true
}

// Put stores the series for symbol.
func (c *SeriesCache) Put(ctx context.Context, symbol string, series *models.PriceSeries) {
	_ = c.svc.Set(ctx, key(symbol), series, c.ttl)
}
