package repository

import (
	"context"

	"BudgetWise/internal/domain/models"
)

// SeriesSource provides recent daily price history for one symbol.
// Implementations own throttling and provider-error classification.
type SeriesSource interface {
	FetchDailySeries(ctx context.Context, symbol string) (*models.PriceSeries, error)
}

// SeriesCache stores normalized series between requests so repeated UI
// loads do not burn the provider quota.
type SeriesCache interface {
	Get(ctx context.Context, symbol string) (*models.PriceSeries, bool)
	Put(ctx context.Context, symbol string, series *models.PriceSeries)
}

// Metrics records operational metrics for the fetch pipeline.
type Metrics interface {
	RecordFetch(symbol string, seconds float64)
	RecordFetchError(category string)
	RecordCacheLookup(hit bool)
	RecordLastClose(symbol string, price float64)
	RecordThrottleWait(seconds float64)
}
