package alphavantage

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"BudgetWise/internal/domain/models"
	drepo "BudgetWise/internal/domain/repository"
	"BudgetWise/internal/service/throttle"
	xhttp "BudgetWise/pkg/http"
	applogger "BudgetWise/pkg/logger"

	"github.com/shopspring/decimal"
)

// Client implements a SeriesSource backed by the Alpha Vantage daily
// time-series endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	outputSize  string
	historyDays int

	gate    *throttle.Gate
	http    *xhttp.Client
	logger  *applogger.Logger
	metrics drepo.Metrics
}

// Config holds provider client settings.
type Config struct {
	APIKey      string
	BaseURL     string
	OutputSize  string
	Timeout     time.Duration
	HistoryDays int
}

// New creates a new Alpha Vantage SeriesSource. All callers share the given
// throttle gate.
func New(cfg Config, gate *throttle.Gate, metrics drepo.Metrics, logger *applogger.Logger) drepo.SeriesSource {
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		outputSize:  cfg.OutputSize,
		historyDays: cfg.HistoryDays,
		gate:        gate,
		http:        xhttp.NewClient(xhttp.WithTimeout(cfg.Timeout)),
		logger:      logger,
		metrics:     metrics,
	}
}

// FetchDailySeries fetches and normalizes recent daily history for symbol.
// It suspends on the shared throttle gate before issuing the request.
func (c *Client) FetchDailySeries(ctx context.Context, symbol string) (*models.PriceSeries, error) {
	if c.apiKey == "" {
		c.metrics.RecordFetchError("config")
		return nil, ErrMissingAPIKey
	}

	waited, err := c.gate.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("throttle wait: %w", err)
	}
	c.metrics.RecordThrottleWait(waited.Seconds())
	if waited > 0 {
		c.logger.Debug("throttled provider call",
			applogger.String("symbol", symbol),
			applogger.Duration("waited_ms", waited),
		)
	}

	start := time.Now()
	var resp dailyResponse
	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		URL: c.baseURL,
		QueryParams: map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     symbol,
			"outputsize": c.outputSize,
			"apikey":     c.apiKey,
		},
	}, &resp)
	if err != nil {
		c.metrics.RecordFetchError("transport")
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	if resp.ErrorMessage != "" {
		c.metrics.RecordFetchError("provider")
		return nil, &ProviderError{Symbol: symbol, Message: resp.ErrorMessage}
	}
	// The free tier reports quota exhaustion as a 200 with a notice field.
	if resp.Note != "" || resp.Information != "" {
		c.metrics.RecordFetchError("rate_limit")
		return nil, ErrRateLimited
	}

	series := c.normalize(symbol, resp.TimeSeries)
	if series.Len() == 0 {
		c.metrics.RecordFetchError("empty")
		return nil, fmt.Errorf("fetch %s: %w", symbol, ErrNoData)
	}

	c.metrics.RecordFetch(symbol, time.Since(start).Seconds())
	c.metrics.RecordLastClose(symbol, series.LastClose())
	c.logger.Info("fetched daily series",
		applogger.String("symbol", symbol),
		applogger.Int("points", series.Len()),
	)

	return series, nil
}

// normalize turns the provider's date-keyed map into an ascending-by-date
// series capped at the most recent historyDays entries.
func (c *Client) normalize(symbol string, ts map[string]dailyPrice) *models.PriceSeries {
	dates := make([]string, 0, len(ts))
	for date := range ts {
		dates = append(dates, date)
	}
	// Dates are ISO formatted, so lexicographic order is chronological.
	sort.Strings(dates)

	if len(dates) > c.historyDays {
		dates = dates[len(dates)-c.historyDays:]
	}

	points := make([]models.PricePoint, 0, len(dates))
	for _, date := range dates {
		p := ts[date]
		points = append(points, models.PricePoint{
			Date:   date,
			Open:   parsePrice(p.Open),
			High:   parsePrice(p.High),
			Low:    parsePrice(p.Low),
			Close:  parsePrice(p.Close),
			Volume: parseVolume(p.Volume),
		})
	}

	return &models.PriceSeries{Symbol: symbol, Points: points}
}

// parsePrice parses a provider price string and rounds to 2 decimals.
// Unparseable input counts as 0.
func parsePrice(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Round(2).Float64()
	return f
}

func parseVolume(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
