package di

import (
	"fmt"

	drepo "BudgetWise/internal/domain/repository"
	"BudgetWise/internal/handler/api"
	"BudgetWise/internal/scheduler"
	"BudgetWise/internal/service/alphavantage"
	icache "BudgetWise/internal/service/cache"
	"BudgetWise/internal/service/throttle"
	"BudgetWise/internal/usecase"
	pkgcache "BudgetWise/pkg/cache"
	"BudgetWise/pkg/config"
	applogger "BudgetWise/pkg/logger"
	"BudgetWise/pkg/metrics"
	"BudgetWise/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideCacheService creates the configured cache backend.
func ProvideCacheService(cfg *config.Config) (pkgcache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		c, err := pkgcache.NewRedisCache(
			pkgcache.WithAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithCredentials(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return pkgcache.NewMemoryCache(), nil
}

// ProvideSeriesCache wraps the cache backend with the typed series cache.
func ProvideSeriesCache(svc pkgcache.Service, cfg *config.Config, m drepo.Metrics) drepo.SeriesCache {
	return icache.NewSeriesCache(svc, cfg.Cache.TTL, m)
}

// ProvideThrottleGate creates the single process-wide throttle gate.
func ProvideThrottleGate(cfg *config.Config) *throttle.Gate {
	return throttle.New(cfg.Provider.CallInterval)
}

// ProvideSeriesSource creates the Alpha Vantage client.
func ProvideSeriesSource(cfg *config.Config, gate *throttle.Gate, m drepo.Metrics, l *applogger.Logger) drepo.SeriesSource {
	return alphavantage.New(alphavantage.Config{
		APIKey:      cfg.Provider.APIKey,
		BaseURL:     cfg.Provider.BaseURL,
		OutputSize:  cfg.Provider.OutputSize,
		Timeout:     cfg.Provider.Timeout,
		HistoryDays: cfg.Provider.HistoryDays,
	}, gate, m, l)
}

// ProvidePlanUseCase creates the pipeline use case.
func ProvidePlanUseCase(src drepo.SeriesSource, sc drepo.SeriesCache, l *applogger.Logger, cfg *config.Config) *usecase.PlanUseCase {
	return usecase.NewPlanUseCase(src, sc, l, cfg.Provider.Symbols)
}

// ProvideRefresher creates the cron refresher, or nil when disabled.
func ProvideRefresher(cfg *config.Config, uc *usecase.PlanUseCase, l *applogger.Logger) (*scheduler.Refresher, error) {
	if !cfg.Refresh.Enabled {
		return nil, nil
	}
	r, err := scheduler.NewRefresher(cfg.Refresh.Cron, uc, cfg.Provider.Symbols, l)
	if err != nil {
		return nil, fmt.Errorf("refresher: %w", err)
	}
	return r, nil
}

// InitializeApp wires up all dependencies and returns the application.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	m := ProvideMetrics()

	cacheSvc, err := ProvideCacheService(cfg)
	if err != nil {
		return nil, err
	}

	gate := ProvideThrottleGate(cfg)
	source := ProvideSeriesSource(cfg, gate, m, logger)
	seriesCache := ProvideSeriesCache(cacheSvc, cfg, m)
	uc := ProvidePlanUseCase(source, seriesCache, logger, cfg)

	refresher, err := ProvideRefresher(cfg, uc, logger)
	if err != nil {
		return nil, err
	}

	handler := api.NewPlanHandler(logger, uc)
	return server.New(cfg, logger, handler, refresher, cacheSvc), nil
}
