package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"BudgetWise/internal/scheduler"
	pkgcache "BudgetWise/pkg/cache"
	"BudgetWise/pkg/config"
	xhttp "BudgetWise/pkg/http"
	applogger "BudgetWise/pkg/logger"
)

// App encapsulates the application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	refresher  *scheduler.Refresher
	cache      pkgcache.Service
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies. refresher may be
// nil when background refresh is disabled.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	refresher *scheduler.Refresher,
	cache pkgcache.Service,
) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		handler:   handler,
		refresher: refresher,
		cache:     cache,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if a.refresher != nil {
		a.refresher.Start()
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("ready",
		applogger.String("env", a.cfg.Environment),
		applogger.Strings("symbols", a.cfg.Provider.Symbols),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	if a.refresher != nil {
		a.refresher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
