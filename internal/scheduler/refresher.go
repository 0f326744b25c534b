package scheduler

import (
	"context"
	"time"

	"BudgetWise/internal/usecase"
	applogger "BudgetWise/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Refresher periodically re-fetches the configured symbols to keep the
// series cache warm, so interactive requests rarely pay the throttle delay.
type Refresher struct {
	cron    *cron.Cron
	uc      *usecase.PlanUseCase
	symbols []string
	logger  *applogger.Logger
}

// NewRefresher registers the refresh job under the given cron spec
// (with a seconds field, e.g. "0 30 22 * * 1-5").
func NewRefresher(spec string, uc *usecase.PlanUseCase, symbols []string, logger *applogger.Logger) (*Refresher, error) {
	r := &Refresher{
		cron:    cron.New(cron.WithSeconds()),
		uc:      uc,
		symbols: symbols,
		logger:  logger,
	}
	if _, err := r.cron.AddFunc(spec, r.refreshAll); err != nil {
		return nil, err
	}
	return r, nil
}

// Start starts the cron scheduler.
func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info("refresh scheduler started", applogger.Strings("symbols", r.symbols))
}

// Stop stops the scheduler and waits for a running job to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("refresh scheduler stopped")
}

func (r *Refresher) refreshAll() {
	// Generous deadline: each symbol may wait a full throttle interval.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, symbol := range r.symbols {
		if err := r.uc.RefreshSeries(ctx, symbol); err != nil {
			r.logger.Warn("series refresh failed",
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
			continue
		}
		r.logger.Debug("series refreshed", applogger.String("symbol", symbol))
	}
}
