package api

import (
	"errors"

	"BudgetWise/internal/domain/models"
	"BudgetWise/internal/service/alphavantage"
	"BudgetWise/internal/usecase"
	xhttp "BudgetWise/pkg/http"
	xlogger "BudgetWise/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PlanHandler exposes the budgeting and suggestion pipeline over HTTP.
type PlanHandler struct {
	logger *xlogger.Logger
	uc     *usecase.PlanUseCase
}

func NewPlanHandler(logger *xlogger.Logger, uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{logger: logger, uc: uc}
}

func (h *PlanHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/budget", h.Budget)
	g.POST("/plan", h.Plan)
	g.GET("/analysis", h.Analysis)
	g.GET("/forecast", h.Forecast)
	g.GET("/allocations", h.Allocations)
}

// Budget computes the remaining monthly budget. It never touches the
// provider, so it works even without an API key configured.
func (h *PlanHandler) Budget(c echo.Context) error {
	req := &models.BudgetRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return xhttp.SuccessResponse(c, h.uc.Budget(req.Income, req.Expenses))
}

// Plan runs the full pipeline. With a cold cache this blocks for the
// cumulative throttle delay across all configured symbols.
func (h *PlanHandler) Plan(c echo.Context) error {
	req := &models.PlanRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	plan, err := h.uc.BuildPlan(c.Request().Context(), req.Income, req.Expenses, models.RiskProfile(req.Profile))
	if err != nil {
		h.logger.Error("plan usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, h.mapFetchError(err))
	}
	return xhttp.SuccessResponse(c, plan)
}

func (h *PlanHandler) Analysis(c echo.Context) error {
	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	analysis, err := h.uc.Analysis(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("analysis usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, h.mapFetchError(err))
	}
	return xhttp.SuccessResponse(c, analysis)
}

func (h *PlanHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	points, err := h.uc.Forecast(c.Request().Context(), req.Symbol, req.Days)
	if err != nil {
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, h.mapFetchError(err))
	}
	return xhttp.SuccessResponse(c, points)
}

func (h *PlanHandler) Allocations(c echo.Context) error {
	req := &models.AllocationsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return xhttp.SuccessResponse(c, h.uc.Allocations(models.RiskProfile(req.Profile)))
}

// mapFetchError translates fetcher error categories into HTTP statuses
// without losing the distinction between them.
func (h *PlanHandler) mapFetchError(err error) error {
	var pe *alphavantage.ProviderError
	switch {
	case errors.Is(err, alphavantage.ErrMissingAPIKey):
		return xhttp.InternalError(err.Error()).WithError(err)
	case errors.Is(err, alphavantage.ErrRateLimited):
		return xhttp.UnavailableError(err.Error()).WithError(err)
	case errors.Is(err, alphavantage.ErrNoData):
		return xhttp.NotFoundError(err.Error()).WithError(err)
	case errors.As(err, &pe):
		return xhttp.BadRequestError(pe.Error()).WithError(err)
	default:
		return xhttp.BadGatewayError(err.Error()).WithError(err)
	}
}
