package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"BudgetWise/internal/domain/models"
	"BudgetWise/internal/usecase"
	applogger "BudgetWise/pkg/logger"

	"github.com/labstack/echo/v4"
)

type staticSource struct{ series *models.PriceSeries }

func (s *staticSource) FetchDailySeries(_ context.Context, symbol string) (*models.PriceSeries, error) {
	out := *s.series
	out.Symbol = symbol
	return &out, nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*models.PriceSeries, bool) { return nil, false }
func (noopCache) Put(context.Context, string, *models.PriceSeries)       {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	source := &staticSource{series: &models.PriceSeries{
		Points: []models.PricePoint{
			{Date: "2026-08-01", Close: 100},
			{Date: "2026-08-29", Close: 110},
		},
	}}
	uc := usecase.NewPlanUseCase(source, noopCache{}, logger, []string{"BND", "SPY", "QQQ"})

	e := echo.New()
	NewPlanHandler(logger, uc).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBudgetEndpoint(t *testing.T) {
	e := newTestServer(t)

	body := `{"income":5000000,"expenses":[{"name":"rent","amount":2000000},{"name":"food","amount":1800000}]}`
	rec := doJSON(e, http.MethodPost, "/api/budget", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.BudgetBreakdown `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Remaining != 1200000 {
		t.Fatalf("remaining = %v, want 1200000", resp.Data.Remaining)
	}
}

func TestBudgetEndpointRejectsNegativeIncome(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/budget", `{"income":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAllocationsEndpointDefaultsProfile(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/allocations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data []models.AllocationEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("entries = %d, want 3", len(resp.Data))
	}
	var sum float64
	for _, entry := range resp.Data {
		sum += entry.Weight
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("weights sum = %v, want 1.0", sum)
	}
}

func TestAllocationsEndpointRejectsUnknownProfile(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/allocations?profile=yolo", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestForecastEndpointRequiresSymbol(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/forecast", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalysisEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/analysis?symbol=SPY", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.PriceAnalysis `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.StartPrice != 100 || resp.Data.EndPrice != 110 {
		t.Fatalf("unexpected analysis: %+v", resp.Data)
	}
}

func TestPlanEndpoint(t *testing.T) {
	e := newTestServer(t)

	body := `{"income":5000000,"expenses":[{"name":"rent","amount":3000000}],"profile":"conservative"}`
	rec := doJSON(e, http.MethodPost, "/api/plan", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.InvestmentPlan `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Budget.Remaining != 2000000 {
		t.Fatalf("remaining = %v, want 2000000", resp.Data.Budget.Remaining)
	}
	if len(resp.Data.Allocations) != 3 {
		t.Fatalf("allocations = %d, want 3", len(resp.Data.Allocations))
	}
	var total float64
	for _, a := range resp.Data.Allocations {
		total += a.Amount
	}
	if total < 1999999 || total > 2000001 {
		t.Fatalf("allocated total = %v, want 2000000", total)
	}
}
