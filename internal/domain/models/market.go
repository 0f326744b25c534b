package models

// PricePoint is one trading day of OHLCV data, immutable once produced by
// the fetcher. Prices are rounded to 2 decimals during normalization.
type PricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// PriceSeries is an ascending-by-date sequence of points for one symbol,
// covering at most the 30 most recent trading days the provider returned.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

// LastClose returns the close of the most recent point, or 0 when empty.
func (s *PriceSeries) LastClose() float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Close
}

// PriceAnalysis is the derived, stateless summary of one price series.
// All fields are zero for an empty series; that is a defined result,
// not an error.
type PriceAnalysis struct {
	StartPrice          float64 `json:"startPrice"`
	EndPrice            float64 `json:"endPrice"`
	PeriodReturn        float64 `json:"periodReturn"`
	AnnualizedRate      float64 `json:"annualizedRate"`
	AnnualizedReturnPct float64 `json:"annualizedReturnPct"`
	ForecastedPrice     float64 `json:"forecastedPriceAtHorizon"`
	HighPrice           float64 `json:"highPrice"`
	LowPrice            float64 `json:"lowPrice"`
}

// ForecastPoint is one day of the linear price projection.
type ForecastPoint struct {
	Date           string  `json:"date"`
	ProjectedPrice float64 `json:"projectedPrice"`
}
