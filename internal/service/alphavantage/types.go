package alphavantage

// dailyResponse mirrors the provider's TIME_SERIES_DAILY payload. The
// stringly-keyed shape is the provider's contract; it never leaks past
// this package.
type dailyResponse struct {
	MetaData   metaData              `json:"Meta Data"`
	TimeSeries map[string]dailyPrice `json:"Time Series (Daily)"`

	// Exactly one of these is set on failure shapes. ErrorMessage signals a
	// bad request (typically an unknown symbol); Note and Information carry
	// the free-tier rate-limit notice inside an HTTP 200.
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

type metaData struct {
	Information   string `json:"1. Information"`
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	OutputSize    string `json:"4. Output Size"`
	TimeZone      string `json:"5. Time Zone"`
}

type dailyPrice struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
