package alphavantage

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network call when no
	// credential is configured.
	ErrMissingAPIKey = errors.New("alphavantage: API key is not configured (set ALPHAVANTAGE_API_KEY)")

	// ErrRateLimited is returned when the provider embeds a rate-limit
	// notice in an otherwise successful response. The caller should wait
	// and re-invoke; this is not a permanent failure.
	ErrRateLimited = errors.New("alphavantage: provider rate limit reached, retry later")

	// ErrNoData is returned when a structurally successful response holds
	// zero data points.
	ErrNoData = errors.New("alphavantage: no historical data available")
)

// ProviderError carries an explicit error payload from the provider. The
// underlying cause is ambiguous to us, so the message keeps the provider's
// wording and adds a symbol-format hint.
type ProviderError struct {
	Symbol  string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("alphavantage: %s (symbol %q; expected a plain ticker like SPY)", e.Message, e.Symbol)
}
