package collector

import (
	"errors"

	"GapSentinel/internal/model"
)

// ErrNoData indicates the provider returned no usable bars for a symbol.
// Drivers match it with errors.Is and skip the symbol; like any other fetch
// failure it must never abort a batch.
var ErrNoData = errors.New("no bar data available")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchHourlyBars returns 1-hour bars covering roughly the last `days` days.
	FetchHourlyBars(symbol string, days int) ([]model.OHLCV, error)
	// FetchIntradayBars returns 15-minute bars covering roughly the last `days` days.
	FetchIntradayBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
