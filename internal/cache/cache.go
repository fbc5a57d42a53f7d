package cache

import (
	"time"

	"GapSentinel/internal/model"
)

// BarCache stores fetched bars so a flaky provider does not starve the
// analysis. It holds raw upstream data only; analysis results are never
// persisted.
type BarCache interface {
	// Load returns cached bars for the symbol/timeframe at or after `since`,
	// in chronological order.
	Load(symbol string, tf model.Timeframe, since time.Time) ([]model.OHLCV, error)
	// Store upserts bars for the symbol/timeframe.
	Store(symbol string, tf model.Timeframe, bars []model.OHLCV) error
	Close() error
}
