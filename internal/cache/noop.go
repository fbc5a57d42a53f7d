package cache

import (
	"time"

	"GapSentinel/internal/model"
)

// NoopCache is a no-op implementation used when SQLite is not configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Load(_ string, _ model.Timeframe, _ time.Time) ([]model.OHLCV, error) {
	return nil, nil
}
func (n *NoopCache) Store(_ string, _ model.Timeframe, _ []model.OHLCV) error { return nil }
func (n *NoopCache) Close() error                                             { return nil }
