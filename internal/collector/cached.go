package collector

import (
	"log"
	"time"

	"GapSentinel/internal/cache"
	"GapSentinel/internal/model"
)

// CachedFetcher wraps another Fetcher with a bar cache. Fresh data is always
// preferred; fetched bars are written through to the cache, and cached bars
// are served only when the upstream provider fails. A provider outage then
// degrades a symbol to slightly stale bars instead of skipping it.
type CachedFetcher struct {
	Upstream Fetcher
	Cache    cache.BarCache
}

// NewCachedFetcher wraps upstream with the given cache.
func NewCachedFetcher(upstream Fetcher, c cache.BarCache) *CachedFetcher {
	return &CachedFetcher{Upstream: upstream, Cache: c}
}

func (f *CachedFetcher) Name() string { return f.Upstream.Name() + "+cache" }

func (f *CachedFetcher) FetchHourlyBars(symbol string, days int) ([]model.OHLCV, error) {
	return f.fetch(symbol, model.TimeframeHourly, days, f.Upstream.FetchHourlyBars)
}

func (f *CachedFetcher) FetchIntradayBars(symbol string, days int) ([]model.OHLCV, error) {
	return f.fetch(symbol, model.TimeframeIntraday, days, f.Upstream.FetchIntradayBars)
}

func (f *CachedFetcher) fetch(symbol string, tf model.Timeframe, days int, upstream func(string, int) ([]model.OHLCV, error)) ([]model.OHLCV, error) {
	bars, err := upstream(symbol, days)
	if err == nil {
		if storeErr := f.Cache.Store(symbol, tf, bars); storeErr != nil {
			log.Printf("[WARN] cache store %s %s: %v", symbol, tf, storeErr)
		}
		return bars, nil
	}

	since := time.Now().AddDate(0, 0, -days)
	cached, cacheErr := f.Cache.Load(symbol, tf, since)
	if cacheErr != nil || len(cached) == 0 {
		return nil, err
	}
	log.Printf("[WARN] fetch %s %s failed (%v), serving %d cached bars", symbol, tf, err, len(cached))
	return cached, nil
}
