package collector

import (
	"time"

	"GapSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Err fails every fetch, ErrSymbols fails individual symbols; otherwise
// per-symbol data is served when present, falling back to generated bars
// around Price.
type MockFetcher struct {
	Price        float64
	HourlyData   map[string][]model.OHLCV
	IntradayData map[string][]model.OHLCV
	Err          error
	ErrSymbols   map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHourlyBars(symbol string, days int) ([]model.OHLCV, error) {
	if err := m.errFor(symbol); err != nil {
		return nil, err
	}
	if bars, ok := m.HourlyData[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, days*7, time.Hour), nil
}

func (m *MockFetcher) FetchIntradayBars(symbol string, days int) ([]model.OHLCV, error) {
	if err := m.errFor(symbol); err != nil {
		return nil, err
	}
	if bars, ok := m.IntradayData[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, days*26, 15*time.Minute), nil
}

func (m *MockFetcher) errFor(symbol string) error {
	if m.Err != nil {
		return m.Err
	}
	if err, ok := m.ErrSymbols[symbol]; ok {
		return err
	}
	return nil
}

func generateMockBars(basePrice float64, count int, step time.Duration) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
