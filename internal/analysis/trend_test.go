package analysis

import (
	"testing"
	"time"

	"GapSentinel/internal/model"
)

func hourlySeries(closes []float64) *model.BarSeries {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  base.Add(time.Duration(i) * time.Hour),
			Open:  c,
			High:  c + 1,
			Low:   c - 1,
			Close: c,
		}
	}
	return model.NewBarSeries("SPY", model.TimeframeHourly, bars)
}

func TestTrendBias_Bullish(t *testing.T) {
	// 20 completed bars around 100, latest close above the average.
	closes := make([]float64, 21)
	for i := 0; i < 20; i++ {
		closes[i] = 100
	}
	closes[20] = 105

	if bias := TrendBias(hourlySeries(closes)); bias != model.BiasBullish {
		t.Errorf("expected bullish bias, got %s", bias)
	}
}

func TestTrendBias_Bearish(t *testing.T) {
	closes := make([]float64, 21)
	for i := 0; i < 20; i++ {
		closes[i] = 100
	}
	closes[20] = 95

	if bias := TrendBias(hourlySeries(closes)); bias != model.BiasBearish {
		t.Errorf("expected bearish bias, got %s", bias)
	}
}

func TestTrendBias_EqualIsBearish(t *testing.T) {
	closes := make([]float64, 21)
	for i := range closes {
		closes[i] = 100
	}

	if bias := TrendBias(hourlySeries(closes)); bias != model.BiasBearish {
		t.Errorf("close equal to SMA20 should be bearish, got %s", bias)
	}
}

func TestTrendBias_InsufficientHistory(t *testing.T) {
	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 100
	}

	if bias := TrendBias(hourlySeries(closes)); bias != model.BiasUnknown {
		t.Errorf("expected unknown bias for 10 bars, got %s", bias)
	}
	if bias := TrendBias(hourlySeries(nil)); bias != model.BiasUnknown {
		t.Errorf("expected unknown bias for empty series, got %s", bias)
	}
}
