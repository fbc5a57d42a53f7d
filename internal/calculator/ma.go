package calculator

import (
	"errors"

	"GapSentinel/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateSMA20 returns the 20-bar simple moving average of closes,
// excluding the most recent bar. The trend classifier compares the latest
// close against the average of the 20 bars completed before it.
func CalculateSMA20(bars []model.OHLCV) (float64, error) {
	if len(bars) < 21 {
		return 0, errors.New("not enough bars for SMA20")
	}
	closes := make([]float64, len(bars)-1)
	for i := 0; i < len(bars)-1; i++ {
		closes[i] = bars[i].Close
	}
	return CalculateSMA(closes, 20)
}
