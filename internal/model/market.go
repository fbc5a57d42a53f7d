package model

import (
	"math"
	"sort"
	"time"
)

// Timeframe identifies the bar interval of a series.
type Timeframe string

const (
	// TimeframeHourly is the coarse timeframe used for trend bias.
	TimeframeHourly Timeframe = "1h"
	// TimeframeIntraday is the fine timeframe scanned for gaps.
	TimeframeIntraday Timeframe = "15m"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Valid reports whether the bar carries usable OHLC values.
// Bars with non-finite prices or high < low are unusable.
func (b OHLCV) Valid() bool {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.High >= b.Low
}

// BarSeries holds a time-ordered bar sequence for one symbol and timeframe.
// It is built once per analysis pass and not mutated afterwards.
type BarSeries struct {
	Symbol    string
	Timeframe Timeframe
	Bars      []OHLCV
}

// NewBarSeries builds a series from raw bars: malformed bars are dropped
// and the remainder is sorted chronologically.
func NewBarSeries(symbol string, tf Timeframe, bars []OHLCV) *BarSeries {
	clean := make([]OHLCV, 0, len(bars))
	for _, b := range bars {
		if b.Valid() {
			clean = append(clean, b)
		}
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i].Time.Before(clean[j].Time) })
	return &BarSeries{Symbol: symbol, Timeframe: tf, Bars: clean}
}

// Len returns the number of usable bars in the series.
func (s *BarSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Closes returns the close prices in chronological order.
func (s *BarSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
