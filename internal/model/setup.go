package model

import "time"

// Bias is the coarse-timeframe trend classification for a symbol.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	// BiasUnknown means there was not enough history to classify the trend.
	// Downstream code must not gate on an unknown bias.
	BiasUnknown Bias = "unknown"
)

// Direction is the orientation of a gap, derived from its own geometry.
type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
)

// GapCandidate is a detected fair value gap before level calculation.
// Index is the position of the first bar of the 3-bar window in its series.
type GapCandidate struct {
	Symbol      string
	Timeframe   Timeframe
	Direction   Direction
	Index       int
	GapLow      float64
	GapHigh     float64
	GapSizeAbs  float64
	GapSizePct  float64
	ConfirmedAt time.Time
}

// TradeSetup is the terminal artifact of the pipeline: a gap with
// entry, stop and target levels attached.
type TradeSetup struct {
	Symbol      string
	Direction   Direction
	Entry       float64
	Stop        float64
	Target      float64
	GapSizeAbs  float64
	ConfirmedAt time.Time
}

// SymbolSummary reports the per-symbol outcome of a historical pass.
type SymbolSummary struct {
	Symbol     string
	Bias       Bias
	SetupCount int
	Err        string // non-empty when the symbol was skipped
}

// HistoricalReport is the aggregated result of a historical analysis pass.
type HistoricalReport struct {
	GeneratedAt  time.Time
	LookbackDays int
	Ranked       []TradeSetup
	Symbols      []SymbolSummary
}
