package analysis

import (
	"GapSentinel/internal/calculator"
	"GapSentinel/internal/model"
)

// TrendBias classifies the trend of a coarse (1-hour) series against its
// 20-bar SMA: latest close above the average of the 20 previously completed
// bars is bullish, at or below is bearish. Fewer than 21 usable bars yields
// BiasUnknown, which callers must treat as "report gaps in both directions".
func TrendBias(series *model.BarSeries) model.Bias {
	if series.Len() < 21 {
		return model.BiasUnknown
	}
	sma, err := calculator.CalculateSMA20(series.Bars)
	if err != nil {
		return model.BiasUnknown
	}
	lastClose := series.Bars[series.Len()-1].Close
	if lastClose > sma {
		return model.BiasBullish
	}
	return model.BiasBearish
}
