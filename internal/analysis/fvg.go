package analysis

import "GapSentinel/internal/model"

// Default noise thresholds for gap detection.
const (
	DefaultMinGapAbs = 0.10
	DefaultMinGapPct = 0.0005
)

// GapDetector scans a fine-timeframe series for 3-bar fair value gaps.
// Detection is independent of trend bias: a gap's direction comes from its
// own geometry.
type GapDetector struct {
	MinGapAbs float64 // minimum gap size in currency units
	MinGapPct float64 // minimum gap size relative to the confirming close
}

// NewGapDetector creates a detector, falling back to the default thresholds
// for non-positive values.
func NewGapDetector(minAbs, minPct float64) *GapDetector {
	if minAbs <= 0 {
		minAbs = DefaultMinGapAbs
	}
	if minPct <= 0 {
		minPct = DefaultMinGapPct
	}
	return &GapDetector{MinGapAbs: minAbs, MinGapPct: minPct}
}

// Detect slides a 3-bar window over the series and returns every gap that
// clears both thresholds, in chronological order. The detector keeps no
// state between calls; the same series always yields the same candidates.
// A series shorter than 3 bars yields nil.
func (d *GapDetector) Detect(series *model.BarSeries) []model.GapCandidate {
	if series.Len() < 3 {
		return nil
	}

	var out []model.GapCandidate
	bars := series.Bars
	for i := 0; i+2 < len(bars); i++ {
		first := bars[i]
		confirming := bars[i+2]

		// Bullish FVG: the first bar's high never trades into the third
		// bar's low, leaving an untraded region below price.
		if first.High < confirming.Low {
			if c, ok := d.candidate(series, i, model.DirectionBullish, first.High, confirming.Low, confirming); ok {
				out = append(out, c)
			}
		}

		// Bearish FVG: mirror case above price.
		if first.Low > confirming.High {
			if c, ok := d.candidate(series, i, model.DirectionBearish, confirming.High, first.Low, confirming); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func (d *GapDetector) candidate(series *model.BarSeries, index int, dir model.Direction, gapLow, gapHigh float64, confirming model.OHLCV) (model.GapCandidate, bool) {
	sizeAbs := gapHigh - gapLow
	if sizeAbs <= 0 || confirming.Close <= 0 {
		return model.GapCandidate{}, false
	}
	sizePct := sizeAbs / confirming.Close
	if sizeAbs < d.MinGapAbs || sizePct < d.MinGapPct {
		return model.GapCandidate{}, false
	}
	return model.GapCandidate{
		Symbol:      series.Symbol,
		Timeframe:   series.Timeframe,
		Direction:   dir,
		Index:       index,
		GapLow:      gapLow,
		GapHigh:     gapHigh,
		GapSizeAbs:  sizeAbs,
		GapSizePct:  sizePct,
		ConfirmedAt: confirming.Time,
	}, true
}
