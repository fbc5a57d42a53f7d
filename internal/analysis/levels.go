package analysis

import (
	"math"

	"GapSentinel/internal/model"
)

// Default level-calculation parameters.
const (
	DefaultRewardMultiple = 2.0  // risk:reward 1:2
	DefaultMinTick        = 0.01 // floor for the stop buffer
)

// LevelCalculator converts a gap candidate into entry, stop and target
// prices. Entry is placed at the gap midpoint rather than the near edge:
// price frequently trades partway into a gap before reacting, so the
// midpoint fills more reliably than the edge. The stop sits a buffer of
// max(0.1*gap, MinTick) beyond the far edge, and the target is the entry
// plus RewardMultiple times the risk.
type LevelCalculator struct {
	RewardMultiple float64
	MinTick        float64
}

// NewLevelCalculator creates a calculator, falling back to defaults for
// non-positive values.
func NewLevelCalculator(rewardMultiple, minTick float64) *LevelCalculator {
	if rewardMultiple <= 0 {
		rewardMultiple = DefaultRewardMultiple
	}
	if minTick <= 0 {
		minTick = DefaultMinTick
	}
	return &LevelCalculator{RewardMultiple: rewardMultiple, MinTick: minTick}
}

// Levels computes the trade levels for a candidate. The second return is
// false for degenerate candidates whose levels would not satisfy
// target > entry > stop (bullish) or target < entry < stop (bearish);
// those are dropped rather than emitted.
func (c *LevelCalculator) Levels(gap model.GapCandidate) (model.TradeSetup, bool) {
	if !(gap.GapSizeAbs > 0) { // also rejects NaN
		return model.TradeSetup{}, false
	}
	entry := (gap.GapLow + gap.GapHigh) / 2
	buffer := math.Max(0.1*gap.GapSizeAbs, c.MinTick)

	var stop, target float64
	switch gap.Direction {
	case model.DirectionBullish:
		stop = gap.GapLow - buffer
		target = entry + c.RewardMultiple*(entry-stop)
	case model.DirectionBearish:
		stop = gap.GapHigh + buffer
		target = entry - c.RewardMultiple*(stop-entry)
	default:
		return model.TradeSetup{}, false
	}

	for _, v := range []float64{entry, stop, target} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.TradeSetup{}, false
		}
	}
	if gap.Direction == model.DirectionBullish && !(target > entry && entry > stop) {
		return model.TradeSetup{}, false
	}
	if gap.Direction == model.DirectionBearish && !(target < entry && entry < stop) {
		return model.TradeSetup{}, false
	}

	return model.TradeSetup{
		Symbol:      gap.Symbol,
		Direction:   gap.Direction,
		Entry:       entry,
		Stop:        stop,
		Target:      target,
		GapSizeAbs:  gap.GapSizeAbs,
		ConfirmedAt: gap.ConfirmedAt,
	}, true
}
