package analysis

import (
	"reflect"
	"testing"
	"time"

	"GapSentinel/internal/model"
)

func intradaySeries(t *testing.T, bars []model.OHLCV) *model.BarSeries {
	t.Helper()
	base := time.Date(2025, 6, 2, 13, 30, 0, 0, time.UTC)
	for i := range bars {
		bars[i].Time = base.Add(time.Duration(i) * 15 * time.Minute)
	}
	return model.NewBarSeries("AAPL", model.TimeframeIntraday, bars)
}

func TestDetect_BullishGap(t *testing.T) {
	// bar0 high 100, bar2 low 100.5: a 0.50 gap at price ~100 clears both
	// the absolute (0.10) and relative (0.05%) thresholds.
	series := intradaySeries(t, []model.OHLCV{
		{Open: 99.8, High: 100, Low: 99.5, Close: 99.9},
		{Open: 100, High: 100.4, Low: 99.9, Close: 100.3},
		{Open: 100.6, High: 100.9, Low: 100.5, Close: 100.7},
		{Open: 100.7, High: 100.8, Low: 100.2, Close: 100.4},
		{Open: 100.4, High: 100.9, Low: 100.0, Close: 100.6},
	})

	gaps := NewGapDetector(0, 0).Detect(series)
	if len(gaps) != 1 {
		t.Fatalf("expected exactly 1 gap, got %d", len(gaps))
	}

	g := gaps[0]
	if g.Direction != model.DirectionBullish {
		t.Errorf("expected bullish direction, got %s", g.Direction)
	}
	if g.Index != 0 {
		t.Errorf("expected window index 0, got %d", g.Index)
	}
	if g.GapLow != 100 || g.GapHigh != 100.5 {
		t.Errorf("expected gap [100, 100.5], got [%v, %v]", g.GapLow, g.GapHigh)
	}
	if g.GapSizeAbs != 0.5 {
		t.Errorf("expected gap size 0.5, got %v", g.GapSizeAbs)
	}
	if !g.ConfirmedAt.Equal(series.Bars[2].Time) {
		t.Errorf("expected confirmation at bar 2 time, got %v", g.ConfirmedAt)
	}
}

func TestDetect_BearishGap(t *testing.T) {
	series := intradaySeries(t, []model.OHLCV{
		{Open: 100.3, High: 100.6, Low: 100.0, Close: 100.2},
		{Open: 100, High: 100.2, Low: 99.4, Close: 99.6},
		{Open: 99.4, High: 99.5, Low: 99.0, Close: 99.1},
	})

	gaps := NewGapDetector(0, 0).Detect(series)
	if len(gaps) != 1 {
		t.Fatalf("expected exactly 1 gap, got %d", len(gaps))
	}

	g := gaps[0]
	if g.Direction != model.DirectionBearish {
		t.Errorf("expected bearish direction, got %s", g.Direction)
	}
	if g.GapLow != 99.5 || g.GapHigh != 100.0 {
		t.Errorf("expected gap [99.5, 100.0], got [%v, %v]", g.GapLow, g.GapHigh)
	}
	if g.GapSizeAbs <= 0 {
		t.Errorf("gap size must be strictly positive, got %v", g.GapSizeAbs)
	}
}

func TestDetect_BelowAbsoluteThreshold(t *testing.T) {
	// Same shape but only a 0.05 gap: below min_gap_abs 0.10.
	series := intradaySeries(t, []model.OHLCV{
		{Open: 99.8, High: 100, Low: 99.5, Close: 99.9},
		{Open: 100, High: 100.4, Low: 99.9, Close: 100.3},
		{Open: 100.1, High: 100.9, Low: 100.05, Close: 100.7},
		{Open: 100.7, High: 100.8, Low: 100.2, Close: 100.4},
		{Open: 100.4, High: 100.9, Low: 100.0, Close: 100.6},
	})

	if gaps := NewGapDetector(0, 0).Detect(series); len(gaps) != 0 {
		t.Fatalf("expected 0 gaps below absolute threshold, got %d", len(gaps))
	}
}

func TestDetect_BelowRelativeThreshold(t *testing.T) {
	// A 0.12 gap clears the absolute threshold but at price ~1000 it is
	// only 0.012%, below min_gap_pct 0.05%. Both filters must pass.
	series := intradaySeries(t, []model.OHLCV{
		{Open: 999.8, High: 1000, Low: 999.5, Close: 999.9},
		{Open: 1000, High: 1000.4, Low: 999.9, Close: 1000.3},
		{Open: 1000.2, High: 1000.9, Low: 1000.12, Close: 1000.2},
	})

	if gaps := NewGapDetector(0, 0).Detect(series); len(gaps) != 0 {
		t.Fatalf("expected 0 gaps below relative threshold, got %d", len(gaps))
	}
}

func TestDetect_OverlappingBarsNoGap(t *testing.T) {
	series := intradaySeries(t, []model.OHLCV{
		{Open: 95, High: 100, Low: 94, Close: 98},
		{Open: 98, High: 102, Low: 97, Close: 100},
		{Open: 100, High: 104, Low: 99, Close: 102},
	})

	if gaps := NewGapDetector(0, 0).Detect(series); len(gaps) != 0 {
		t.Fatalf("expected 0 gaps for overlapping bars, got %d", len(gaps))
	}
}

func TestDetect_ShortSeries(t *testing.T) {
	series := intradaySeries(t, []model.OHLCV{
		{Open: 99.8, High: 100, Low: 99.5, Close: 99.9},
		{Open: 100, High: 100.4, Low: 99.9, Close: 100.3},
	})

	if gaps := NewGapDetector(0, 0).Detect(series); gaps != nil {
		t.Fatalf("expected nil for series shorter than 3 bars, got %d gaps", len(gaps))
	}
}

func TestDetect_MalformedBarSkipped(t *testing.T) {
	// The inverted bar is dropped at series construction, so the window
	// closes over the remaining bars and still finds the gap.
	series := intradaySeries(t, []model.OHLCV{
		{Open: 99.8, High: 100, Low: 99.5, Close: 99.9},
		{Open: 100, High: 99, Low: 101, Close: 100}, // high < low, excluded
		{Open: 100, High: 100.4, Low: 99.9, Close: 100.3},
		{Open: 100.6, High: 100.9, Low: 100.5, Close: 100.7},
	})

	if series.Len() != 3 {
		t.Fatalf("expected 3 usable bars, got %d", series.Len())
	}
	gaps := NewGapDetector(0, 0).Detect(series)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap after skipping malformed bar, got %d", len(gaps))
	}
	if gaps[0].GapLow != 100 || gaps[0].GapHigh != 100.5 {
		t.Errorf("expected gap [100, 100.5], got [%v, %v]", gaps[0].GapLow, gaps[0].GapHigh)
	}
}

func TestDetect_Idempotent(t *testing.T) {
	series := intradaySeries(t, []model.OHLCV{
		{Open: 99.8, High: 100, Low: 99.5, Close: 99.9},
		{Open: 100, High: 100.4, Low: 99.9, Close: 100.3},
		{Open: 100.6, High: 100.9, Low: 100.5, Close: 100.7},
		{Open: 100.7, High: 100.8, Low: 100.2, Close: 100.4},
		{Open: 100.4, High: 100.9, Low: 100.0, Close: 100.6},
	})

	d := NewGapDetector(0, 0)
	first := d.Detect(series)
	second := d.Detect(series)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("detector output differs between identical calls")
	}
}

func TestNewGapDetector_Defaults(t *testing.T) {
	d := NewGapDetector(0, -1)
	if d.MinGapAbs != DefaultMinGapAbs || d.MinGapPct != DefaultMinGapPct {
		t.Errorf("expected default thresholds, got abs=%v pct=%v", d.MinGapAbs, d.MinGapPct)
	}
}
