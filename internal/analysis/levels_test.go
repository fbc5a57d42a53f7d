package analysis

import (
	"math"
	"testing"
	"time"

	"GapSentinel/internal/model"
)

func TestLevels_Bullish(t *testing.T) {
	gap := model.GapCandidate{
		Symbol:      "AAPL",
		Direction:   model.DirectionBullish,
		GapLow:      100,
		GapHigh:     100.5,
		GapSizeAbs:  0.5,
		ConfirmedAt: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
	}

	setup, ok := NewLevelCalculator(0, 0).Levels(gap)
	if !ok {
		t.Fatal("expected a valid setup")
	}
	if setup.Entry != 100.25 {
		t.Errorf("expected midpoint entry 100.25, got %v", setup.Entry)
	}
	// buffer = max(0.1*0.5, 0.01) = 0.05
	if math.Abs(setup.Stop-99.95) > 1e-9 {
		t.Errorf("expected stop 99.95, got %v", setup.Stop)
	}
	// target = entry + 2 * (entry - stop) = 100.25 + 0.60
	if math.Abs(setup.Target-100.85) > 1e-9 {
		t.Errorf("expected target 100.85, got %v", setup.Target)
	}
	if !(setup.Target > setup.Entry && setup.Entry > setup.Stop) {
		t.Errorf("bullish ordering violated: target=%v entry=%v stop=%v", setup.Target, setup.Entry, setup.Stop)
	}
}

func TestLevels_Bearish(t *testing.T) {
	gap := model.GapCandidate{
		Symbol:      "TSLA",
		Direction:   model.DirectionBearish,
		GapLow:      99.5,
		GapHigh:     100,
		GapSizeAbs:  0.5,
		ConfirmedAt: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
	}

	setup, ok := NewLevelCalculator(0, 0).Levels(gap)
	if !ok {
		t.Fatal("expected a valid setup")
	}
	if setup.Entry != 99.75 {
		t.Errorf("expected midpoint entry 99.75, got %v", setup.Entry)
	}
	if math.Abs(setup.Stop-100.05) > 1e-9 {
		t.Errorf("expected stop 100.05, got %v", setup.Stop)
	}
	if math.Abs(setup.Target-99.15) > 1e-9 {
		t.Errorf("expected target 99.15, got %v", setup.Target)
	}
	if !(setup.Target < setup.Entry && setup.Entry < setup.Stop) {
		t.Errorf("bearish ordering violated: target=%v entry=%v stop=%v", setup.Target, setup.Entry, setup.Stop)
	}
}

func TestLevels_MinTickFloor(t *testing.T) {
	// A tiny gap's proportional buffer falls below the tick floor.
	gap := model.GapCandidate{
		Direction:  model.DirectionBullish,
		GapLow:     50.00,
		GapHigh:    50.02,
		GapSizeAbs: 0.02,
	}

	setup, ok := NewLevelCalculator(2.0, 0.01).Levels(gap)
	if !ok {
		t.Fatal("expected a valid setup")
	}
	if math.Abs((50.00-setup.Stop)-0.01) > 1e-9 {
		t.Errorf("expected tick-floor buffer 0.01, got %v", 50.00-setup.Stop)
	}
}

func TestLevels_DegenerateDropped(t *testing.T) {
	tests := []struct {
		name string
		gap  model.GapCandidate
	}{
		{"zero gap", model.GapCandidate{Direction: model.DirectionBullish, GapLow: 100, GapHigh: 100, GapSizeAbs: 0}},
		{"nan edge", model.GapCandidate{Direction: model.DirectionBearish, GapLow: math.NaN(), GapHigh: 100, GapSizeAbs: 0.5}},
		{"no direction", model.GapCandidate{GapLow: 100, GapHigh: 100.5, GapSizeAbs: 0.5}},
	}
	calc := NewLevelCalculator(0, 0)
	for _, tt := range tests {
		if _, ok := calc.Levels(tt.gap); ok {
			t.Errorf("%s: expected setup to be dropped", tt.name)
		}
	}
}
