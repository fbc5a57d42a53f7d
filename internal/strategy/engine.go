package strategy

import (
	"log"
	"sort"
	"time"

	"GapSentinel/internal/analysis"
	"GapSentinel/internal/collector"
	"GapSentinel/internal/model"
)

// Driver defaults.
const (
	DefaultLookbackDays = 60
	DefaultTopK         = 10
	DefaultWindowBars   = 50
	DefaultRecencyBars  = 6

	// nearLiveFetchDays covers a 50-bar 15-minute window even across a
	// weekend; the window is trimmed to WindowBars afterwards.
	nearLiveFetchDays = 5
)

// Engine drives the gap pipeline (bias -> detection -> levels) over a set
// of symbols. It keeps no state between runs; every call fetches its own
// series snapshots.
type Engine struct {
	Fetcher  collector.Fetcher
	Detector *analysis.GapDetector
	Levels   *analysis.LevelCalculator
}

// NewEngine creates an Engine.
func NewEngine(fetcher collector.Fetcher, detector *analysis.GapDetector, levels *analysis.LevelCalculator) *Engine {
	return &Engine{Fetcher: fetcher, Detector: detector, Levels: levels}
}

// AnalyzeHistorical runs the pipeline over a long lookback window for each
// symbol and ranks the resulting setups across all symbols by gap size,
// largest first, ties broken by more recent confirmation. A symbol whose
// fetch fails or yields no usable bars is skipped; the batch always
// completes and the report is never nil.
func (e *Engine) AnalyzeHistorical(symbols []string, lookbackDays, topK int) *model.HistoricalReport {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	report := &model.HistoricalReport{
		GeneratedAt:  time.Now(),
		LookbackDays: lookbackDays,
	}

	var all []model.TradeSetup
	for _, symbol := range symbols {
		bias := e.classifyBias(symbol, lookbackDays)

		setups, err := e.runPipeline(symbol, lookbackDays)
		if err != nil {
			log.Printf("[WARN] %s: skipped: %v", symbol, err)
			report.Symbols = append(report.Symbols, model.SymbolSummary{Symbol: symbol, Bias: bias, Err: err.Error()})
			continue
		}

		report.Symbols = append(report.Symbols, model.SymbolSummary{Symbol: symbol, Bias: bias, SetupCount: len(setups)})
		all = append(all, setups...)
		log.Printf("[INFO] %s: %d historical setup(s) | trend: %s", symbol, len(setups), bias)
	}

	rankSetups(all)
	if len(all) > topK {
		all = all[:topK]
	}
	report.Ranked = all
	return report
}

// ScanNearLive runs the pipeline over the most recent fine-timeframe window
// for each symbol and returns only setups whose confirming bar falls within
// the last recencyBars bars, so gaps already surfaced historically are not
// re-reported. Each call is stateless; the same persisting gap may be
// reported again on the next poll.
func (e *Engine) ScanNearLive(symbols []string, windowBars, recencyBars int) []model.TradeSetup {
	if windowBars <= 0 {
		windowBars = DefaultWindowBars
	}
	if recencyBars <= 0 {
		recencyBars = DefaultRecencyBars
	}

	var actionable []model.TradeSetup
	for _, symbol := range symbols {
		bias := e.classifyBias(symbol, nearLiveFetchDays)

		bars, err := e.Fetcher.FetchIntradayBars(symbol, nearLiveFetchDays)
		if err != nil {
			log.Printf("[WARN] %s: skipped: %v", symbol, err)
			continue
		}
		series := model.NewBarSeries(symbol, model.TimeframeIntraday, bars)
		series = tail(series, windowBars)
		if series.Len() == 0 {
			log.Printf("[WARN] %s: skipped: no usable bars", symbol)
			continue
		}

		setups := e.setupsFrom(series)
		recent := filterRecent(setups, series, recencyBars)
		if len(recent) == 0 {
			log.Printf("[INFO] %s: no signals in recent bars | trend: %s", symbol, bias)
			continue
		}
		log.Printf("[INFO] %s: %d actionable setup(s) | trend: %s", symbol, len(recent), bias)
		actionable = append(actionable, recent...)
	}
	return actionable
}

// classifyBias computes the coarse trend bias, tolerating any failure.
// Bias is contextual annotation only and never gates detection.
func (e *Engine) classifyBias(symbol string, days int) model.Bias {
	bars, err := e.Fetcher.FetchHourlyBars(symbol, days)
	if err != nil {
		log.Printf("[WARN] %s: hourly fetch failed, bias unknown: %v", symbol, err)
		return model.BiasUnknown
	}
	return analysis.TrendBias(model.NewBarSeries(symbol, model.TimeframeHourly, bars))
}

func (e *Engine) runPipeline(symbol string, lookbackDays int) ([]model.TradeSetup, error) {
	bars, err := e.Fetcher.FetchIntradayBars(symbol, lookbackDays)
	if err != nil {
		return nil, err
	}
	series := model.NewBarSeries(symbol, model.TimeframeIntraday, bars)
	if series.Len() == 0 {
		return nil, collector.ErrNoData
	}
	return e.setupsFrom(series), nil
}

func (e *Engine) setupsFrom(series *model.BarSeries) []model.TradeSetup {
	var setups []model.TradeSetup
	for _, gap := range e.Detector.Detect(series) {
		if setup, ok := e.Levels.Levels(gap); ok {
			setups = append(setups, setup)
		}
	}
	return setups
}

// rankSetups orders setups by gap size descending; equal gaps rank the more
// recently confirmed setup first.
func rankSetups(setups []model.TradeSetup) {
	sort.SliceStable(setups, func(i, j int) bool {
		if setups[i].GapSizeAbs != setups[j].GapSizeAbs {
			return setups[i].GapSizeAbs > setups[j].GapSizeAbs
		}
		return setups[i].ConfirmedAt.After(setups[j].ConfirmedAt)
	})
}

// tail returns a series restricted to its last n bars.
func tail(series *model.BarSeries, n int) *model.BarSeries {
	if series.Len() <= n {
		return series
	}
	return &model.BarSeries{
		Symbol:    series.Symbol,
		Timeframe: series.Timeframe,
		Bars:      series.Bars[series.Len()-n:],
	}
}

// filterRecent keeps setups whose confirming bar is among the last
// recencyBars bars of the scanned window.
func filterRecent(setups []model.TradeSetup, series *model.BarSeries, recencyBars int) []model.TradeSetup {
	if series.Len() == 0 {
		return nil
	}
	idx := series.Len() - recencyBars
	if idx < 0 {
		idx = 0
	}
	cutoff := series.Bars[idx].Time

	var recent []model.TradeSetup
	for _, s := range setups {
		if !s.ConfirmedAt.Before(cutoff) {
			recent = append(recent, s)
		}
	}
	return recent
}
