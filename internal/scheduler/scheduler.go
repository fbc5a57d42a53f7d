package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"GapSentinel/internal/config"
	"GapSentinel/internal/model"
	"GapSentinel/internal/notifier"
	"GapSentinel/internal/strategy"
)

// Scheduler manages all cron tasks. The near-live polling loop lives here:
// the engine itself is a stateless library and is simply invoked on every
// tick.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   *strategy.Engine
	Notifier *notifier.TelegramNotifier // nil means log-only output
	Cfg      *config.Config
	Ctx      context.Context

	mu           sync.Mutex
	lastReport   *model.HistoricalReport
	lastScanAt   time.Time
	lastScanHits int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, engine *strategy.Engine, tn *notifier.TelegramNotifier, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   engine,
		Notifier: tn,
		Cfg:      cfg,
		Ctx:      ctx,
	}
}

// RegisterAll registers the near-live and historical tasks.
func (s *Scheduler) RegisterAll() error {
	if _, err := s.Cron.AddFunc(s.Cfg.Schedule.NearLiveCron, s.nearLiveTask); err != nil {
		return fmt.Errorf("register near-live task: %w", err)
	}
	if _, err := s.Cron.AddFunc(s.Cfg.Schedule.HistoricalCron, s.historicalTask); err != nil {
		return fmt.Errorf("register historical task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunHistoricalNow executes the historical task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunHistoricalNow() {
	s.historicalTask()
}

func (s *Scheduler) nearLiveTask() {
	runID := uuid.NewString()[:8]
	log.Printf("[INFO] run %s: near-live scan over %d symbols", runID, len(s.Cfg.Watchlist.Symbols))

	setups := s.Engine.ScanNearLive(s.Cfg.Watchlist.Symbols, s.Cfg.Scan.NearLiveWindow, s.Cfg.Scan.RecencyBars)

	s.mu.Lock()
	s.lastScanAt = time.Now()
	s.lastScanHits = len(setups)
	s.mu.Unlock()

	log.Printf("[INFO] run %s: %d actionable setup(s)", runID, len(setups))
	if msg := notifier.FormatNearLiveAlert(setups); msg != "" {
		s.trySend(msg)
	}
}

func (s *Scheduler) historicalTask() {
	log.Printf("[INFO] running historical analysis (%d days)", s.Cfg.Scan.LookbackDays)

	report := s.Engine.AnalyzeHistorical(s.Cfg.Watchlist.Symbols, s.Cfg.Scan.LookbackDays, s.Cfg.Scan.TopK)

	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	s.trySend(notifier.FormatHistoricalReport(report))
}

// HandleCommand responds to a Telegram command.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		setups := s.Engine.ScanNearLive(s.Cfg.Watchlist.Symbols, s.Cfg.Scan.NearLiveWindow, s.Cfg.Scan.RecencyBars)
		s.mu.Lock()
		s.lastScanAt = time.Now()
		s.lastScanHits = len(setups)
		s.mu.Unlock()
		if msg := notifier.FormatNearLiveAlert(setups); msg != "" {
			return msg
		}
		return "No signals found in recent bars."
	case "/report":
		s.mu.Lock()
		report := s.lastReport
		s.mu.Unlock()
		if report == nil {
			return "No historical report yet, run /analyze first."
		}
		return notifier.FormatHistoricalReport(report)
	case "/analyze":
		go s.historicalTask()
		return "Historical analysis started, report will follow."
	case "/status":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastScanAt.IsZero() {
			return "No scans completed yet."
		}
		return fmt.Sprintf("Last scan: %s | %d actionable setup(s)\nWatch-list: %d symbols",
			s.lastScanAt.Format("2006-01-02 15:04:05"), s.lastScanHits, len(s.Cfg.Watchlist.Symbols))
	default:
		return "Available commands:\n• /scan\n• /report\n• /analyze\n• /status"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		log.Printf("[INFO] notification:\n%s", text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
