package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"GapSentinel/internal/analysis"
	"GapSentinel/internal/cache"
	"GapSentinel/internal/collector"
	"GapSentinel/internal/config"
	"GapSentinel/internal/notifier"
	"GapSentinel/internal/scheduler"
	"GapSentinel/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GapSentinel starting...")

	// .env first so config sees the overrides
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher, wrapped with the bar cache when configured
	var fetcher collector.Fetcher = collector.NewYahooFetcher(cfg.Proxy)
	if cfg.Database.SQLitePath != "" {
		bc, err := cache.NewSQLiteCache(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite bar cache failed, fetching without cache: %v", err)
		} else {
			defer bc.Close()
			fetcher = collector.NewCachedFetcher(fetcher, bc)
		}
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init pipeline engine
	detector := analysis.NewGapDetector(cfg.Scan.MinGapAbs, cfg.Scan.MinGapPct)
	levels := analysis.NewLevelCalculator(cfg.Scan.RewardMultiple, 0)
	engine := strategy.NewEngine(fetcher, detector, levels)

	// Init Telegram notifier (optional; log-only without it)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		log.Println("[WARN] telegram not configured, reports go to the log only")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, engine, tn, cfg)
	if err := sched.RegisterAll(); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run the historical analysis immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing historical analysis now")
		go sched.RunHistoricalNow()
	}

	log.Println("[INFO] GapSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] GapSentinel stopped")
}
