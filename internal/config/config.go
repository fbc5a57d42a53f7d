package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSymbols is the nine-ticker watch-list scanned when no symbols are
// configured.
var DefaultSymbols = []string{"AAPL", "MSFT", "NVDA", "AMD", "GOOG", "SPY", "QQQ", "AMZN", "TSLA"}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watchlist struct {
		Symbols []string `yaml:"symbols"`
	} `yaml:"watchlist"`
	Scan struct {
		MinGapAbs      float64 `yaml:"min_gap_abs"`
		MinGapPct      float64 `yaml:"min_gap_pct"`
		LookbackDays   int     `yaml:"lookback_days"`
		NearLiveWindow int     `yaml:"near_live_window"`
		RecencyBars    int     `yaml:"recency_bars"`
		RewardMultiple float64 `yaml:"reward_multiple"`
		TopK           int     `yaml:"top_k"`
	} `yaml:"scan"`
	Schedule struct {
		NearLiveCron   string `yaml:"near_live_cron"`
		HistoricalCron string `yaml:"historical_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides; every scan knob in the YAML has an
	// env counterpart so containers can tune without a config file.
	envString("TELEGRAM_BOT_TOKEN", &cfg.Telegram.BotToken)
	envString("TELEGRAM_CHAT_ID", &cfg.Telegram.ChatID)
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist.Symbols = splitSymbols(v)
	}
	envString("HTTPS_PROXY", &cfg.Proxy)
	envFloat("MIN_GAP_ABS", &cfg.Scan.MinGapAbs)
	envFloat("MIN_GAP_PCT", &cfg.Scan.MinGapPct)
	envInt("LOOKBACK_DAYS", &cfg.Scan.LookbackDays)
	envInt("NEAR_LIVE_WINDOW", &cfg.Scan.NearLiveWindow)
	envInt("RECENCY_BARS", &cfg.Scan.RecencyBars)
	envFloat("REWARD_MULTIPLE", &cfg.Scan.RewardMultiple)
	envInt("TOP_K", &cfg.Scan.TopK)
	envString("CRON_NEAR_LIVE", &cfg.Schedule.NearLiveCron)
	envString("CRON_HISTORICAL", &cfg.Schedule.HistoricalCron)
	envString("SQLITE_PATH", &cfg.Database.SQLitePath)

	// Defaults
	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = append([]string(nil), DefaultSymbols...)
	}
	if cfg.Scan.MinGapAbs == 0 {
		cfg.Scan.MinGapAbs = 0.10
	}
	if cfg.Scan.MinGapPct == 0 {
		cfg.Scan.MinGapPct = 0.0005
	}
	if cfg.Scan.LookbackDays == 0 {
		cfg.Scan.LookbackDays = 60
	}
	if cfg.Scan.NearLiveWindow == 0 {
		cfg.Scan.NearLiveWindow = 50
	}
	if cfg.Scan.RecencyBars == 0 {
		cfg.Scan.RecencyBars = 6
	}
	if cfg.Scan.RewardMultiple == 0 {
		cfg.Scan.RewardMultiple = 2.0
	}
	if cfg.Scan.TopK == 0 {
		cfg.Scan.TopK = 10
	}
	if cfg.Schedule.NearLiveCron == "" {
		// every 15 minutes during US market hours, Mon-Fri
		cfg.Schedule.NearLiveCron = "0 */15 13-21 * * 1-5"
	}
	if cfg.Schedule.HistoricalCron == "" {
		// daily after the close
		cfg.Schedule.HistoricalCron = "0 30 21 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	if len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols must not be empty")
	}
	if c.Scan.MinGapAbs < 0 || c.Scan.MinGapPct < 0 {
		return fmt.Errorf("scan thresholds must not be negative")
	}
	if c.Scan.RewardMultiple <= 0 {
		return fmt.Errorf("scan.reward_multiple must be positive")
	}
	if c.Scan.LookbackDays <= 0 || c.Scan.NearLiveWindow <= 0 || c.Scan.RecencyBars <= 0 {
		return fmt.Errorf("scan windows must be positive")
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = n
		}
	}
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if sym := strings.TrimSpace(part); sym != "" {
			out = append(out, strings.ToUpper(sym))
		}
	}
	return out
}
