package cache

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"GapSentinel/internal/model"
)

// SQLiteCache persists fetched bars to a SQLite database.
type SQLiteCache struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteCache opens (or creates) the SQLite database and runs migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so scheduled scans can read while a fetch writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite bar cache opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bars (
			symbol    TEXT NOT NULL,
			timeframe TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			open      REAL,
			high      REAL,
			low       REAL,
			close     REAL,
			volume    REAL,
			PRIMARY KEY (symbol, timeframe, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_ts ON bars(symbol, timeframe, timestamp)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (c *SQLiteCache) Load(symbol string, tf model.Timeframe, since time.Time) ([]model.OHLCV, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.db.Query(`SELECT timestamp, open, high, low, close, volume
		FROM bars WHERE symbol = ? AND timeframe = ? AND timestamp >= ?
		ORDER BY timestamp`, symbol, string(tf), since.Unix())
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []model.OHLCV
	for rows.Next() {
		var ts int64
		var b model.OHLCV
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		b.Time = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

func (c *SQLiteCache) Store(symbol string, tf model.Timeframe, bars []model.OHLCV) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO bars
		(symbol, timeframe, timestamp, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bars {
		if _, err := stmt.Exec(symbol, string(tf), b.Time.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert bar: %w", err)
		}
	}
	return tx.Commit()
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
