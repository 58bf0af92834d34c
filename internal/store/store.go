// Package store persists trade records, aliases, room configuration, and
// rejection statistics in an embedded SQLite database. Writes are serialized
// behind a single mutex; reads may run concurrently (WAL mode).
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"PriceSentinel/internal/model"
)

// Store wraps the embedded trade database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so price queries read while ingestion writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] trade store opened: %s", dbPath)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			item_name      TEXT NOT NULL,
			canonical_name TEXT,
			enhancement    INTEGER DEFAULT 0,
			item_level     INTEGER DEFAULT 0,
			item_options   TEXT,
			trade_type     TEXT NOT NULL,
			price          REAL,
			price_unit     TEXT DEFAULT 'gj',
			price_raw      TEXT,
			seller_name    TEXT,
			server         TEXT,
			trade_date     TEXT NOT NULL,
			message_time   TEXT,
			source         TEXT DEFAULT 'realtime',
			raw_message    TEXT,
			created_at     TEXT DEFAULT (datetime('now','localtime'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_canonical ON trades(canonical_name, trade_date)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_item ON trades(item_name)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_canonical_enh ON trades(canonical_name, enhancement, price_unit)`,

		`CREATE TABLE IF NOT EXISTS item_aliases (
			alias          TEXT PRIMARY KEY,
			canonical_name TEXT NOT NULL,
			category       TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS trade_rooms (
			room_id    TEXT PRIMARY KEY,
			room_name  TEXT,
			collect    INTEGER DEFAULT 0,
			enabled    INTEGER DEFAULT 1,
			created_at TEXT DEFAULT (datetime('now','localtime'))
		)`,

		`CREATE TABLE IF NOT EXISTS rejected_patterns (
			pattern      TEXT PRIMARY KEY,
			reject_count INTEGER NOT NULL DEFAULT 1,
			last_seen    TEXT DEFAULT (datetime('now','localtime'))
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Checkpoint flushes the WAL into the main database file.
func (s *Store) Checkpoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return err
}

// Stats summarizes the whole store. threshold is the active-rejection cutoff.
func (s *Store) Stats(threshold int) (model.Stats, error) {
	var st model.Stats

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM trades`).Scan(&st.Trades); err != nil {
		return st, fmt.Errorf("count trades: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT canonical_name) FROM trades`).Scan(&st.Items); err != nil {
		return st, fmt.Errorf("count items: %w", err)
	}
	var from, to sql.NullString
	if err := s.db.QueryRow(`SELECT MIN(trade_date), MAX(trade_date) FROM trades`).Scan(&from, &to); err != nil {
		return st, fmt.Errorf("date range: %w", err)
	}
	st.DateFrom, st.DateTo = from.String, to.String
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM item_aliases`).Scan(&st.Aliases); err != nil {
		return st, fmt.Errorf("count aliases: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rejected_patterns`).Scan(&st.RejectedPatterns); err != nil {
		return st, fmt.Errorf("count rejected: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rejected_patterns WHERE reject_count >= ?`, threshold).Scan(&st.ActiveRejectedPatterns); err != nil {
		return st, fmt.Errorf("count active rejected: %w", err)
	}
	return st, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Close closes the database.
func (s *Store) Close() error {
	log.Println("[INFO] closing trade store")
	return s.db.Close()
}
