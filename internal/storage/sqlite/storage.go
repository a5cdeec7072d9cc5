// Package sqlite stores mods and preferences in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/preferences"
	_ "modernc.org/sqlite"
)

// DBFileName is the database file inside the state directory.
const DBFileName = "modkeeper.db"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS mods (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	version         TEXT NOT NULL DEFAULT '',
	source          TEXT NOT NULL DEFAULT 'local',
	remote_id       TEXT NOT NULL DEFAULT '',
	descriptor_path TEXT NOT NULL DEFAULT '',
	tags            TEXT NOT NULL DEFAULT '',
	enabled         INTEGER NOT NULL DEFAULT 1,
	updated_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mods_name ON mods (name COLLATE NOCASE);
`

const (
	prefLocale = "locale"
	prefTheme  = "theme"
)

// SQLiteStorage implements preferences.Store and domain.ModRepository.
type SQLiteStorage struct {
	db *sql.DB
}

var (
	_ preferences.Store    = (*SQLiteStorage)(nil)
	_ domain.ModRepository = (*SQLiteStorage)(nil)
)

// NewSQLiteStorage opens or creates the database at dbPath.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}
	// One connection keeps writes serialized; SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	s := &SQLiteStorage{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the stored preferences. Missing keys stay empty.
func (s *SQLiteStorage) Load() (preferences.Preferences, error) {
	rows, err := s.db.Query(`SELECT key, value FROM preferences`)
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("sqlite storage: load preferences: %w", err)
	}
	defer rows.Close()

	var p preferences.Preferences
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return preferences.Preferences{}, fmt.Errorf("sqlite storage: scan preference: %w", err)
		}
		switch key {
		case prefLocale:
			p.Locale = value
		case prefTheme:
			p.Theme = value
		}
	}
	if err := rows.Err(); err != nil {
		return preferences.Preferences{}, fmt.Errorf("sqlite storage: load preferences: %w", err)
	}
	return p, nil
}

// Save replaces the stored preferences in one transaction. Empty fields
// delete their key.
func (s *SQLiteStorage) Save(p preferences.Preferences) error {
	return s.withTx(context.Background(), func(tx *sql.Tx) error {
		for key, value := range map[string]string{prefLocale: p.Locale, prefTheme: p.Theme} {
			if value == "" {
				if _, err := tx.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
					return fmt.Errorf("sqlite storage: clear %s: %w", key, err)
				}
				continue
			}
			_, err := tx.Exec(`INSERT INTO preferences (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
			if err != nil {
				return fmt.Errorf("sqlite storage: save %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: commit: %w", err)
	}
	return nil
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
