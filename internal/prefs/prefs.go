// Package prefs is the durable key/value preference store. Values are
// JSON-encoded strings in a single sqlite table. Reads never fail: an
// absent or corrupt entry yields the caller-supplied default.
//
// Key ownership is by convention — each key is written by exactly one
// component: KeyTheme by the theme controller, KeyName by the identity
// greeting, KeyLastTab by the tab navigator, KeyAPIKey by the draft
// assistant's key form.
package prefs

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Well-known preference keys.
const (
	KeyTheme   = "theme"
	KeyName    = "name"
	KeyLastTab = "last_tab"
	KeyAPIKey  = "openai_key"
)

// migration is a numbered schema change, applied in order and tracked in
// schema_migrations so each runs exactly once.
type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "initial schema",
		SQL: `
CREATE TABLE IF NOT EXISTS prefs (
    key         TEXT PRIMARY KEY,
    value       TEXT NOT NULL,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
}

// Store wraps the sqlite database holding preferences.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the preference database at the given path.
// It creates parent directories if needed, enables WAL mode, and runs
// any pending migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version     INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if exists > 0 {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := db.Exec(
			"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// Set stores a JSON-encoded value under key, replacing any previous value.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode pref %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("set pref %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM prefs WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete pref %q: %w", key, err)
	}
	return nil
}

// Get decodes the stored value for key into the type parameter. An absent
// row, a read error, or a value that does not decode all yield fallback.
func Get[T any](s *Store, key string, fallback T) T {
	var raw string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// GetString is Get specialized for the common string case.
func (s *Store) GetString(key, fallback string) string {
	return Get(s, key, fallback)
}

// Keys returns all stored keys, sorted by key. Used by the prefs CLI.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM prefs ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("query prefs: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan pref key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// RawSet stores an already-encoded value verbatim. Tests use this to
// simulate corrupt entries; the prefs CLI uses it for raw writes.
func (s *Store) RawSet(key, raw string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("set pref %q: %w", key, err)
	}
	return nil
}

// DefaultDBPath returns the default database file path:
// ~/.local/share/vitrine/vitrine.db
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "vitrine", "vitrine.db"), nil
}
