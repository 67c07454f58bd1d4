// Package state persists small process-wide values across runs in SQLite.
package state

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/fsutil"

	_ "modernc.org/sqlite"
)

// LastAutoUpdateKey holds the time of the last automatic update, in milliseconds
// since the Unix epoch.
const LastAutoUpdateKey = "Explore Generators.lastAutoUpdateDate"

// SQLiteStore is a key/value store of integers backed by a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*SQLiteStore, error) {
	if err := fsutil.EnsureFileDir(path); err != nil {
		return nil, fmt.Errorf("%w: create state directory: %w", errors.ErrStateStore, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", errors.ErrStateStore, err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", errors.ErrStateStore, err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to initialize database: %w", errors.ErrStateStore, err)
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS global_state (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`)
	return err
}

// GetInt64 returns the value stored under key and whether it exists.
func (s *SQLiteStore) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM global_state WHERE key = ?`, key).Scan(&value)
	if stderrors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: read %q: %w", errors.ErrStateStore, key, err)
	}
	return value, true, nil
}

// SetInt64 stores value under key, replacing any previous value.
func (s *SQLiteStore) SetInt64(ctx context.Context, key string, value int64) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO global_state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("%w: write %q: %w", errors.ErrStateStore, key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
