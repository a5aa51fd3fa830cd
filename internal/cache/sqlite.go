package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteCache is a DurableCache backed by a single SQLite table. It survives
// process restarts, so a region's station set fetched yesterday is still
// served today without a network call.
type SQLiteCache[V any] struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteCache opens (or creates) the cache database at the given path.
// Use ":memory:" for an ephemeral cache.
func NewSQLiteCache[V any](path string, ttl time.Duration) (*SQLiteCache[V], error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening cache database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			timestamp_ms INTEGER NOT NULL
		);
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating cache table: %w", err)
	}

	return &SQLiteCache[V]{db: db, ttl: ttl, now: time.Now}, nil
}

func (c *SQLiteCache[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	var blob []byte
	var timestampMillis int64

	row := c.db.QueryRowContext(ctx, `SELECT value, timestamp_ms FROM entries WHERE key = ?`, key)
	err := row.Scan(&blob, &timestampMillis)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("error reading cache entry: %w", err)
	}

	writtenAt := time.UnixMilli(timestampMillis)
	if c.now().Sub(writtenAt) >= c.ttl {
		return zero, false, nil
	}

	var value V
	if err := json.Unmarshal(blob, &value); err != nil {
		// A corrupt entry is treated as a miss; the caller refetches and
		// overwrites it.
		return zero, false, nil
	}
	return value, true, nil
}

func (c *SQLiteCache[V]) Put(ctx context.Context, key string, value V) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding cache entry: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO entries (key, value, timestamp_ms) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, timestamp_ms = excluded.timestamp_ms
	`, key, blob, c.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("error writing cache entry: %w", err)
	}
	return nil
}

func (c *SQLiteCache[V]) Close() error {
	return c.db.Close()
}
