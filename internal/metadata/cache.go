// Package metadata provides cached access to the book catalogs.
package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Cache provides SQLite-backed caching for catalog API responses.
// Expiry is stored as unix nanoseconds.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// NewCache creates a new metadata cache.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// Get retrieves a cached value by key.
// Returns nil, false if not found or expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	var value string
	var expiresAt int64

	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM metadata_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)

	if err != nil || c.now().UnixNano() >= expiresAt {
		return nil, false
	}

	return []byte(value), true
}

// Set stores a value with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := c.now().Add(ttl).UnixNano()

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO metadata_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, string(value), expiresAt,
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// DeletePrefix removes every entry whose key starts with prefix.
// Returns the number of entries removed.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(prefix)
	result, err := c.db.ExecContext(ctx,
		`DELETE FROM metadata_cache WHERE key LIKE ? ESCAPE '\'`, escaped+"%",
	)
	if err != nil {
		return 0, fmt.Errorf("cache delete prefix: %w", err)
	}
	return result.RowsAffected()
}

// Prune removes all expired entries.
// Returns the number of entries removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM metadata_cache WHERE expires_at <= ?", c.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}

// Stats reports how many entries are stored and how many of them are expired.
func (c *Cache) Stats(ctx context.Context) (total, expired int, err error) {
	err = c.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0) FROM metadata_cache",
		c.now().UnixNano(),
	).Scan(&total, &expired)
	if err != nil {
		return 0, 0, fmt.Errorf("cache stats: %w", err)
	}
	return total, expired, nil
}
