package songcache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"chordstage/internal/logging"
	"chordstage/internal/sheet"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is stored in PRAGMA user_version. Bump it with schema.sql.
const schemaVersion = 1

// ErrSchemaMismatch reports a cache database written by another schema.
var ErrSchemaMismatch = errors.New("song cache schema mismatch")

// SQLiteOptions configures OpenSQLite.
type SQLiteOptions struct {
	Path string
	// TTL expires entries older than this. Zero keeps entries forever.
	TTL time.Duration
}

// SQLite is a Cache backed by a single SQLite database file.
type SQLite struct {
	db     *sql.DB
	path   string
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// OpenSQLite opens or creates the cache database and drops expired entries.
func OpenSQLite(ctx context.Context, opts SQLiteOptions, logger *slog.Logger) (*SQLite, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, errors.New("sqlite cache path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open song cache %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	c := &SQLite{
		db:     db,
		path:   path,
		ttl:    opts.TTL,
		now:    time.Now,
		logger: logging.NewComponentLogger(logger, "songcache"),
	}
	if err := c.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if removed, err := c.Prune(ctx); err != nil {
		_ = db.Close()
		return nil, err
	} else if removed > 0 {
		c.logger.Debug("pruned expired songs", logging.Int("removed", removed))
	}
	return c, nil
}

func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}

// Path returns the database file location.
func (c *SQLite) Path() string { return c.path }

func (c *SQLite) Get(ctx context.Context, key, version string) (sheet.Song, bool, error) {
	var (
		stored   string
		payload  []byte
		cachedAt int64
	)
	err := c.db.QueryRowContext(ctx,
		"SELECT version, payload, cached_at FROM songs WHERE key = ?", key,
	).Scan(&stored, &payload, &cachedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return sheet.Song{}, false, nil
	case err != nil:
		return sheet.Song{}, false, fmt.Errorf("read cached song %s: %w", key, err)
	case stored != version, c.expired(time.Unix(cachedAt, 0)):
		return sheet.Song{}, false, nil
	}
	e, err := decodeEntry(payload)
	if err != nil {
		return sheet.Song{}, false, err
	}
	return e.Song, true, nil
}

func (c *SQLite) Put(ctx context.Context, key, version string, song sheet.Song) error {
	now := c.now().UTC()
	payload, err := encodeEntry(version, song, now)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx, `
INSERT INTO songs (key, version, payload, cached_at) VALUES (?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
    version = excluded.version,
    payload = excluded.payload,
    cached_at = excluded.cached_at`,
		key, version, payload, now.Unix())
	if err != nil {
		return fmt.Errorf("write cached song %s: %w", key, err)
	}
	c.logger.Debug("cached song", logging.String(logging.FieldSongKey, key), logging.Int("bytes", len(payload)))
	return nil
}

func (c *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM songs WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete cached song %s: %w", key, err)
	}
	return nil
}

func (c *SQLite) Clear(ctx context.Context) (int, error) {
	return c.deleteWhere(ctx, "")
}

// Prune removes entries older than the TTL and reports how many went.
func (c *SQLite) Prune(ctx context.Context) (int, error) {
	if c.ttl <= 0 {
		return 0, nil
	}
	return c.deleteWhere(ctx, "WHERE cached_at < ?", c.now().Add(-c.ttl).Unix())
}

func (c *SQLite) deleteWhere(ctx context.Context, where string, args ...any) (int, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM songs "+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete cached songs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted songs: %w", err)
	}
	return int(n), nil
}

func (c *SQLite) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *SQLite) expired(cachedAt time.Time) bool {
	return c.ttl > 0 && c.now().Sub(cachedAt) > c.ttl
}

// migrate creates the schema in a fresh file and rejects a file written by a
// different schema version.
func (c *SQLite) migrate(ctx context.Context) error {
	var version int
	if err := c.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read song cache schema version: %w", err)
	}
	switch version {
	case schemaVersion:
		return nil
	case 0:
	default:
		return fmt.Errorf("%w: %s has version %d, want %d (run 'chordstage cache clear --purge')",
			ErrSchemaMismatch, c.path, version, schemaVersion)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin song cache schema: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create song cache schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("stamp song cache schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit song cache schema: %w", err)
	}
	c.logger.Debug("created song cache", logging.String(logging.FieldPath, c.path), logging.Int("schema_version", schemaVersion))
	return nil
}
