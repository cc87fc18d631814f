package songcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chordstage/internal/config"
	"chordstage/internal/sheet"
)

// ErrUnknownBackend reports a backend name with no implementation.
var ErrUnknownBackend = errors.New("unknown cache backend")

// Cache persists parsed songs. Get reports a miss when the key is absent or
// the stored version differs from version.
type Cache interface {
	Get(ctx context.Context, key, version string) (sheet.Song, bool, error)
	Put(ctx context.Context, key, version string, song sheet.Song) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) (int, error)
	Close() error
}

// Open builds the backend selected by cfg. A disabled cache yields a Memory
// cache that lives only for the current process.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Cache, error) {
	if cfg == nil || !cfg.Cache.Enabled {
		return NewMemory(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		return NewMemory(), nil
	case config.CacheBackendSQLite:
		return OpenSQLite(ctx, SQLiteOptions{Path: cfg.Cache.Path, TTL: cfg.CacheTTL()}, logger)
	case config.CacheBackendRedis:
		return OpenRedis(ctx, RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      cfg.CacheTTL(),
		}, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Cache.Backend)
	}
}

// entry is the serialized form shared by the persistent backends.
type entry struct {
	Version  string     `msgpack:"version"`
	CachedAt time.Time  `msgpack:"cached_at"`
	Song     sheet.Song `msgpack:"song"`
}
