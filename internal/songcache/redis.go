package songcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"chordstage/internal/logging"
	"chordstage/internal/sheet"
)

const (
	redisKeyPrefix   = "chordstage:song:"
	redisPingTimeout = 5 * time.Second
	redisScanCount   = 200
)

// RedisOptions configures the Redis backend. A zero TTL keeps entries
// until they are replaced or cleared.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis is a Cache shared between machines through a Redis server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// OpenRedis connects to the server described by opts and verifies it with a ping.
func OpenRedis(ctx context.Context, opts RedisOptions, logger *slog.Logger) (*Redis, error) {
	ctx = ensureContext(ctx)
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}

	return &Redis{
		client: client,
		ttl:    opts.TTL,
		logger: logging.NewComponentLogger(logger, "songcache"),
	}, nil
}

func (r *Redis) Get(ctx context.Context, key, version string) (sheet.Song, bool, error) {
	data, err := r.client.Get(ensureContext(ctx), redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return sheet.Song{}, false, nil
	}
	if err != nil {
		return sheet.Song{}, false, fmt.Errorf("get cached song: %w", err)
	}
	e, err := decodeEntry(data)
	if err != nil {
		return sheet.Song{}, false, err
	}
	if e.Version != version {
		return sheet.Song{}, false, nil
	}
	return e.Song, true, nil
}

func (r *Redis) Put(ctx context.Context, key, version string, song sheet.Song) error {
	payload, err := encodeEntry(version, song, time.Now())
	if err != nil {
		return err
	}
	if err := r.client.Set(ensureContext(ctx), redisKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("store cached song: %w", err)
	}
	r.logger.Debug("cached song", logging.String(logging.FieldSongKey, key), logging.Int("bytes", len(payload)))
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ensureContext(ctx), redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete cached song: %w", err)
	}
	return nil
}

// Clear removes every chordstage entry from the selected database. Keys
// owned by other applications are left alone.
func (r *Redis) Clear(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	removed := 0
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", redisScanCount).Iterator()
	batch := make([]string, 0, redisScanCount)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := r.client.Del(ctx, batch...).Result()
		if err != nil {
			return err
		}
		removed += int(n)
		batch = batch[:0]
		return nil
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanCount {
			if err := flush(); err != nil {
				return removed, fmt.Errorf("clear song cache: %w", err)
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan song cache: %w", err)
	}
	if err := flush(); err != nil {
		return removed, fmt.Errorf("clear song cache: %w", err)
	}
	return removed, nil
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
