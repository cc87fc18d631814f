package songcache

import (
	"context"
	"log/slog"

	"chordstage/internal/logging"
	"chordstage/internal/sheet"
)

var (
	eventCacheRead = logging.Event{
		Type:   "song_cache_read_failed",
		Hint:   "run 'chordstage cache clear' if the problem persists",
		Impact: "song parsed from source",
	}
	eventCacheWrite = logging.Event{
		Type:   "song_cache_write_failed",
		Impact: "next run will parse the song again",
	}
)

// ParseFunc turns a raw transcript into a Song.
type ParseFunc func(text string) sheet.Song

// Load returns the cached song for key when its version matches the digest
// of text, and otherwise parses text and stores the result. Cache failures
// never fail the load: they are logged and the freshly parsed song is
// returned. The second result reports whether the cache was hit.
func Load(ctx context.Context, cache Cache, key, text string, parse ParseFunc, logger *slog.Logger) (sheet.Song, bool) {
	logger = logging.NewComponentLogger(logger, "songcache")
	version := Version(text)
	if cache == nil {
		return parse(text), false
	}

	song, ok, err := cache.Get(ctx, key, version)
	switch {
	case err != nil:
		logging.Warn(logger, "song cache read failed", eventCacheRead,
			logging.String(logging.FieldSongKey, key),
			logging.Error(err))
	case ok:
		logging.Decision(logger, "song_cache", "hit", "version matched",
			logging.String(logging.FieldSongKey, key))
		return song, true
	default:
		logging.Decision(logger, "song_cache", "miss", "absent or stale",
			logging.String(logging.FieldSongKey, key))
	}

	song = parse(text)
	if err := cache.Put(ctx, key, version, song); err != nil {
		logging.Warn(logger, "song cache write failed", eventCacheWrite,
			logging.String(logging.FieldSongKey, key),
			logging.Error(err))
	}
	return song, false
}
