package songcache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chordstage/internal/config"
	"chordstage/internal/sheet"
)

const sampleSong = "Song - Artist\n\nAm  G\nHello there\n"

func sampleParsed() sheet.Song {
	return sheet.Parse(sampleSong, nil)
}

// exerciseCache runs the behaviour every backend shares.
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	song := sampleParsed()

	if _, ok, err := c.Get(ctx, "song", "v1"); err != nil || ok {
		t.Fatalf("Get on empty cache = ok %v err %v", ok, err)
	}
	if err := c.Put(ctx, "song", "v1", song); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(ctx, "song", "v1")
	if err != nil || !ok {
		t.Fatalf("Get after Put = ok %v err %v", ok, err)
	}
	if got.Metadata.Title != "Song" || len(got.Lines) != len(song.Lines) {
		t.Fatalf("unexpected song %+v", got)
	}
	if got.Lines[0].Raw != "Am  G" {
		t.Fatalf("raw chord spacing lost: %q", got.Lines[0].Raw)
	}

	if _, ok, _ := c.Get(ctx, "song", "v2"); ok {
		t.Fatal("stale version must miss")
	}

	if err := c.Put(ctx, "song", "v2", song); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "song", "v1"); ok {
		t.Fatal("replaced version must miss")
	}

	if err := c.Delete(ctx, "song"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "song", "v2"); ok {
		t.Fatal("deleted entry must miss")
	}

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Put(ctx, key, "v", song); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}
	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Fatalf("Clear removed %d, want 3", n)
	}
	if _, ok, _ := c.Get(ctx, "a", "v"); ok {
		t.Fatal("cleared entry must miss")
	}
}

func TestMemoryCache(t *testing.T) {
	exerciseCache(t, NewMemory())
}

func TestSQLiteCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "songs.db")
	c, err := OpenSQLite(context.Background(), SQLiteOptions{Path: path}, nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestSQLiteCachePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "songs.db")
	c, err := OpenSQLite(ctx, SQLiteOptions{Path: path}, nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := c.Put(ctx, "k", "v", sampleParsed()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(ctx, SQLiteOptions{Path: path}, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, ok, err := reopened.Get(ctx, "k", "v"); err != nil || !ok {
		t.Fatalf("Get after reopen = ok %v err %v", ok, err)
	}
}

func TestSQLiteSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "songs.db")
	c, err := OpenSQLite(ctx, SQLiteOptions{Path: path}, nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if _, err := c.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion+1)); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	c.Close()

	_, err = OpenSQLite(ctx, SQLiteOptions{Path: path}, nil)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestSQLiteExpiresEntriesPastTTL(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "songs.db")
	c, err := OpenSQLite(ctx, SQLiteOptions{Path: path, TTL: time.Hour}, nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer c.Close()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return start }
	if err := c.Put(ctx, "old", "v", sampleParsed()); err != nil {
		t.Fatalf("Put old: %v", err)
	}
	c.now = func() time.Time { return start.Add(50 * time.Minute) }
	if err := c.Put(ctx, "fresh", "v", sampleParsed()); err != nil {
		t.Fatalf("Put fresh: %v", err)
	}

	c.now = func() time.Time { return start.Add(90 * time.Minute) }
	if _, ok, err := c.Get(ctx, "old", "v"); err != nil || ok {
		t.Fatalf("expired Get = ok %v err %v, want miss", ok, err)
	}
	if _, ok, err := c.Get(ctx, "fresh", "v"); err != nil || !ok {
		t.Fatalf("fresh Get = ok %v err %v, want hit", ok, err)
	}
	removed, err := c.Prune(ctx)
	if err != nil || removed != 1 {
		t.Fatalf("Prune = %d, %v; want 1", removed, err)
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("CHORDSTAGE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CHORDSTAGE_TEST_REDIS_ADDR not set")
	}
	c, err := OpenRedis(context.Background(), RedisOptions{Addr: addr, DB: 15}, nil)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer c.Close()
	if _, err := c.Clear(context.Background()); err != nil {
		t.Fatalf("initial Clear: %v", err)
	}
	exerciseCache(t, c)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	cfg.Cache.Enabled = false
	c, err := Open(ctx, &cfg, nil)
	if err != nil {
		t.Fatalf("Open disabled: %v", err)
	}
	if _, ok := c.(*Memory); !ok {
		t.Fatalf("disabled cache = %T, want *Memory", c)
	}

	cfg.Cache.Enabled = true
	cfg.Cache.Backend = config.CacheBackendSQLite
	cfg.Cache.Path = filepath.Join(t.TempDir(), "songs.db")
	c, err = Open(ctx, &cfg, nil)
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	defer c.Close()
	if _, ok := c.(*SQLite); !ok {
		t.Fatalf("sqlite cache = %T", c)
	}

	cfg.Cache.Backend = "tape"
	if _, err := Open(ctx, &cfg, nil); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestVersionTracksContent(t *testing.T) {
	a := Version(sampleSong)
	if a != Version(sampleSong) {
		t.Fatal("version must be deterministic")
	}
	if a == Version(sampleSong+" ") {
		t.Fatal("whitespace edits must change the version")
	}
	if len(a) != 64 {
		t.Fatalf("version length = %d", len(a))
	}
}

func TestKey(t *testing.T) {
	dir := t.TempDir()
	a := Key(filepath.Join(dir, "one", "Hallelujah.txt"))
	b := Key(filepath.Join(dir, "two", "Hallelujah.txt"))
	if !strings.HasPrefix(a, "hallelujah-") {
		t.Fatalf("key %q lacks readable prefix", a)
	}
	if a == b {
		t.Fatal("same name in different directories must not collide")
	}
	if Key(filepath.Join(dir, "one", "Hallelujah.txt")) != a {
		t.Fatal("key must be stable")
	}
}

func TestKeyAlphabet(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Wish You Were Here (live).txt", "שיר לשבת.txt", "a_b.c.txt"} {
		key := Key(filepath.Join(dir, name))
		for _, r := range key {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				t.Fatalf("Key(%q) = %q has %q outside [a-z0-9-]", name, key, r)
			}
		}
	}
	if key := Key(filepath.Join(dir, "שיר לשבת.txt")); !strings.HasPrefix(key, "song-") {
		t.Fatalf("hebrew name key = %q, want song- prefix", key)
	}
}

type failingCache struct{ *Memory }

func (failingCache) Get(context.Context, string, string) (sheet.Song, bool, error) {
	return sheet.Song{}, false, errors.New("backend down")
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory()
	calls := 0
	parse := func(text string) sheet.Song {
		calls++
		return sheet.Parse(text, nil)
	}

	song, hit := Load(ctx, cache, "k", sampleSong, parse, nil)
	if hit || calls != 1 || song.Metadata.Title != "Song" {
		t.Fatalf("first load hit=%v calls=%d", hit, calls)
	}
	if _, hit = Load(ctx, cache, "k", sampleSong, parse, nil); !hit || calls != 1 {
		t.Fatalf("second load hit=%v calls=%d", hit, calls)
	}
	if _, hit = Load(ctx, cache, "k", sampleSong+"more\n", parse, nil); hit || calls != 2 {
		t.Fatalf("edited load hit=%v calls=%d", hit, calls)
	}

	broken := failingCache{Memory: NewMemory()}
	if song, hit := Load(ctx, broken, "k", sampleSong, parse, nil); hit || song.Metadata.Title != "Song" {
		t.Fatalf("failing cache should fall back to parsing, hit=%v", hit)
	}
	if _, hit := Load(ctx, nil, "k", sampleSong, parse, nil); hit {
		t.Fatal("nil cache cannot hit")
	}
}
