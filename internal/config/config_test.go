package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"chordstage/internal/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Display.LinesPerVerse != 4 || !cfg.Display.ShowChords {
		t.Fatalf("unexpected display defaults: %+v", cfg.Display)
	}
	if cfg.DebounceInterval() != 250*time.Millisecond {
		t.Fatalf("unexpected debounce %v", cfg.DebounceInterval())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected no config file")
	}
	if want := filepath.Join(home, ".config", "chordstage", "config.toml"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	if want := filepath.Join(home, ".local", "share", "chordstage", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("log dir = %q, want %q", cfg.Paths.LogDir, want)
	}
}

func TestLoadCustomFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	payload := map[string]any{
		"paths": map[string]any{"log_dir": "~/logs", "library_dir": "~/charts"},
		"display": map[string]any{
			"lines_per_verse": 6,
			"show_chords":     false,
			"verse_strategy":  " Overlap ",
			"overlap_lines":   2,
			"direction":       "RTL",
		},
		"cache":   map[string]any{"backend": "memory"},
		"logging": map[string]any{"level": "DEBUG", "format": "json"},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Display.LinesPerVerse != 6 || cfg.Display.ShowChords {
		t.Fatalf("unexpected display: %+v", cfg.Display)
	}
	if cfg.Display.VerseStrategy != config.StrategyOverlap || cfg.Display.Direction != config.DirectionRTL {
		t.Fatalf("enums not normalized: %+v", cfg.Display)
	}
	if cfg.Paths.LibraryDir != filepath.Join(home, "charts") {
		t.Fatalf("library dir = %q", cfg.Paths.LibraryDir)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Cache.Backend != config.CacheBackendMemory {
		t.Fatalf("backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("chordstage.toml", []byte("[display]\nlines_per_verse = 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || filepath.Base(path) != "chordstage.toml" {
		t.Fatalf("path=%q exists=%v", path, exists)
	}
	if cfg.Display.LinesPerVerse != 2 {
		t.Fatalf("lines_per_verse = %d", cfg.Display.LinesPerVerse)
	}
}

func TestLoadReadsDotEnvAndEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvRedisPassword, "")
	os.Unsetenv(config.EnvRedisPassword)
	if err := os.WriteFile(".env", []byte(config.EnvRedisPassword+"=s3cret\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.RedisPassword != "s3cret" {
		t.Fatalf("redis password = %q", cfg.Cache.RedisPassword)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
	if got := cfg.Redacted().Cache.RedisPassword; got == "s3cret" {
		t.Fatal("redacted config leaked password")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero lines", func(c *config.Config) { c.Display.LinesPerVerse = 0 }, "lines_per_verse"},
		{"bad strategy", func(c *config.Config) { c.Display.VerseStrategy = "scroll" }, "verse_strategy"},
		{"overlap too large", func(c *config.Config) {
			c.Display.VerseStrategy = config.StrategyOverlap
			c.Display.OverlapLines = 4
		}, "overlap_lines"},
		{"bad direction", func(c *config.Config) { c.Display.Direction = "up" }, "display.direction"},
		{"bad color", func(c *config.Config) { c.Display.Color = "sometimes" }, "display.color"},
		{"bad backend", func(c *config.Config) { c.Cache.Backend = "disk" }, "cache.backend"},
		{"negative ttl", func(c *config.Config) { c.Cache.TTLHours = -1 }, "ttl_hours"},
		{"negative debounce", func(c *config.Config) { c.Watch.DebounceMS = -5 }, "debounce_ms"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists || cfg.Display.VerseStrategy != config.StrategyPaged {
		t.Fatalf("unexpected sample config: %+v", cfg.Display)
	}
}

func TestResolveSongPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	library := t.TempDir()
	if err := os.WriteFile(filepath.Join(library, "hallelujah.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := config.Default()
	cfg.Paths.LibraryDir = library

	got, err := cfg.ResolveSongPath("hallelujah")
	if err != nil {
		t.Fatalf("ResolveSongPath: %v", err)
	}
	if got != filepath.Join(library, "hallelujah.txt") {
		t.Fatalf("got %q", got)
	}
	if _, err := cfg.ResolveSongPath("missing"); err == nil {
		t.Fatal("expected error for missing song")
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Path = filepath.Join(base, "cache", "songs.db")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Cache.Path)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
