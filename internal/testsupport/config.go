package testsupport

import (
	"path/filepath"
	"testing"

	"chordstage/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The cache uses the in-memory backend unless an option selects another.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.LibraryDir = filepath.Join(base, "library")
	cfgVal.Cache.Backend = config.CacheBackendMemory
	cfgVal.Cache.Path = filepath.Join(base, "cache", "songs.db")
	cfgVal.Display.Color = config.ColorNever
	cfgVal.Watch.DebounceMS = 10

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithSQLiteCache switches the test config to the SQLite backend inside the temp dir.
func WithSQLiteCache() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cache.Enabled = true
		b.cfg.Cache.Backend = config.CacheBackendSQLite
	}
}

// WithDisplay overrides the verse size and chord visibility.
func WithDisplay(linesPerVerse int, showChords bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Display.LinesPerVerse = linesPerVerse
		b.cfg.Display.ShowChords = showChords
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
