package config

const (
	defaultConfigPath    = "~/.config/chordstage/config.toml"
	projectConfigFile    = "chordstage.toml"
	dotEnvFile           = ".env"
	defaultLogDir        = "~/.local/share/chordstage/logs"
	defaultLibraryDir    = "~/songs"
	defaultLinesPerVerse = 4
	defaultOverlapLines  = 1
	defaultRedisAddr     = "127.0.0.1:6379"
	defaultCacheTTLHours = 168
	defaultDebounceMS    = 250
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 30
	maxLinesPerVerse     = 64
)

// Enum values accepted by the configuration.
const (
	StrategyPaged   = "paged"
	StrategyOverlap = "overlap"

	DirectionAuto = "auto"
	DirectionLTR  = "ltr"
	DirectionRTL  = "rtl"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
	CacheBackendRedis  = "redis"
)

// Environment variables consulted during normalization.
const (
	EnvRedisPassword = "CHORDSTAGE_REDIS_PASSWORD"
	EnvLogLevel      = "CHORDSTAGE_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:     defaultLogDir,
			LibraryDir: defaultLibraryDir,
		},
		Display: Display{
			LinesPerVerse: defaultLinesPerVerse,
			ShowChords:    true,
			VerseStrategy: StrategyPaged,
			OverlapLines:  defaultOverlapLines,
			Direction:     DirectionAuto,
			Color:         ColorAuto,
		},
		Cache: Cache{
			Enabled:   true,
			Backend:   CacheBackendSQLite,
			Path:      defaultCachePath(),
			RedisAddr: defaultRedisAddr,
			TTLHours:  defaultCacheTTLHours,
		},
		Watch: Watch{
			DebounceMS: defaultDebounceMS,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
