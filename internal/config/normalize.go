package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDisplay()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.LibraryDir, err = expandPath(strings.TrimSpace(c.Paths.LibraryDir)); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.VerseStrategy = lowerTrim(c.Display.VerseStrategy)
	if c.Display.VerseStrategy == "" {
		c.Display.VerseStrategy = StrategyPaged
	}
	c.Display.Direction = lowerTrim(c.Display.Direction)
	if c.Display.Direction == "" {
		c.Display.Direction = DirectionAuto
	}
	c.Display.Color = lowerTrim(c.Display.Color)
	if c.Display.Color == "" {
		c.Display.Color = ColorAuto
	}
}

func (c *Config) normalizeCache() error {
	c.Cache.Backend = lowerTrim(c.Cache.Backend)
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendSQLite
	}
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath()
	}
	var err error
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	c.Cache.RedisAddr = strings.TrimSpace(c.Cache.RedisAddr)
	if c.Cache.RedisAddr == "" {
		c.Cache.RedisAddr = defaultRedisAddr
	}
	c.Cache.RedisPassword = strings.TrimSpace(c.Cache.RedisPassword)
	if c.Cache.RedisPassword == "" {
		if value, ok := os.LookupEnv(EnvRedisPassword); ok {
			c.Cache.RedisPassword = strings.TrimSpace(value)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = lowerTrim(c.Logging.Format)
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = lowerTrim(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
}

func lowerTrim(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
