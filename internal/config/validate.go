package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.LinesPerVerse < 1 || c.Display.LinesPerVerse > maxLinesPerVerse {
		return fmt.Errorf("display.lines_per_verse must be between 1 and %d", maxLinesPerVerse)
	}
	switch c.Display.VerseStrategy {
	case StrategyPaged:
	case StrategyOverlap:
		if c.Display.OverlapLines < 0 || c.Display.OverlapLines >= c.Display.LinesPerVerse {
			return errors.New("display.overlap_lines must be at least 0 and smaller than display.lines_per_verse")
		}
	default:
		return fmt.Errorf("display.verse_strategy: unsupported value %q (want paged or overlap)", c.Display.VerseStrategy)
	}
	if err := oneOf("display.direction", c.Display.Direction, DirectionAuto, DirectionLTR, DirectionRTL); err != nil {
		return err
	}
	return oneOf("display.color", c.Display.Color, ColorAuto, ColorAlways, ColorNever)
}

func (c *Config) validateCache() error {
	if err := oneOf("cache.backend", c.Cache.Backend, CacheBackendMemory, CacheBackendSQLite, CacheBackendRedis); err != nil {
		return err
	}
	if c.Cache.TTLHours < 0 {
		return errors.New("cache.ttl_hours must be zero or positive")
	}
	if !c.Cache.Enabled {
		return nil
	}
	switch c.Cache.Backend {
	case CacheBackendSQLite:
		if strings.TrimSpace(c.Cache.Path) == "" {
			return errors.New("cache.path must be set when cache.backend is sqlite")
		}
	case CacheBackendRedis:
		if c.Cache.RedisDB < 0 {
			return errors.New("cache.redis_db must be zero or positive")
		}
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.DebounceMS < 0 {
		return errors.New("watch.debounce_ms must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	return oneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error")
}

func oneOf(field, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (want %s)", field, value, strings.Join(allowed, ", "))
}
