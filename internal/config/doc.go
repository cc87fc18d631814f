// Package config loads, normalizes, and validates chordstage configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads a .env file from the working directory
// and honours environment fallbacks such as CHORDSTAGE_REDIS_PASSWORD. The
// Config type centralizes display, cache, watcher and logging settings so the
// CLI resolves them in one pass.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical enum values, and clear validation errors.
package config
