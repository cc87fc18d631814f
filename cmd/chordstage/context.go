package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chordstage/internal/config"
	"chordstage/internal/logging"
	"chordstage/internal/sheet"
	"chordstage/internal/songcache"
)

type commandContext struct {
	configFlag *string
	colorFlag  *string
	runID      string

	configOnce sync.Once
	config     *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	logCloser  io.Closer

	cacheOnce sync.Once
	cache     songcache.Cache
}

func newCommandContext(configFlag, colorFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		colorFlag:  colorFlag,
		runID:      uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// loggerFor returns the invocation logger, tagged with the run id. Console
// records go to the command's stderr.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, closer, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
			logger, closer = logging.NewNop(), nil
		}
		c.logger = logging.WithContext(c.commandCtx(cmd), logger)
		c.logCloser = closer
	})
	return c.logger
}

// commandCtx returns the cobra context carrying the run id.
func (c *commandContext) commandCtx(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRunID(ctx, c.runID)
}

// songCache opens the configured cache once. An unavailable backend is
// logged and replaced by no caching so rendering still works.
func (c *commandContext) songCache(cmd *cobra.Command) songcache.Cache {
	c.cacheOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			return
		}
		cache, err := songcache.Open(c.commandCtx(cmd), cfg, c.loggerFor(cmd))
		if err != nil {
			logging.Warn(c.loggerFor(cmd), "song cache unavailable", logging.Event{
				Type:   "song_cache_open_failed",
				Hint:   "check the [cache] section or run 'chordstage cache clear --purge'",
				Impact: "songs are parsed on every run",
			}, logging.Error(err), logging.String("backend", cfg.Cache.Backend))
			return
		}
		c.cache = cache
	})
	return c.cache
}

// loadSong resolves name against the library, reads it and parses it through
// the song cache. Non-empty override fields replace the header metadata.
func (c *commandContext) loadSong(cmd *cobra.Command, name string, override *sheet.Metadata) (sheet.Song, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return sheet.Song{}, "", err
	}
	path, err := cfg.ResolveSongPath(name)
	if err != nil {
		return sheet.Song{}, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return sheet.Song{}, "", fmt.Errorf("read song: %w", err)
	}

	logger := c.loggerFor(cmd)
	song, hit := songcache.Load(c.commandCtx(cmd), c.songCache(cmd), songcache.Key(path), string(data), parseSong, logger)
	logger.Debug("song loaded",
		logging.String(logging.FieldPath, path),
		slog.Bool("cache_hit", hit),
		logging.Int("lines", len(song.Lines)),
		logging.String("direction", string(song.Metadata.Direction)))
	return song.WithOverride(override), path, nil
}

func parseSong(text string) sheet.Song {
	return sheet.Parse(text, nil)
}

// run wraps a RunE so the cache and log file are released however the
// command ends.
func (c *commandContext) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if closeErr := c.close(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	}
}

func (c *commandContext) close() error {
	var errs []error
	if c.cache != nil {
		errs = append(errs, c.cache.Close())
		c.cache = nil
	}
	if c.logCloser != nil {
		errs = append(errs, c.logCloser.Close())
		c.logCloser = nil
	}
	return errors.Join(errs...)
}

// colorize decides whether w gets ANSI colour. The --color flag wins over
// the configured mode; auto colours terminals only.
func (c *commandContext) colorize(w io.Writer) bool {
	mode := config.ColorAuto
	if cfg, err := c.ensureConfig(); err == nil {
		mode = cfg.Display.Color
	}
	if c.colorFlag != nil && strings.TrimSpace(*c.colorFlag) != "" {
		mode = strings.ToLower(strings.TrimSpace(*c.colorFlag))
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// terminalSize reports the size of w when it is a terminal.
func terminalSize(w io.Writer) (width, height int, ok bool) {
	file, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(file.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
