package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"chordstage/internal/logging"
	"chordstage/internal/songcache"
)

const clearScreen = "\x1b[H\x1b[2J"

var (
	eventReloadFailed = logging.Event{
		Type:   "watch_reload_failed",
		Hint:   "save the file again once it is readable",
		Impact: "previous render stays on screen",
	}
	eventRenderFailed = logging.Event{
		Type:   "watch_render_failed",
		Impact: "watch stops",
	}
	eventWatcherError = logging.Event{
		Type:   "watch_error",
		Impact: "a save may have been missed",
	}
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var flags displayFlags
	var target renderTarget

	cmd := &cobra.Command{
		Use:   "watch <song>",
		Short: "Re-render a transcript every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: ctx.run(func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			path, err := cfg.ResolveSongPath(args[0])
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.loggerFor(cmd), "watch")

			lockPath := filepath.Join(cfg.Paths.LogDir, "watch-"+songcache.Key(path)+".lock")
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire watch lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another watcher is already running for %s (lock %s)", path, lockPath)
			}
			defer func() { _ = lock.Unlock() }()

			out := cmd.OutOrStdout()
			render := func() error {
				song, _, err := ctx.loadSong(cmd, path, s.override(&flags))
				if err != nil {
					logging.Warn(logger, "song reload failed", eventReloadFailed,
						logging.String(logging.FieldPath, path),
						logging.Error(err))
					return nil
				}
				if isTerminal(out) {
					if err := clearTerminal(out); err != nil {
						return err
					}
				}
				if err := renderSong(cmd, ctx, song, path, s, target); err != nil {
					logging.Fail(logger, "render failed", eventRenderFailed,
						logging.String(logging.FieldPath, path),
						logging.Error(err))
					return err
				}
				return nil
			}

			watcher, err := newSongWatcher(path, cfg.DebounceInterval(), logger)
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := render(); err != nil {
				return err
			}
			logger.Info("watching song", logging.String(logging.FieldPath, path))
			return watcher.Run(ctx.commandCtx(cmd), render)
		}),
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&target.verse, "verse", 0, "Render only this verse (1-based)")
	cmd.Flags().StringVar(&target.columns, "columns", "", "Lay sections out in columns: auto or a column count")
	return cmd
}

func clearTerminal(w io.Writer) error {
	if _, err := io.WriteString(w, clearScreen); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// songWatcher reports saves of a single file. The parent directory is
// watched so editors that replace the file on save are still seen.
type songWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

func newSongWatcher(path string, debounce time.Duration, logger *slog.Logger) (*songWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &songWatcher{watcher: watcher, path: abs, debounce: debounce, logger: logger}, nil
}

// Run calls onChange once per burst of writes, after the file has been
// quiet for the debounce interval. It returns nil when ctx is cancelled and
// stops early if onChange fails.
func (w *songWatcher) Run(ctx context.Context, onChange func() error) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.logger.Debug("song changed", logging.String(logging.FieldPath, w.path))
			if err := onChange(); err != nil {
				return err
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn(w.logger, "file watcher error", eventWatcherError,
				logging.String(logging.FieldPath, w.path),
				logging.Error(err))
		}
	}
}

func (w *songWatcher) Close() error {
	return w.watcher.Close()
}
