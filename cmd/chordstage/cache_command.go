package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"chordstage/internal/config"
	"chordstage/internal/songcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the parsed song cache",
	}
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	var purge bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached song",
		Long: "Clear removes cached songs from the configured backend. With --purge the SQLite\n" +
			"database file is deleted instead, which also recovers from a schema mismatch.",
		RunE: ctx.run(func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if purge {
				if cfg.Cache.Backend != config.CacheBackendSQLite {
					return fmt.Errorf("--purge only applies to the sqlite backend (configured: %s)", cfg.Cache.Backend)
				}
				removed := 0
				for _, suffix := range []string{"", "-wal", "-shm"} {
					err := os.Remove(cfg.Cache.Path + suffix)
					switch {
					case err == nil:
						removed++
					case !errors.Is(err, fs.ErrNotExist):
						return fmt.Errorf("remove cache database: %w", err)
					}
				}
				if removed == 0 {
					fmt.Fprintf(out, "No cache database at %s\n", cfg.Cache.Path)
					return nil
				}
				fmt.Fprintf(out, "Deleted cache database %s\n", cfg.Cache.Path)
				return nil
			}

			cache, err := songcache.Open(ctx.commandCtx(cmd), cfg, ctx.loggerFor(cmd))
			if err != nil {
				return fmt.Errorf("open song cache: %w", err)
			}
			defer cache.Close()
			n, err := cache.Clear(ctx.commandCtx(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d cached songs (%s backend)\n", n, cfg.Cache.Backend)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "Delete the SQLite cache database file")
	return cmd
}
