package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chordstage/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create, check and print the configuration",
	}
	cmd.AddCommand(
		newConfigInitCommand(),
		newConfigValidateCommand(ctx),
		newConfigShowCommand(ctx),
	)
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		targetPath string
		overwrite  bool
		toStdout   bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the annotated sample configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if toStdout {
				_, err := io.WriteString(out, config.Sample())
				return err
			}

			target, err := initTarget(targetPath)
			if err != nil {
				return err
			}
			if fileExists(target) && !overwrite {
				return fmt.Errorf("%s already exists; pass --overwrite to replace it", target)
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Point paths.library_dir at your transcripts to render songs by name.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Where to write the file (default ~/.config/chordstage/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	cmd.Flags().BoolVar(&toStdout, "print", false, "Print the sample to stdout instead of writing it")
	return cmd
}

// initTarget expands the --path flag, falling back to the per-user location.
func initTarget(flag string) (string, error) {
	if flag = strings.TrimSpace(flag); flag == "" {
		target, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("default config path: %w", err)
		}
		return target, nil
	}
	target, err := config.ExpandPath(flag)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", flag, err)
	}
	return target, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and summarise the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			source := ctx.configPath
			if !ctx.configExists {
				source += " (not found, defaults used)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderTable(
				[]string{"Setting", "Value"},
				configSummary(cfg, source),
				[]columnAlignment{alignLeft, alignLeft},
			))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func configSummary(cfg *config.Config, source string) [][]string {
	library := cfg.Paths.LibraryDir
	if library == "" {
		library = "(unset)"
	} else if info, err := os.Stat(library); err != nil || !info.IsDir() {
		library += " (missing)"
	}

	verses := strconv.Itoa(cfg.Display.LinesPerVerse) + " lines, " + cfg.Display.VerseStrategy
	if cfg.Display.VerseStrategy == config.StrategyOverlap {
		verses += fmt.Sprintf(" (%d shared)", cfg.Display.OverlapLines)
	}

	cache := "disabled"
	if cfg.Cache.Enabled {
		switch cfg.Cache.Backend {
		case config.CacheBackendSQLite:
			cache = "sqlite " + cfg.Cache.Path
		case config.CacheBackendRedis:
			cache = fmt.Sprintf("redis %s/%d", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
		default:
			cache = cfg.Cache.Backend
		}
	}

	return [][]string{
		{"Config file", source},
		{"Library", library},
		{"Verses", verses},
		{"Chords", yesNo(cfg.Display.ShowChords)},
		{"Direction", cfg.Display.Direction},
		{"Cache", cache},
		{"Logs", cfg.Paths.LogDir + " (" + cfg.Logging.Level + ")"},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			redacted := cfg.Redacted()
			data, err := redacted.Encode()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# effective configuration from %s\n", ctx.configPath)
			_, err = out.Write(data)
			return err
		},
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
