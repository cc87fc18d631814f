package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chordstage/internal/layout"
	"chordstage/internal/logging"
	"chordstage/internal/present"
	"chordstage/internal/sheet"
	"chordstage/internal/verse"
)

const (
	columnGap = 4
	// headerRows is the space the song header takes above the columns.
	headerRows = 3
	// fallbackWidth and fallbackHeight size --columns auto when stdout is not a terminal.
	fallbackWidth  = 120
	fallbackHeight = 40
)

var errColumnsDoNotFit = errors.New("sections do not fit the terminal")

type renderTarget struct {
	verse   int
	columns string
	json    bool
}

type songView struct {
	Path       string               `json:"path"`
	Metadata   sheet.Metadata       `json:"metadata"`
	Transpose  int                  `json:"transpose"`
	ShowChords bool                 `json:"show_chords"`
	Sections   [][]present.Rendered `json:"sections,omitempty"`
	Columns    [][]int              `json:"columns,omitempty"`
	Verse      *verseView           `json:"verse,omitempty"`
}

type verseView struct {
	Number   int                  `json:"number"`
	Total    int                  `json:"total"`
	Strategy string               `json:"strategy"`
	Range    verse.Range          `json:"range"`
	Lines    []present.WindowLine `json:"lines"`
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var flags displayFlags
	var target renderTarget

	cmd := &cobra.Command{
		Use:   "render <song>",
		Short: "Render a transcript, optionally transposed or as a single verse",
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
			song, path, err := ctx.loadSong(cmd, args[0], s.override(&flags))
			if err != nil {
				return err
			}
			return renderSong(cmd, ctx, song, path, s, target)
		}),
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&target.verse, "verse", 0, "Render only this verse (1-based)")
	cmd.Flags().StringVar(&target.columns, "columns", "", "Lay sections out in columns: auto or a column count")
	cmd.Flags().BoolVar(&target.json, "json", false, "Output as JSON")
	return cmd
}

func renderSong(cmd *cobra.Command, ctx *commandContext, song sheet.Song, path string, s settings, target renderTarget) error {
	opts := s.options(song)
	view := songView{
		Path:       path,
		Metadata:   song.Metadata,
		Transpose:  s.semitones,
		ShowChords: s.showChords,
	}
	if target.verse < 0 {
		return fmt.Errorf("--verse must be positive")
	}
	if target.verse > 0 {
		return renderVerse(cmd, ctx, song, s, target, view)
	}

	out := cmd.OutOrStdout()
	sections := present.Sections(song, opts)
	width, height, tty := terminalSize(out)

	var cols layout.Columns
	useColumns := false
	if target.columns != "" {
		if !tty {
			width, height = fallbackWidth, fallbackHeight
		}
		var err error
		cols, err = packSections(sections, target.columns, width, height-headerRows)
		switch {
		case errors.Is(err, errColumnsDoNotFit):
			logging.Warn(ctx.loggerFor(cmd), "column layout does not fit", logging.Event{
				Type:   "columns_do_not_fit",
				Hint:   "enlarge the terminal or pass an explicit column count",
				Impact: "song printed as a single column",
			}, logging.Int("width", width), logging.Int("height", height))
		case err != nil:
			return err
		default:
			useColumns = true
		}
	}

	if target.json {
		view.Sections = sections
		if useColumns {
			view.Columns = cols.Columns
		}
		return writeJSON(cmd, view)
	}

	printer := present.NewPrinter(out, song.Metadata.Direction, width, ctx.colorize(out))
	if err := printer.Header(song.Metadata); err != nil {
		return err
	}
	if useColumns {
		return printer.Columns(sections, cols, columnGap)
	}
	return printer.Sections(sections)
}

func renderVerse(cmd *cobra.Command, ctx *commandContext, song sheet.Song, s settings, target renderTarget, view songView) error {
	verses := s.strategy.Layout(song.Lines, s.lines)
	if len(verses) == 0 {
		return fmt.Errorf("song has no verses")
	}
	if target.verse > len(verses) {
		return fmt.Errorf("verse %d out of range (song has %d verses)", target.verse, len(verses))
	}
	i := target.verse - 1
	window := s.strategy.Window(song.Lines, verses, i, s.lines)
	lines := present.Window(song, window, s.options(song))

	if target.json {
		view.Verse = &verseView{
			Number:   target.verse,
			Total:    len(verses),
			Strategy: s.strategy.Name(),
			Range:    verses[i],
			Lines:    lines,
		}
		return writeJSON(cmd, view)
	}

	out := cmd.OutOrStdout()
	width, _, _ := terminalSize(out)
	printer := present.NewPrinter(out, song.Metadata.Direction, width, ctx.colorize(out))
	if err := printer.Header(song.Metadata); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Verse %d/%d\n", target.verse, len(verses)); err != nil {
		return err
	}
	for _, line := range lines {
		if err := printer.WindowLine(line); err != nil {
			return err
		}
	}
	return nil
}

// packSections places sections into columns. "auto" packs into the given
// terminal box; a number asks for at most that many columns.
func packSections(sections [][]present.Rendered, mode string, width, height int) (layout.Columns, error) {
	sizes := present.SectionSizes(sections)
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "auto" {
		// Sections in a column are one row apart while columns are columnGap
		// cells apart; widening every block by the difference lets a single
		// gap value describe both.
		widened := make([]layout.Size, len(sizes))
		for i, s := range sizes {
			widened[i] = layout.Size{Width: s.Width + columnGap - 1, Height: s.Height}
		}
		box := layout.Size{Width: float64(width + columnGap - 1), Height: float64(height)}
		cols, ok := layout.PackColumns(widened, box, 1)
		if !ok {
			return layout.Columns{}, errColumnsDoNotFit
		}
		return cols, nil
	}

	n, err := strconv.Atoi(mode)
	if err != nil || n < 1 {
		return layout.Columns{}, fmt.Errorf("--columns: want auto or a positive count, got %q", mode)
	}
	return packIntoColumns(sizes, n), nil
}

// packIntoColumns finds the shortest column height that keeps the sections
// within n columns.
func packIntoColumns(sizes []layout.Size, n int) layout.Columns {
	var tallest, total float64
	for _, s := range sizes {
		tallest = max(tallest, s.Height)
		total += s.Height + 1
	}
	for h := tallest; ; h++ {
		cols, _ := layout.PackColumns(sizes, layout.Size{Width: math.Inf(1), Height: h}, 1)
		if len(cols.Columns) <= n || h >= total {
			return cols
		}
	}
}
