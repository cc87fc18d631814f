package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chordstage/internal/chord"
	"chordstage/internal/present"
	"chordstage/internal/sheet"
	"chordstage/internal/verse"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify <song>",
		Short: "Show how every transcript line is classified",
		Args:  cobra.ExactArgs(1),
		RunE: ctx.run(func(cmd *cobra.Command, args []string) error {
			song, _, err := ctx.loadSong(cmd, args[0], nil)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, song)
			}
			rows := make([][]string, 0, len(song.Lines))
			for i, line := range song.Lines {
				rows = append(rows, []string{strconv.Itoa(i), string(line.Type), line.Source()})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title: %s\nArtist: %s\nDirection: %s\n", song.Metadata.Title, song.Metadata.Artist, song.Metadata.Direction)
			if song.Metadata.Credits != "" {
				fmt.Fprintf(out, "Credits: %s\n", song.Metadata.Credits)
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Type", "Text"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the parsed song as JSON")
	return cmd
}

func newSectionsCommand(ctx *commandContext) *cobra.Command {
	var lyrics, asJSON bool
	cmd := &cobra.Command{
		Use:   "sections <song>",
		Short: "Show the display sections of a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: ctx.run(func(cmd *cobra.Command, args []string) error {
			song, _, err := ctx.loadSong(cmd, args[0], nil)
			if err != nil {
				return err
			}
			groups := sheet.GroupIntoSections(song.Lines, !lyrics)
			if asJSON {
				return writeJSON(cmd, groups)
			}
			rows := make([][]string, 0, len(groups))
			for i, group := range groups {
				first := ""
				if len(group) > 0 {
					first = group[0].Source()
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(len(group)), first})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Section", "Lines", "First line"}, rows, []columnAlignment{alignRight, alignRight, alignLeft}))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&lyrics, "lyrics", false, "Group as shown in lyrics mode")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newVersesCommand(ctx *commandContext) *cobra.Command {
	var flags displayFlags
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "verses <song>",
		Short: "Show how a transcript is paged into verses",
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
			song, _, err := ctx.loadSong(cmd, args[0], s.override(&flags))
			if err != nil {
				return err
			}
			verses := s.strategy.Layout(song.Lines, s.lines)
			if asJSON {
				return writeJSON(cmd, struct {
					Strategy      string        `json:"strategy"`
					LinesPerVerse int           `json:"lines_per_verse"`
					ShowChords    bool          `json:"show_chords"`
					Verses        []verse.Range `json:"verses"`
				}{s.strategy.Name(), s.lines, s.showChords, verses})
			}
			rows := make([][]string, 0, len(verses))
			for i, v := range verses {
				window := s.strategy.Window(song.Lines, verses, i, s.lines)
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					fmt.Sprintf("%d-%d", v.Start, v.End),
					strconv.Itoa(v.HighlightStart),
					strconv.Itoa(v.VisibleLineCount),
					strconv.Itoa(len(window.Indices)),
					joinInts(v.Shared),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Strategy: %s, %d lines per verse, chords %s\n", s.strategy.Name(), s.lines, yesNo(s.showChords))
			fmt.Fprintln(out, renderTable(
				[]string{"Verse", "Lines", "Highlight", "Counted", "Shown", "Shared"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		}),
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

type tokenView struct {
	Token     string `json:"token"`
	Valid     bool   `json:"valid"`
	Marker    bool   `json:"marker,omitempty"`
	Root      string `json:"root,omitempty"`
	Modifiers string `json:"modifiers,omitempty"`
	Bass      string `json:"bass,omitempty"`
	Bracketed bool   `json:"bracketed,omitempty"`
	Emphasis  bool   `json:"emphasis,omitempty"`
}

func newTokensCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:         "tokens <token>...",
		Short:       "Check chord tokens against the chord-line vocabulary",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]tokenView, 0, len(args))
			for _, token := range args {
				v := tokenView{Token: token, Valid: chord.IsSystemToken(token), Marker: chord.IsMarker(token)}
				if c, ok := chord.Parse(token); ok {
					v.Root, v.Modifiers, v.Bass = c.RootNote(), c.Modifiers, c.BassNote()
					v.Bracketed, v.Emphasis = c.Bracketed, c.Emphasis
				}
				views = append(views, v)
			}
			if asJSON {
				return writeJSON(cmd, views)
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Token, yesNo(v.Valid), yesNo(v.Marker), v.Root, v.Modifiers, v.Bass})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Token", "Valid", "Marker", "Root", "Modifiers", "Bass"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newTransposeCommand() *cobra.Command {
	var semitones int
	var rtl bool
	cmd := &cobra.Command{
		Use:         "transpose <chord line>",
		Short:       "Transpose a single chord line, keeping its alignment",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			if !chord.IsChordLine(line) {
				return fmt.Errorf("not a chord line: %q", line)
			}
			opts := present.Options{Semitones: semitones, ShowChords: true, Direction: sheet.LTR}
			if rtl {
				opts.Direction = sheet.RTL
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), present.ChordLine(line, opts))
			return err
		},
	}
	cmd.Flags().IntVar(&semitones, "by", 0, "Semitones to transpose by (negative lowers)")
	cmd.Flags().BoolVar(&rtl, "rtl", false, "Mirror the line for a right-to-left song")
	return cmd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
