package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chordstage/internal/config"
	"chordstage/internal/present"
	"chordstage/internal/sheet"
	"chordstage/internal/verse"
)

// displayFlags are the rendering switches shared by render, verses and watch.
// Zero values fall back to the configuration.
type displayFlags struct {
	transpose int
	lyrics    bool
	chords    bool
	direction string
	lines     int
	strategy  string
	overlap   int
	title     string
	artist    string
}

func (f *displayFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.transpose, "transpose", "t", 0, "Semitones to transpose chord lines by")
	flags.BoolVar(&f.lyrics, "lyrics", false, "Hide chord lines and directives")
	flags.BoolVar(&f.chords, "chords", false, "Show chord lines even when the config hides them")
	flags.StringVar(&f.direction, "direction", "", "Paragraph direction: auto, ltr or rtl")
	flags.IntVar(&f.lines, "lines", 0, "Visible lines per verse")
	flags.StringVar(&f.strategy, "strategy", "", "Verse layout: paged or overlap")
	flags.IntVar(&f.overlap, "overlap", -1, "Lines repeated between verses with the overlap strategy")
	flags.StringVar(&f.title, "title", "", "Override the song title")
	flags.StringVar(&f.artist, "artist", "", "Override the artist")
}

// settings is the resolved view of displayFlags over a config.
type settings struct {
	semitones  int
	showChords bool
	direction  string
	lines      int
	strategy   verse.Strategy
}

func (f *displayFlags) resolve(cfg *config.Config) (settings, error) {
	s := settings{
		semitones:  f.transpose,
		showChords: cfg.Display.ShowChords,
		direction:  cfg.Display.Direction,
		lines:      cfg.Display.LinesPerVerse,
	}
	switch {
	case f.lyrics && f.chords:
		return settings{}, fmt.Errorf("--lyrics and --chords are mutually exclusive")
	case f.lyrics:
		s.showChords = false
	case f.chords:
		s.showChords = true
	}
	if d := strings.ToLower(strings.TrimSpace(f.direction)); d != "" {
		switch d {
		case config.DirectionAuto, config.DirectionLTR, config.DirectionRTL:
			s.direction = d
		default:
			return settings{}, fmt.Errorf("--direction: unsupported value %q (want auto, ltr or rtl)", f.direction)
		}
	}
	if f.lines < 0 {
		return settings{}, fmt.Errorf("--lines must be positive")
	}
	if f.lines > 0 {
		s.lines = f.lines
	}
	name := cfg.Display.VerseStrategy
	if f.strategy != "" {
		name = strings.ToLower(strings.TrimSpace(f.strategy))
	}
	overlap := cfg.Display.OverlapLines
	if f.overlap >= 0 {
		overlap = f.overlap
	}
	strategy, err := verse.NewStrategy(name, s.showChords, overlap)
	if err != nil {
		return settings{}, err
	}
	s.strategy = strategy
	return s, nil
}

// override builds the metadata override from flags. A fixed direction
// replaces the detected one.
func (s settings) override(f *displayFlags) *sheet.Metadata {
	meta := &sheet.Metadata{Title: f.title, Artist: f.artist}
	if s.direction != config.DirectionAuto {
		meta.Direction = sheet.Direction(s.direction)
	}
	return meta
}

func (s settings) options(song sheet.Song) present.Options {
	return present.Options{
		Semitones:  s.semitones,
		ShowChords: s.showChords,
		Direction:  song.Metadata.Direction,
	}
}
