package present

import (
	"chordstage/internal/chord"
	"chordstage/internal/sheet"
	"chordstage/internal/verse"
)

// Options control how lines are rendered.
type Options struct {
	Semitones  int
	ShowChords bool
	Direction  sheet.Direction
}

// Rendered is one display-ready line.
type Rendered struct {
	Type sheet.LineType `json:"type"`
	Text string         `json:"text"`
}

// WindowLine is a rendered line of a verse window.
type WindowLine struct {
	Rendered
	Index   int  `json:"index"`
	Context bool `json:"context,omitempty"`
}

// Line renders a single line. The second result is false when the line is
// hidden under opts.
func Line(line sheet.Line, opts Options) (string, bool) {
	switch line.Type {
	case sheet.LineChords:
		if !opts.ShowChords {
			return "", false
		}
		return ChordLine(line.Source(), opts), true
	case sheet.LineDirective:
		if !opts.ShowChords {
			return "", false
		}
		return line.Text, true
	case sheet.LineEmpty:
		return "", true
	default:
		return line.Text, true
	}
}

// ChordLine renders a raw chord line.
func ChordLine(raw string, opts Options) string {
	out := chord.TransposeLine(raw, opts.Semitones)
	if opts.Direction == sheet.RTL {
		out = chord.ReverseLineForRTL(out)
	}
	return chord.FormatForDisplay(out)
}

// Lines renders every visible line of song in order.
func Lines(song sheet.Song, opts Options) []Rendered {
	out := make([]Rendered, 0, len(song.Lines))
	for _, line := range song.Lines {
		if text, ok := Line(line, opts); ok {
			out = append(out, Rendered{Type: line.Type, Text: text})
		}
	}
	return out
}

// Sections groups song into display sections and renders them.
func Sections(song sheet.Song, opts Options) [][]Rendered {
	groups := sheet.GroupIntoSections(song.Lines, opts.ShowChords)
	out := make([][]Rendered, 0, len(groups))
	for _, group := range groups {
		section := make([]Rendered, 0, len(group))
		for _, line := range group {
			if text, ok := Line(line, opts); ok {
				section = append(section, Rendered{Type: line.Type, Text: text})
			}
		}
		out = append(out, section)
	}
	return out
}

// Window renders the lines of a verse window. Lines repeated from the
// previous verse are flagged as context.
func Window(song sheet.Song, w verse.Window, opts Options) []WindowLine {
	out := make([]WindowLine, 0, len(w.Indices))
	for _, idx := range w.Indices {
		if idx < 0 || idx >= len(song.Lines) {
			continue
		}
		line := song.Lines[idx]
		text, ok := Line(line, opts)
		if !ok {
			continue
		}
		out = append(out, WindowLine{
			Rendered: Rendered{Type: line.Type, Text: text},
			Index:    idx,
			Context:  w.IsContext(idx),
		})
	}
	return out
}
