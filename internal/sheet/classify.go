package sheet

import (
	"strings"
	"unicode"

	"chordstage/internal/chord"
)

// StripBidi removes invisible bidirectional control characters such as LRM
// and RLM, which editors insert into mixed Hebrew and Latin text.
func StripBidi(s string) string {
	if !strings.ContainsFunc(s, isBidiControl) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isBidiControl(r) {
			return -1
		}
		return r
	}, s)
}

func isBidiControl(r rune) bool {
	return unicode.Is(unicode.Bidi_Control, r)
}

// ClassifyLine decides the type of a raw transcript line.
func ClassifyLine(raw string) LineType {
	line := strings.TrimSpace(StripBidi(raw))
	switch {
	case line == "":
		return LineEmpty
	case wrappedIn(line, '{', '}'):
		return LineDirective
	case wrappedIn(line, '[', ']') && !bracketHoldsChords(line):
		return LineCue
	case chord.IsChordLine(line):
		return LineChords
	default:
		return LineLyric
	}
}

// DirectiveText returns the annotation inside a {...} line.
func DirectiveText(raw string) string {
	return unwrap(raw, '{', '}')
}

// CueText returns the label inside a [...] line.
func CueText(raw string) string {
	return unwrap(raw, '[', ']')
}

func unwrap(raw string, left, right byte) string {
	line := strings.TrimSpace(StripBidi(raw))
	if wrappedIn(line, left, right) {
		line = line[1 : len(line)-1]
	}
	return strings.TrimSpace(line)
}

func wrappedIn(line string, left, right byte) bool {
	return len(line) >= 2 && line[0] == left && line[len(line)-1] == right
}

// bracketHoldsChords reports whether a [...] line is chord notation rather
// than a cue: either the interior is a single chord ([Am], [/F]) or every
// token of the line is already chord vocabulary ([G] [D], []).
func bracketHoldsChords(line string) bool {
	interior := strings.TrimSpace(line[1 : len(line)-1])
	if _, ok := chord.Parse(interior); ok {
		return true
	}
	return chord.IsChordLine(line)
}
