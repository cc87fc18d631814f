package sheet

// LineType classifies a transcript line. A line's type never changes once
// decided.
type LineType string

const (
	LineDirective LineType = "directive"
	LineCue       LineType = "cue"
	LineChords    LineType = "chords"
	LineLyric     LineType = "lyric"
	LineEmpty     LineType = "empty"
)

// ChordsOnly reports whether lines of this type are shown only when chords
// are displayed.
func (t LineType) ChordsOnly() bool {
	return t == LineChords || t == LineDirective
}

// Line is one classified transcript line. Raw is set for chord lines and
// keeps the original spacing; Text is the cleaned form used for display.
type Line struct {
	Type LineType `json:"type" msgpack:"type"`
	Text string   `json:"text" msgpack:"text"`
	Raw  string   `json:"raw,omitempty" msgpack:"raw,omitempty"`
}

// Source returns the text a renderer should start from: Raw for chord
// lines, Text otherwise.
func (l Line) Source() string {
	if l.Type == LineChords && l.Raw != "" {
		return l.Raw
	}
	return l.Text
}

// Direction is the paragraph direction of a song.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// ParseDirection maps a user supplied value onto a Direction. Anything other
// than ltr or rtl is reported as not ok.
func ParseDirection(value string) (Direction, bool) {
	switch Direction(value) {
	case LTR:
		return LTR, true
	case RTL:
		return RTL, true
	default:
		return "", false
	}
}

// Metadata is derived once from the transcript header.
type Metadata struct {
	Title     string    `json:"title" msgpack:"title"`
	Artist    string    `json:"artist" msgpack:"artist"`
	Credits   string    `json:"credits,omitempty" msgpack:"credits,omitempty"`
	Direction Direction `json:"direction" msgpack:"direction"`
}

// Song is a parsed transcript.
type Song struct {
	Metadata Metadata `json:"metadata" msgpack:"metadata"`
	Lines    []Line   `json:"lines" msgpack:"lines"`
}
