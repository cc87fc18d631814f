package sheet

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts line endings to \n and composes the text to NFC so
// that visually identical transcripts classify identically.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}

// Parse classifies every line of a transcript and derives its metadata.
// Non-empty fields of override replace the values read from the header. An
// override direction other than ltr or rtl is ignored and the direction is
// detected from the text.
func Parse(text string, override *Metadata) Song {
	text = Normalize(text)
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	meta, start := parseHeader(lines)
	body := make([]Line, 0, len(lines)-start)
	for _, raw := range lines[start:] {
		body = append(body, ParseLine(raw))
	}

	meta.Direction = DetectDirection(text)
	return Song{Metadata: meta, Lines: body}.WithOverride(override)
}

// WithOverride returns a copy of s whose metadata carries the non-empty
// fields of override. A nil override returns s unchanged.
func (s Song) WithOverride(override *Metadata) Song {
	if override != nil {
		applyOverride(&s.Metadata, override)
	}
	return s
}

// ParseLine classifies a single line and extracts its display text.
func ParseLine(raw string) Line {
	clean := StripBidi(raw)
	typ := ClassifyLine(clean)
	switch typ {
	case LineEmpty:
		return Line{Type: typ}
	case LineDirective:
		return Line{Type: typ, Text: DirectiveText(clean)}
	case LineCue:
		return Line{Type: typ, Text: CueText(clean)}
	case LineChords:
		return Line{Type: typ, Text: strings.TrimSpace(clean), Raw: strings.TrimRight(clean, " \t")}
	default:
		return Line{Type: typ, Text: strings.TrimRight(clean, " \t")}
	}
}

func applyOverride(meta *Metadata, override *Metadata) {
	if v := strings.TrimSpace(override.Title); v != "" {
		meta.Title = v
	}
	if v := strings.TrimSpace(override.Artist); v != "" {
		meta.Artist = v
	}
	if v := strings.TrimSpace(override.Credits); v != "" {
		meta.Credits = v
	}
	if dir, ok := ParseDirection(strings.ToLower(strings.TrimSpace(string(override.Direction)))); ok {
		meta.Direction = dir
	}
}
