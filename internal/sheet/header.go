package sheet

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// rtlThreshold is the number of Hebrew-block runes above which a song is
// laid out right to left.
const rtlThreshold = 10

// creditKeywords open a credits line in the transcript header.
var creditKeywords = []string{
	"מילים ולחן",
	"מילים",
	"לחן",
	"עיבוד",
	"lyrics and music",
	"words and music",
	"lyrics",
	"music",
	"words",
	"arrangement",
}

// DetectDirection counts runes in the Hebrew block and reports RTL when
// there are more than ten of them.
func DetectDirection(text string) Direction {
	count := 0
	for _, r := range text {
		if r >= 0x0590 && r <= 0x05FF {
			count++
			if count > rtlThreshold {
				return RTL
			}
		}
	}
	return LTR
}

// creditSeparators may follow a credit keyword.
var creditSeparators = []string{":", "-", "–", "by "}

// IsCreditLine reports whether line is a credit such as "Lyrics: X",
// "Music by X" or "מילים ולחן: X". The keyword must stand alone or be
// followed by a separator, so a lyric that merely opens with "Music" is not
// a credit. Matching ignores case.
func IsCreditLine(line string) bool {
	folded := cases.Fold().String(strings.TrimSpace(StripBidi(line)))
	if folded == "" {
		return false
	}
	for _, keyword := range creditKeywords {
		rest, ok := strings.CutPrefix(folded, keyword)
		if !ok {
			continue
		}
		if rest == "" {
			return true
		}
		if next, _ := utf8.DecodeRuneInString(rest); !unicode.IsSpace(next) && next != ':' {
			continue
		}
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return true
		}
		for _, sep := range creditSeparators {
			if strings.HasPrefix(rest, sep) {
				return true
			}
		}
	}
	return false
}

// splitTitle splits a "Title - Artist" header line.
func splitTitle(line string) (title, artist string, ok bool) {
	line = strings.TrimSpace(StripBidi(line))
	title, artist, ok = strings.Cut(line, " - ")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(title), strings.TrimSpace(artist), true
}

// parseHeader reads the optional title line and the credit lines that follow
// it. It returns the metadata found and the index of the first body line.
// A single blank line closing the header is consumed; any other line ends
// the header and belongs to the body.
func parseHeader(lines []string) (Metadata, int) {
	var meta Metadata
	i := 0
	if len(lines) > 0 && ClassifyLine(lines[0]) == LineLyric && !IsCreditLine(lines[0]) {
		if title, artist, ok := splitTitle(lines[0]); ok {
			meta.Title = title
			meta.Artist = artist
			i = 1
		}
	}

	var credits []string
	for i < len(lines) && IsCreditLine(lines[i]) {
		credits = append(credits, strings.TrimSpace(StripBidi(lines[i])))
		i++
	}
	meta.Credits = strings.Join(credits, " | ")

	if i > 0 && i < len(lines) && ClassifyLine(lines[i]) == LineEmpty {
		i++
	}
	return meta, i
}
