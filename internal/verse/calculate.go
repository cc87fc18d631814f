package verse

import "chordstage/internal/sheet"

// Calculate partitions lines into verses of n counted lines for chord-sheet
// display. Lyric, cue and empty lines count; chord and directive lines
// belong to the verse of the next counted line, or to the last verse when
// nothing follows them. The final verse may be short.
func Calculate(lines []sheet.Line, n int) []Range {
	return partition(lines, n, n, true)
}

// CalculateLyricsMode partitions lines for lyrics-only display. Only
// displayed lines count (see Visibility). A blank line that would open a
// verse is appended to the previous verse instead. The short final verse is
// left as is; PaddedWindow fills it at display time.
func CalculateLyricsMode(lines []sheet.Line, n int) []Range {
	return partition(lines, n, n, false)
}

// partition closes the first verse after first counted lines and every
// later verse after rest counted lines.
func partition(lines []sheet.Line, first, rest int, showChords bool) []Range {
	if first <= 0 || rest <= 0 || len(lines) == 0 {
		return nil
	}
	counted := countedMask(lines, showChords)

	var verses []Range
	budget := first
	start, count := -1, 0
	for i, line := range lines {
		if !counted[i] {
			if start < 0 && line.Type.ChordsOnly() {
				start = i
			}
			continue
		}
		if !showChords && line.Type == sheet.LineEmpty && count == 0 && len(verses) > 0 {
			last := &verses[len(verses)-1]
			last.End = i
			last.VisibleLineCount++
			start = -1
			continue
		}
		if start < 0 {
			start = i
		}
		count++
		if count == budget {
			verses = append(verses, Range{Start: start, End: i, VisibleLineCount: count, HighlightStart: start})
			start, count, budget = -1, 0, rest
		}
	}

	last := len(lines) - 1
	switch {
	case count > 0:
		verses = append(verses, Range{Start: start, End: last, VisibleLineCount: count, HighlightStart: start})
	case len(verses) > 0:
		verses[len(verses)-1].End = last
	case start >= 0 && showChords:
		verses = append(verses, Range{Start: start, End: last, HighlightStart: start})
	}
	return verses
}
