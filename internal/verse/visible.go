package verse

import "chordstage/internal/sheet"

// Visibility reports, per line, whether the line is displayed. With chords
// shown every line is displayed. Without chords, chord and directive lines
// are hidden, blank lines before the first lyric or cue are dropped and a
// run of blank lines collapses to its first member. Hidden lines do not
// break a run of blank lines.
func Visibility(lines []sheet.Line, showChords bool) []bool {
	shown := make([]bool, len(lines))
	if showChords {
		for i := range shown {
			shown[i] = true
		}
		return shown
	}

	seenText := false
	prevEmpty := false
	for i, line := range lines {
		switch {
		case line.Type.ChordsOnly():
		case line.Type == sheet.LineEmpty:
			shown[i] = seenText && !prevEmpty
			prevEmpty = true
		default:
			shown[i] = true
			seenText = true
			prevEmpty = false
		}
	}
	return shown
}

// VisibleIndices returns the displayed line indices of r in order.
func VisibleIndices(lines []sheet.Line, r Range, showChords bool) []int {
	return visibleIn(Visibility(lines, showChords), r)
}

func visibleIn(shown []bool, r Range) []int {
	var out []int
	for i := max(r.Start, 0); i <= r.End && i < len(shown); i++ {
		if shown[i] {
			out = append(out, i)
		}
	}
	return out
}

// countedMask marks the lines that consume the per-verse budget.
func countedMask(lines []sheet.Line, showChords bool) []bool {
	if !showChords {
		return Visibility(lines, false)
	}
	counted := make([]bool, len(lines))
	for i, line := range lines {
		counted[i] = !line.Type.ChordsOnly()
	}
	return counted
}
