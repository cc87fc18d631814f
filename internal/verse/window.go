package verse

import "chordstage/internal/sheet"

// Window is the set of lines displayed for one verse. Lines before
// HighlightStart are context from the previous verse rather than new
// material.
type Window struct {
	Verse          int   `json:"verse"`
	Indices        []int `json:"indices"`
	Borrowed       []int `json:"borrowed,omitempty"`
	HighlightStart int   `json:"highlight_start"`
}

// IsContext reports whether the line at index is repeated context.
func (w Window) IsContext(index int) bool {
	return index < w.HighlightStart
}

// PaddedWindow returns the lyrics-mode window for verse i. When the final
// verse holds fewer than n lines, the missing lines are borrowed from the
// end of the previous verse's displayed lines so every screen shows a full
// window.
func PaddedWindow(lines []sheet.Line, verses []Range, i, n int) Window {
	if i < 0 || i >= len(verses) {
		return Window{Verse: -1}
	}
	shown := Visibility(lines, false)
	r := verses[i]
	w := Window{Verse: i, Indices: visibleIn(shown, r), HighlightStart: r.HighlightStart}
	if i == 0 || i != len(verses)-1 || r.VisibleLineCount >= n {
		return w
	}

	prev := visibleIn(shown, verses[i-1])
	need := min(n-r.VisibleLineCount, len(prev))
	if need <= 0 {
		return w
	}
	w.Borrowed = append([]int(nil), prev[len(prev)-need:]...)
	w.Indices = append(append([]int(nil), w.Borrowed...), w.Indices...)
	return w
}

// plainWindow shows the displayed lines of verse i without padding.
func plainWindow(lines []sheet.Line, verses []Range, i int, showChords bool) Window {
	if i < 0 || i >= len(verses) {
		return Window{Verse: -1}
	}
	r := verses[i]
	return Window{
		Verse:          i,
		Indices:        VisibleIndices(lines, r, showChords),
		HighlightStart: r.HighlightStart,
	}
}
