package verse

// Range is one verse. Start and End are inclusive indices into the original
// line slice. Lines before HighlightStart are context repeated from the
// previous verse; Shared lists the displayed ones.
type Range struct {
	Start            int   `json:"start"`
	End              int   `json:"end"`
	VisibleLineCount int   `json:"visible_line_count"`
	HighlightStart   int   `json:"highlight_start"`
	Shared           []int `json:"shared,omitempty"`
}

// Contains reports whether the line at index first appears in this verse.
func (r Range) Contains(index int) bool {
	return index >= r.HighlightStart && index <= r.End
}

// FindVerseForLine returns the verse in which the line at index first
// appears, or -1 when no verse shows it.
func FindVerseForLine(verses []Range, index int) int {
	for i, r := range verses {
		if r.Contains(index) {
			return i
		}
	}
	return -1
}
