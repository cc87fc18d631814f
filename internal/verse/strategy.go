package verse

import (
	"errors"
	"fmt"

	"chordstage/internal/sheet"
)

const (
	StrategyPaged   = "paged"
	StrategyOverlap = "overlap"
)

// ErrUnknownStrategy is returned by NewStrategy for an unrecognised name.
var ErrUnknownStrategy = errors.New("unknown verse strategy")

// Strategy lays out verses and builds the window shown for each of them.
type Strategy interface {
	Name() string
	Layout(lines []sheet.Line, n int) []Range
	Window(lines []sheet.Line, verses []Range, i, n int) Window
}

// NewStrategy returns the strategy registered under name.
func NewStrategy(name string, showChords bool, overlap int) (Strategy, error) {
	switch name {
	case StrategyPaged, "":
		return PagedStrategy{ShowChords: showChords}, nil
	case StrategyOverlap:
		return OverlapStrategy{ShowChords: showChords, Overlap: overlap}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// PagedStrategy shows disjoint verses. In lyrics mode the short final verse
// is padded from the previous one.
type PagedStrategy struct {
	ShowChords bool
}

func (PagedStrategy) Name() string { return StrategyPaged }

func (s PagedStrategy) Layout(lines []sheet.Line, n int) []Range {
	if s.ShowChords {
		return Calculate(lines, n)
	}
	return CalculateLyricsMode(lines, n)
}

func (s PagedStrategy) Window(lines []sheet.Line, verses []Range, i, n int) Window {
	if s.ShowChords {
		return plainWindow(lines, verses, i, true)
	}
	return PaddedWindow(lines, verses, i, n)
}

// OverlapStrategy repeats the last Overlap counted lines of each verse at
// the top of the next one. Chord and directive lines directly above the
// first repeated line are carried along. The first verse holds n counted
// lines and every later verse adds n-Overlap new ones.
type OverlapStrategy struct {
	ShowChords bool
	Overlap    int
}

func (OverlapStrategy) Name() string { return StrategyOverlap }

func (s OverlapStrategy) Layout(lines []sheet.Line, n int) []Range {
	if n <= 0 {
		return nil
	}
	k := min(max(s.Overlap, 0), n-1)
	base := partition(lines, n, n-k, s.ShowChords)
	if k == 0 || len(base) < 2 {
		return base
	}

	shown := Visibility(lines, s.ShowChords)
	counted := countedMask(lines, s.ShowChords)
	out := make([]Range, len(base))
	out[0] = base[0]
	for j := 1; j < len(base); j++ {
		prev, r := out[j-1], base[j]
		tail := 0
		start := r.Start
		for idx := prev.End; idx >= prev.Start && tail < k; idx-- {
			if counted[idx] {
				start = idx
				tail++
			}
		}
		if tail == 0 {
			out[j] = r
			continue
		}
		for start > prev.Start && shown[start-1] && !counted[start-1] {
			start--
		}
		var shared []int
		for idx := start; idx < r.Start; idx++ {
			if shown[idx] {
				shared = append(shared, idx)
			}
		}
		out[j] = Range{
			Start:            start,
			End:              r.End,
			VisibleLineCount: r.VisibleLineCount + tail,
			HighlightStart:   r.Start,
			Shared:           shared,
		}
	}
	return out
}

func (s OverlapStrategy) Window(lines []sheet.Line, verses []Range, i, _ int) Window {
	return plainWindow(lines, verses, i, s.ShowChords)
}
