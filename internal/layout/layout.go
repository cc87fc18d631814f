package layout

import "math"

// Size is a width and height in the caller's units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Fits reports whether s fits inside box.
func (s Size) Fits(box Size) bool {
	return s.Width <= box.Width && s.Height <= box.Height
}

// Measure reports the extent of the caller's content at a font size.
type Measure func(fontSize float64) Size

// FitFontSize returns the largest size in {min, min+step, ..., max} whose
// measured content fits box. Measure must grow monotonically with the font
// size. When even min does not fit, min is returned with ok false.
func FitFontSize(box Size, minSize, maxSize, step float64, measure Measure) (size float64, ok bool) {
	if measure == nil {
		return minSize, false
	}
	if step <= 0 || maxSize <= minSize {
		return minSize, measure(minSize).Fits(box)
	}
	if !measure(minSize).Fits(box) {
		return minSize, false
	}

	lo, hi := 0, int(math.Floor((maxSize-minSize)/step+1e-9))
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(minSize + float64(mid)*step).Fits(box) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return minSize + float64(lo)*step, true
}

// Columns is the result of PackColumns. Each column lists block indices in
// their original order.
type Columns struct {
	Columns [][]int `json:"columns"`
	Size    Size    `json:"size"`
}

// PackColumns flows blocks top to bottom into as few columns as possible
// without exceeding the box height, keeping the block order. gap separates
// blocks vertically and columns horizontally. ok is false when a block is
// taller than the box or the columns are wider than it together.
func PackColumns(blocks []Size, box Size, gap float64) (Columns, bool) {
	var out Columns
	if len(blocks) == 0 {
		return out, true
	}

	ok := true
	var current []int
	var colWidth, colHeight float64
	flush := func() {
		if len(current) == 0 {
			return
		}
		if len(out.Columns) > 0 {
			out.Size.Width += gap
		}
		out.Columns = append(out.Columns, current)
		out.Size.Width += colWidth
		out.Size.Height = max(out.Size.Height, colHeight)
		current, colWidth, colHeight = nil, 0, 0
	}

	for i, b := range blocks {
		if b.Height > box.Height {
			ok = false
		}
		next := colHeight + b.Height
		if len(current) > 0 {
			next += gap
		}
		if len(current) > 0 && next > box.Height {
			flush()
			next = b.Height
		}
		current = append(current, i)
		colHeight = next
		colWidth = max(colWidth, b.Width)
	}
	flush()

	if out.Size.Width > box.Width {
		ok = false
	}
	return out, ok
}

// Monospace converts character-cell extents to box units for a font size.
// Advance and LineHeight are multiples of the font size.
type Monospace struct {
	Advance    float64
	LineHeight float64
}

// DefaultMonospace approximates common monospaced fonts.
var DefaultMonospace = Monospace{Advance: 0.6, LineHeight: 1.2}

// Size returns the extent of a block of cols by rows cells.
func (m Monospace) Size(cols, rows int, fontSize float64) Size {
	return Size{
		Width:  float64(cols) * m.Advance * fontSize,
		Height: float64(rows) * m.LineHeight * fontSize,
	}
}
