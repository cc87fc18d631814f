package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"chordstage/internal/layout"
	"chordstage/internal/sheet"
)

// Printer writes rendered lines to a terminal. RTL songs are right-aligned
// to Width when Width is positive.
type Printer struct {
	Out       io.Writer
	Direction sheet.Direction
	Width     int

	chords    *color.Color
	cue       *color.Color
	directive *color.Color
	context   *color.Color
	title     *color.Color
}

// NewPrinter builds a printer. Colour escapes are emitted only when colorize
// is true.
func NewPrinter(out io.Writer, direction sheet.Direction, width int, colorize bool) *Printer {
	p := &Printer{
		Out:       out,
		Direction: direction,
		Width:     width,
		chords:    color.New(color.FgCyan, color.Bold),
		cue:       color.New(color.FgYellow),
		directive: color.New(color.FgMagenta, color.Italic),
		context:   color.New(color.Faint),
		title:     color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.chords, p.cue, p.directive, p.context, p.title} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Header prints the song title, artist and credits.
func (p *Printer) Header(meta sheet.Metadata) error {
	heading := meta.Title
	switch {
	case heading == "":
		heading = meta.Artist
	case meta.Artist != "":
		heading += " - " + meta.Artist
	}
	if heading != "" {
		if err := p.println(p.title.Sprint(p.align(heading))); err != nil {
			return err
		}
	}
	if meta.Credits != "" {
		if err := p.println(p.align(meta.Credits)); err != nil {
			return err
		}
	}
	if heading != "" || meta.Credits != "" {
		return p.println("")
	}
	return nil
}

// Line prints one rendered line.
func (p *Printer) Line(r Rendered) error {
	return p.println(p.style(r.Type).Sprint(p.align(r.Text)))
}

// WindowLine prints a verse window line, dimming repeated context.
func (p *Printer) WindowLine(l WindowLine) error {
	if l.Context {
		return p.println(p.context.Sprint(p.align(l.Text)))
	}
	return p.Line(l.Rendered)
}

// Sections prints sections separated by blank lines.
func (p *Printer) Sections(sections [][]Rendered) error {
	for i, section := range sections {
		if i > 0 {
			if err := p.println(""); err != nil {
				return err
			}
		}
		for _, r := range section {
			if err := p.Line(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// Columns prints sections side by side following cols. Each column is
// padded to its widest line; gap spaces separate columns.
func (p *Printer) Columns(sections [][]Rendered, cols layout.Columns, gap int) error {
	type cell struct {
		text  string
		typ   sheet.LineType
		blank bool
	}
	grid := make([][]cell, len(cols.Columns))
	widths := make([]int, len(cols.Columns))
	rows := 0
	for c, members := range cols.Columns {
		for k, idx := range members {
			if k > 0 {
				grid[c] = append(grid[c], cell{blank: true})
			}
			for _, r := range sections[idx] {
				grid[c] = append(grid[c], cell{text: r.Text, typ: r.Type})
				widths[c] = max(widths[c], runewidth.StringWidth(r.Text))
			}
		}
		rows = max(rows, len(grid[c]))
	}

	order := make([]int, len(grid))
	for i := range order {
		order[i] = i
	}
	if p.Direction == sheet.RTL {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	for row := 0; row < rows; row++ {
		var b strings.Builder
		for n, c := range order {
			if n > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			text, typ := "", sheet.LineEmpty
			if row < len(grid[c]) && !grid[c][row].blank {
				text, typ = grid[c][row].text, grid[c][row].typ
			}
			padded := runewidth.FillRight(text, widths[c])
			if p.Direction == sheet.RTL {
				padded = runewidth.FillLeft(text, widths[c])
			}
			b.WriteString(p.style(typ).Sprint(padded))
		}
		if _, err := fmt.Fprintln(p.Out, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// SectionSizes measures sections in terminal cells for layout.PackColumns.
func SectionSizes(sections [][]Rendered) []layout.Size {
	sizes := make([]layout.Size, len(sections))
	for i, section := range sections {
		width := 0
		for _, r := range section {
			width = max(width, runewidth.StringWidth(r.Text))
		}
		sizes[i] = layout.Size{Width: float64(width), Height: float64(len(section))}
	}
	return sizes
}

func (p *Printer) style(typ sheet.LineType) *color.Color {
	switch typ {
	case sheet.LineChords:
		return p.chords
	case sheet.LineCue:
		return p.cue
	case sheet.LineDirective:
		return p.directive
	default:
		return noStyle
	}
}

var noStyle = func() *color.Color {
	c := color.New()
	c.DisableColor()
	return c
}()

func (p *Printer) align(text string) string {
	if p.Direction != sheet.RTL || p.Width <= 0 {
		return text
	}
	return runewidth.FillLeft(text, p.Width)
}

func (p *Printer) println(text string) error {
	_, err := fmt.Fprintln(p.Out, strings.TrimRight(text, " "))
	return err
}
