package chord

import "strings"

// DiminishedGlyph replaces the letter o in rendered chord lines.
const DiminishedGlyph = "°"

// FormatForDisplay substitutes the diminished glyph for every o in line.
// It must run after transposition, which only understands the letter form.
func FormatForDisplay(line string) string {
	return strings.ReplaceAll(line, "o", DiminishedGlyph)
}
