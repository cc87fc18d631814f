package chord

import (
	"strings"
	"unicode"
)

// Token is a whitespace-delimited run of a line together with its starting
// column, counted in runes.
type Token struct {
	Text   string
	Column int
}

// Tokenize splits line into tokens and records where each one starts.
func Tokenize(line string) []Token {
	var tokens []Token
	start := -1
	col := 0
	var b strings.Builder
	for _, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: b.String(), Column: start})
				b.Reset()
				start = -1
			}
		} else {
			if start < 0 {
				start = col
			}
			b.WriteRune(r)
		}
		col++
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: b.String(), Column: start})
	}
	return tokens
}

// TransposeLine transposes every chord in line by semitones while keeping
// each token at the column where it started. Gaps between tokens stretch or
// shrink to absorb length changes. When a longer chord would run into its
// neighbour a single space is kept between them, so that neighbour and every
// token after it start later than in the source ("Am G" up one semitone is
// "Bbm Ab"). Trailing whitespace is copied from the source.
func TransposeLine(line string, semitones int) string {
	if semitones == 0 {
		return line
	}
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + len(tokens))
	width := 0
	for i, tok := range tokens {
		pad := tok.Column - width
		if i > 0 && pad < 1 {
			pad = 1
		}
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
			width += pad
		}
		out := transposeToken(tok.Text, semitones)
		b.WriteString(out)
		width += runeCount(out)
	}
	b.WriteString(trailingSpace(line))
	return b.String()
}

func trailingSpace(line string) string {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	return line[len(trimmed):]
}

func runeCount(s string) int {
	return len([]rune(s))
}
