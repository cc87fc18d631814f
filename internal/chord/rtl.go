package chord

import (
	"strings"
	"unicode"
)

var arrowMirror = map[string]string{
	"--->": "<---",
	"<---": "--->",
	"-->":  "<--",
	"<--":  "-->",
}

var delimiterPairs = map[rune]rune{
	'(': ')',
	'[': ']',
}

var closingToOpening = map[rune]rune{
	')': '(',
	']': '[',
}

// ReverseLineForRTL mirrors a chord line for display inside a right-to-left
// paragraph. Token order and the whitespace between tokens are reversed
// while each token keeps its own spelling. Arrows change direction and a
// bracket or parenthesis that only closes one end of a token moves to the
// other end with its role swapped, so a group such as "(Cm Bb)" still reads
// as a group once reversed.
func ReverseLineForRTL(line string) string {
	runes := []rune(line)
	reverseRunes(runes)

	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(runes); {
		j := i
		space := unicode.IsSpace(runes[i])
		for j < len(runes) && unicode.IsSpace(runes[j]) == space {
			j++
		}
		segment := runes[i:j]
		if space {
			b.WriteString(string(segment))
		} else {
			reverseRunes(segment)
			b.WriteString(mirrorToken(string(segment)))
		}
		i = j
	}
	return b.String()
}

func mirrorToken(token string) string {
	if flipped, ok := arrowMirror[token]; ok {
		return flipped
	}
	runes := []rune(token)
	if len(runes) == 0 {
		return token
	}
	first, last := runes[0], runes[len(runes)-1]
	_, opens := delimiterPairs[first]
	_, closes := closingToOpening[last]
	switch {
	case len(runes) > 1 && opens && closes:
		return token
	case opens:
		return string(runes[1:]) + string(delimiterPairs[first])
	case closes:
		return string(closingToOpening[last]) + string(runes[:len(runes)-1])
	}
	return token
}

func reverseRunes(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
