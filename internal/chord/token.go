package chord

import (
	"regexp"
	"strings"
)

var (
	// chordPattern is the standard chord grammar: root, accidental, quality,
	// extension digits, altered extension (b5), optional bass and emphasis.
	chordPattern = regexp.MustCompile(`^[A-G][#b]?(?:maj|min|dim|aug|sus2|sus4|add|m|M|o|\+)?[0-9]*(?:b[0-9]+)?(?:/[A-G][#b]?)?!?$`)

	// bassOnlyPattern forbids any quality or extension after the note.
	bassOnlyPattern = regexp.MustCompile(`^/[A-G][#b]?!?$`)

	arrowPattern = regexp.MustCompile(`^<?-{2,3}>?$`)
	digitPattern = regexp.MustCompile(`^[0-9]+$`)
)

// IsSystemToken reports whether token belongs to the chord-line vocabulary.
func IsSystemToken(token string) bool {
	if token == "" {
		return false
	}
	switch {
	case IsArrow(token):
		return true
	case token == "-", token == "[]", token == "x":
		return true
	case digitPattern.MatchString(token):
		return true
	}
	if strings.HasPrefix(token, "(") || strings.HasSuffix(token, ")") {
		inner := unwrapParens(token)
		return inner == "" || IsSystemToken(inner)
	}
	if isBracketed(token) {
		inner := token[1 : len(token)-1]
		return chordPattern.MatchString(inner) || bassOnlyPattern.MatchString(inner)
	}
	return chordPattern.MatchString(token) || bassOnlyPattern.MatchString(token)
}

// IsChordLine reports whether line has at least one token and every token
// is a chord-system token. A single foreign token demotes the whole line.
func IsChordLine(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if !IsSystemToken(token) {
			return false
		}
	}
	return true
}

// IsArrow reports whether token is a direction marker such as ---> or <--.
// Two or three hyphens are accepted; ----> is not an arrow.
func IsArrow(token string) bool {
	return arrowPattern.MatchString(token)
}

// IsMarker reports whether token is a non-chord member of the vocabulary
// (arrow, separator, rest placeholder or repeat count). Markers are never
// altered by transposition.
func IsMarker(token string) bool {
	return IsArrow(token) || token == "-" || token == "[]" || token == "x" || digitPattern.MatchString(token)
}

func isBracketed(token string) bool {
	return len(token) >= 2 && token[0] == '[' && token[len(token)-1] == ']'
}

// unwrapParens removes a single leading "(" and a single trailing ")".
func unwrapParens(token string) string {
	inner := strings.TrimPrefix(token, "(")
	return strings.TrimSuffix(inner, ")")
}
