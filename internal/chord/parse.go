package chord

import "strings"

// Chord is a decomposed chord token. Root is empty only for bass-only
// notation such as /F. Modifiers holds the quality and extension text
// verbatim; it is never normalized.
type Chord struct {
	Root           string
	Accidental     string
	Modifiers      string
	Bass           string
	BassAccidental string
	HasBass        bool
	Bracketed      bool
	Emphasis       bool
	Original       string
}

// Parse decomposes token into its chord parts. Markers, arrows and anything
// outside the chord and bass-only grammars are rejected.
func Parse(token string) (Chord, bool) {
	c := Chord{Original: token}
	body := token
	if isBracketed(body) {
		body = body[1 : len(body)-1]
		c.Bracketed = true
	}
	if body == "" {
		return Chord{}, false
	}

	if strings.HasPrefix(body, "/") {
		if !bassOnlyPattern.MatchString(body) {
			return Chord{}, false
		}
		body, c.Emphasis = trimEmphasis(body)
		c.Bass, c.BassAccidental = splitNote(body[1:])
		c.HasBass = true
		return c, true
	}

	if !chordPattern.MatchString(body) {
		return Chord{}, false
	}
	body, c.Emphasis = trimEmphasis(body)

	c.Root = body[:1]
	rest := body[1:]
	if rest != "" && (rest[0] == '#' || rest[0] == 'b') {
		c.Accidental = rest[:1]
		rest = rest[1:]
	}
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		c.Bass, c.BassAccidental = splitNote(rest[slash+1:])
		c.HasBass = true
		rest = rest[:slash]
	}
	c.Modifiers = rest
	return c, true
}

// RootNote returns the root letter with its accidental.
func (c Chord) RootNote() string {
	return c.Root + c.Accidental
}

// BassNote returns the bass letter with its accidental, or "" when absent.
func (c Chord) BassNote() string {
	if !c.HasBass {
		return ""
	}
	return c.Bass + c.BassAccidental
}

// IsBassOnly reports whether the chord is a bare bass note such as /F.
func (c Chord) IsBassOnly() bool {
	return c.Root == "" && c.HasBass
}

// String re-serializes the chord from its parts.
func (c Chord) String() string {
	var b strings.Builder
	b.Grow(len(c.Original) + 2)
	if c.Bracketed {
		b.WriteByte('[')
	}
	b.WriteString(c.RootNote())
	b.WriteString(c.Modifiers)
	if c.HasBass {
		b.WriteByte('/')
		b.WriteString(c.BassNote())
	}
	if c.Emphasis {
		b.WriteByte('!')
	}
	if c.Bracketed {
		b.WriteByte(']')
	}
	return b.String()
}

func trimEmphasis(body string) (string, bool) {
	if strings.HasSuffix(body, "!") {
		return body[:len(body)-1], true
	}
	return body, false
}

func splitNote(note string) (string, string) {
	if note == "" {
		return "", ""
	}
	return note[:1], note[1:]
}
