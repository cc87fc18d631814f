package chord

// preferredScale lists the spelling emitted for each semitone after a
// non-zero transposition.
var preferredScale = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// noteIndex maps every accepted spelling, enharmonic duplicates included,
// to its semitone index.
var noteIndex = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// NoteIndex returns the semitone index (0-11) of note.
func NoteIndex(note string) (int, bool) {
	idx, ok := noteIndex[note]
	return idx, ok
}

// TransposeNote shifts note by semitones. A zero shift returns the note
// exactly as written; any other shift yields the preferred spelling.
// Unknown notes are returned unchanged.
func TransposeNote(note string, semitones int) string {
	if semitones == 0 {
		return note
	}
	idx, ok := noteIndex[note]
	if !ok {
		return note
	}
	return preferredScale[mod12(idx+semitones)]
}

// TransposeChord shifts a single chord token by semitones. Brackets, the
// emphasis marker and the modifiers survive untouched. Tokens that do not
// parse as chords are returned as-is.
func TransposeChord(token string, semitones int) string {
	if semitones == 0 {
		return token
	}
	c, ok := Parse(token)
	if !ok {
		return token
	}
	if c.Root != "" {
		root := TransposeNote(c.RootNote(), semitones)
		c.Root, c.Accidental = splitNote(root)
	}
	if c.HasBass {
		bass := TransposeNote(c.BassNote(), semitones)
		c.Bass, c.BassAccidental = splitNote(bass)
	}
	return c.String()
}

// transposeToken transposes any chord-line token. Markers pass through,
// parenthesized tokens are unwrapped, transposed and rewrapped.
func transposeToken(token string, semitones int) string {
	if semitones == 0 || IsMarker(token) {
		return token
	}
	if len(token) > 0 && (token[0] == '(' || token[len(token)-1] == ')') {
		hasOpen := token[0] == '('
		hasClose := token[len(token)-1] == ')'
		inner := unwrapParens(token)
		if inner == "" {
			return token
		}
		out := transposeToken(inner, semitones)
		if hasOpen {
			out = "(" + out
		}
		if hasClose {
			out += ")"
		}
		return out
	}
	return TransposeChord(token, semitones)
}

func mod12(v int) int {
	v %= 12
	if v < 0 {
		v += 12
	}
	return v
}
