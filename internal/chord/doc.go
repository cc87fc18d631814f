// Package chord classifies, parses, transposes and mirrors chord notation.
//
// A chord line is a run of whitespace-separated tokens drawn from a small
// vocabulary: chords (Am7, F#m/C#, [G], Bb!), bass-only notes (/F), repeat
// markers (x, 2), arrows (--->, <--), hyphen separators and the [] rest
// placeholder. IsSystemToken decides membership, Parse decomposes chords into
// root, accidental, modifiers and bass, and the transpose helpers shift them
// by semitones while keeping every token at its original column.
//
// Everything here is a pure function over strings. Malformed input never
// produces an error: unknown tokens are reported as non-chord tokens and are
// passed through transposition untouched.
package chord
