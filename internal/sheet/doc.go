// Package sheet turns a plain-text song transcript into classified lines.
//
// A transcript optionally opens with a "Title - Artist" line followed by
// credit lines; the header ends at the first blank line. Every remaining line
// is classified as a directive ({...}), a cue ([...] without a chord), a
// chord line, a lyric line or an empty line. Parse also settles the reading
// direction of the song, either from an explicit override or from the amount
// of Hebrew script in the text.
//
// GroupIntoSections splits the classified lines into paragraph-like sections
// for paged and columnar display.
package sheet
