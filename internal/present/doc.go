// Package present renders parsed songs for display.
//
// Rendering a chord line runs transposition, right-to-left mirroring (for
// rtl songs only) and the diminished glyph substitution, in that order. The
// package also styles rendered lines for terminals and lays sections out in
// side-by-side columns.
package present
