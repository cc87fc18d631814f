// Package verse partitions a classified line stream into screen-sized
// verses.
//
// Ranges always index the original line slice, so a verse stays valid
// against the source document regardless of which lines a display mode
// hides. Two partition policies exist: Calculate for chord sheets, where
// chord and directive lines ride along with the lyric below them, and
// CalculateLyricsMode, which additionally skips leading blanks, collapses
// runs of blank lines and never opens a verse with a blank line.
//
// Strategy wraps a policy with its display-time window: PagedStrategy pads a
// short final verse with context borrowed from the previous verse, while
// OverlapStrategy carries the tail of every verse into the next one for
// smooth scrolling.
package verse
