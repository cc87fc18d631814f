// Command chordstage renders chord-and-lyric transcripts in the terminal.
//
// It parses plain-text song sheets, transposes chord lines while keeping
// them aligned over their lyrics, mirrors chord lines for right-to-left
// songs and pages the result into verses for live performance. Parsed songs
// are cached between runs in memory, SQLite or Redis, and the watch command
// re-renders a transcript whenever it is saved.
package main
