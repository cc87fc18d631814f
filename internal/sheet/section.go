package sheet

// GroupIntoSections splits lines into display sections. An empty line ends
// the current section and is dropped. A directive or cue line opens a new
// section. With showChords false, directive and chord lines are skipped
// without affecting section boundaries; cue lines are always kept.
func GroupIntoSections(lines []Line, showChords bool) [][]Line {
	var sections [][]Line
	var current []Line
	flush := func() {
		if len(current) > 0 {
			sections = append(sections, current)
			current = nil
		}
	}

	for _, line := range lines {
		if !showChords && line.Type.ChordsOnly() {
			continue
		}
		switch line.Type {
		case LineEmpty:
			flush()
			continue
		case LineDirective, LineCue:
			flush()
		}
		current = append(current, line)
	}
	flush()
	return sections
}
