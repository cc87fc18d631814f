package sheet_test

import (
	"reflect"
	"testing"

	"chordstage/internal/sheet"
)

func TestGroupIntoSectionsWithChords(t *testing.T) {
	song := sheet.Parse(hallelujah, nil)
	sections := sheet.GroupIntoSections(song.Lines, true)

	want := [][]sheet.LineType{
		{sheet.LineCue, sheet.LineChords, sheet.LineLyric},
		{sheet.LineDirective, sheet.LineChords, sheet.LineLyric},
		{sheet.LineCue, sheet.LineChords, sheet.LineLyric},
	}
	assertSectionTypes(t, sections, want)
}

func TestGroupIntoSectionsLyricsOnly(t *testing.T) {
	song := sheet.Parse(hallelujah, nil)
	sections := sheet.GroupIntoSections(song.Lines, false)

	want := [][]sheet.LineType{
		{sheet.LineCue, sheet.LineLyric, sheet.LineLyric},
		{sheet.LineCue, sheet.LineLyric},
	}
	assertSectionTypes(t, sections, want)
}

func TestGroupIntoSectionsDropsRepeatedEmpties(t *testing.T) {
	lines := []sheet.Line{
		{Type: sheet.LineEmpty},
		{Type: sheet.LineLyric, Text: "a"},
		{Type: sheet.LineEmpty},
		{Type: sheet.LineEmpty},
		{Type: sheet.LineLyric, Text: "b"},
		{Type: sheet.LineEmpty},
	}
	sections := sheet.GroupIntoSections(lines, true)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0][0].Text != "a" || sections[1][0].Text != "b" {
		t.Errorf("sections = %+v", sections)
	}
}

func TestGroupIntoSectionsIdempotent(t *testing.T) {
	song := sheet.Parse(hallelujah, nil)
	for _, section := range sheet.GroupIntoSections(song.Lines, false) {
		again := sheet.GroupIntoSections(section, false)
		if len(again) != 1 || !reflect.DeepEqual(again[0], section) {
			t.Errorf("regrouping %+v gave %+v", section, again)
		}
	}
}

func TestGroupIntoSectionsEmptyInput(t *testing.T) {
	if got := sheet.GroupIntoSections(nil, true); len(got) != 0 {
		t.Errorf("got %d sections for no lines", len(got))
	}
}

func assertSectionTypes(t *testing.T, sections [][]sheet.Line, want [][]sheet.LineType) {
	t.Helper()
	got := make([][]sheet.LineType, len(sections))
	for i, section := range sections {
		for _, line := range section {
			got[i] = append(got[i], line.Type)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("section types = %v, want %v", got, want)
	}
}
