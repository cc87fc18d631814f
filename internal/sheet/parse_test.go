package sheet_test

import (
	"reflect"
	"testing"

	"chordstage/internal/sheet"
)

const hallelujah = `Hallelujah - Leonard Cohen
Lyrics and music: Leonard Cohen

[Verse 1]
C        Am
I heard there was a secret chord
{capo 2}
C        Am
That David played

[Chorus]
F    G    C
Hallelujah
`

func TestParseHeaderAndBody(t *testing.T) {
	song := sheet.Parse(hallelujah, nil)

	wantMeta := sheet.Metadata{
		Title:     "Hallelujah",
		Artist:    "Leonard Cohen",
		Credits:   "Lyrics and music: Leonard Cohen",
		Direction: sheet.LTR,
	}
	if song.Metadata != wantMeta {
		t.Fatalf("metadata = %+v, want %+v", song.Metadata, wantMeta)
	}

	wantTypes := []sheet.LineType{
		sheet.LineCue, sheet.LineChords, sheet.LineLyric, sheet.LineDirective,
		sheet.LineChords, sheet.LineLyric, sheet.LineEmpty, sheet.LineCue,
		sheet.LineChords, sheet.LineLyric,
	}
	if got := lineTypes(song.Lines); !reflect.DeepEqual(got, wantTypes) {
		t.Fatalf("line types = %v, want %v", got, wantTypes)
	}

	if song.Lines[0].Text != "Verse 1" {
		t.Errorf("cue text = %q, want %q", song.Lines[0].Text, "Verse 1")
	}
	if song.Lines[1].Raw != "C        Am" {
		t.Errorf("chord raw = %q, want original spacing", song.Lines[1].Raw)
	}
	if song.Lines[3].Text != "capo 2" {
		t.Errorf("directive text = %q, want %q", song.Lines[3].Text, "capo 2")
	}
}

func TestParseHebrewSong(t *testing.T) {
	text := "ירושלים של זהב - נעמי שמר\nמילים ולחן: נעמי שמר\n\n[בית]\nAm         Dm\nאויר הרים צלול כיין\n"
	song := sheet.Parse(text, nil)

	if song.Metadata.Direction != sheet.RTL {
		t.Errorf("direction = %q, want rtl", song.Metadata.Direction)
	}
	if song.Metadata.Title != "ירושלים של זהב" || song.Metadata.Artist != "נעמי שמר" {
		t.Errorf("title/artist = %q / %q", song.Metadata.Title, song.Metadata.Artist)
	}
	if song.Metadata.Credits != "מילים ולחן: נעמי שמר" {
		t.Errorf("credits = %q", song.Metadata.Credits)
	}
	want := []sheet.LineType{sheet.LineCue, sheet.LineChords, sheet.LineLyric}
	if got := lineTypes(song.Lines); !reflect.DeepEqual(got, want) {
		t.Errorf("line types = %v, want %v", got, want)
	}
}

func TestParseWithoutHeader(t *testing.T) {
	song := sheet.Parse("Am  G\nla la la\n", nil)
	if song.Metadata.Title != "" || song.Metadata.Artist != "" {
		t.Errorf("unexpected header %+v", song.Metadata)
	}
	if len(song.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(song.Lines))
	}
}

func TestParseHeaderWithoutBlankLine(t *testing.T) {
	song := sheet.Parse("Song - Band\nC  G\nla la\n", nil)
	if song.Metadata.Title != "Song" {
		t.Errorf("title = %q, want Song", song.Metadata.Title)
	}
	want := []sheet.LineType{sheet.LineChords, sheet.LineLyric}
	if got := lineTypes(song.Lines); !reflect.DeepEqual(got, want) {
		t.Errorf("line types = %v, want %v", got, want)
	}
}

func TestParseMultipleCredits(t *testing.T) {
	song := sheet.Parse("Song - Band\nLyrics: A\nMusic: B\n\nla\n", nil)
	if song.Metadata.Credits != "Lyrics: A | Music: B" {
		t.Errorf("credits = %q", song.Metadata.Credits)
	}
	if len(song.Lines) != 1 || song.Lines[0].Type != sheet.LineLyric {
		t.Errorf("body = %+v", song.Lines)
	}
}

func TestParseKeepsLyricOpeningWithCreditWord(t *testing.T) {
	song := sheet.Parse("Title - Artist\nMusic is my life\nand I sing\n", nil)
	if song.Metadata.Credits != "" {
		t.Errorf("credits = %q, want none", song.Metadata.Credits)
	}
	if song.Metadata.Title != "Title" || song.Metadata.Artist != "Artist" {
		t.Errorf("metadata = %+v", song.Metadata)
	}
	if len(song.Lines) != 2 || song.Lines[0].Text != "Music is my life" || song.Lines[1].Text != "and I sing" {
		t.Errorf("body = %+v", song.Lines)
	}
}

func TestParseNormalizesLineEndings(t *testing.T) {
	song := sheet.Parse("A - B\r\n\r\nAm\r\nla la\r\n", nil)
	want := []sheet.Line{
		{Type: sheet.LineChords, Text: "Am", Raw: "Am"},
		{Type: sheet.LineLyric, Text: "la la"},
	}
	if !reflect.DeepEqual(song.Lines, want) {
		t.Errorf("lines = %+v, want %+v", song.Lines, want)
	}
}

func TestNormalizeComposesText(t *testing.T) {
	if got := sheet.Normalize("Cafe\u0301"); got != "Caf\u00e9" {
		t.Errorf("Normalize() = %q, want %q", got, "Café")
	}
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		name     string
		override sheet.Metadata
		want     sheet.Metadata
	}{
		{
			name:     "title and direction",
			override: sheet.Metadata{Title: "Other", Direction: "RTL"},
			want:     sheet.Metadata{Title: "Other", Artist: "Band", Direction: sheet.RTL},
		},
		{
			name:     "unknown direction falls back to detection",
			override: sheet.Metadata{Direction: "sideways"},
			want:     sheet.Metadata{Title: "Song", Artist: "Band", Direction: sheet.LTR},
		},
		{
			name:     "blank fields keep header",
			override: sheet.Metadata{Artist: "  ", Credits: "Words: X"},
			want:     sheet.Metadata{Title: "Song", Artist: "Band", Credits: "Words: X", Direction: sheet.LTR},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override := tt.override
			song := sheet.Parse("Song - Band\n\nla la\n", &override)
			if song.Metadata != tt.want {
				t.Errorf("metadata = %+v, want %+v", song.Metadata, tt.want)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	song := sheet.Parse("", nil)
	if len(song.Lines) != 0 {
		t.Errorf("got %d lines for empty text", len(song.Lines))
	}
	if song.Metadata.Direction != sheet.LTR {
		t.Errorf("direction = %q, want ltr", song.Metadata.Direction)
	}
}

func lineTypes(lines []sheet.Line) []sheet.LineType {
	out := make([]sheet.LineType, len(lines))
	for i, l := range lines {
		out[i] = l.Type
	}
	return out
}
