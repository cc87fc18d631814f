package sheet

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineType
	}{
		{"empty", "", LineEmpty},
		{"whitespace", "  \t ", LineEmpty},
		{"bidi only", "\u200f\u200e", LineEmpty},
		{"directive", "{capo 2}", LineDirective},
		{"directive with marks", "\u200f{קאפו 2}\u200f", LineDirective},
		{"cue", "[Chorus]", LineCue},
		{"cue starting with note letter", "[Bridge]", LineCue},
		{"hebrew cue", "[פזמון]", LineCue},
		{"cue with marks", "\u200e[Verse 1]\u200e", LineCue},
		{"bracketed chord", "[Am]", LineChords},
		{"bracketed bass", "[/F]", LineChords},
		{"bracketed chord sequence", "[G] [D]", LineChords},
		{"rest placeholder", "[]", LineChords},
		{"chords", "Am    G   C", LineChords},
		{"chords with markers", "Am ---> G x 2", LineChords},
		{"mixed", "Am hello", LineLyric},
		{"lyric", "I heard there was a secret chord", LineLyric},
		{"hebrew lyric", "הללויה", LineLyric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyLine(tt.line); got != tt.want {
				t.Errorf("ClassifyLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestAnnotationText(t *testing.T) {
	if got := DirectiveText("  { capo 2 } "); got != "capo 2" {
		t.Errorf("DirectiveText() = %q, want %q", got, "capo 2")
	}
	if got := CueText("\u200f[ פזמון ]"); got != "פזמון" {
		t.Errorf("CueText() = %q, want %q", got, "פזמון")
	}
	if got := CueText("plain"); got != "plain" {
		t.Errorf("CueText(unwrapped) = %q, want %q", got, "plain")
	}
}

func TestStripBidi(t *testing.T) {
	if got := StripBidi("\u200fAm\u200e G\u202b"); got != "Am G" {
		t.Errorf("StripBidi() = %q, want %q", got, "Am G")
	}
	if got := StripBidi("Am G"); got != "Am G" {
		t.Errorf("StripBidi(clean) = %q", got)
	}
}

func TestIsCreditLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Lyrics: Leonard Cohen", true},
		{"LYRICS AND MUSIC: Leonard Cohen", true},
		{"Music by Someone", true},
		{"Words - Someone", true},
		{"arrangement", true},
		{"מילים: נתן יונתן", true},
		{"לחן: נעמי שמר", true},
		{"מילים ולחן: נעמי שמר", true},
		{"Musician of the year", false},
		{"Music is my life", false},
		{"Words: ", true},
		{"Lyrics-Someone", false},
		{"מילים של אהבה", false},
		{"Lyricsmith", false},
		{"I heard there was a secret chord", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCreditLine(tt.line); got != tt.want {
			t.Errorf("IsCreditLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestDetectDirection(t *testing.T) {
	if got := DetectDirection("Hello world, this is a song"); got != LTR {
		t.Errorf("DetectDirection(latin) = %q, want ltr", got)
	}
	if got := DetectDirection("אבגדהוזחטי"); got != LTR {
		t.Errorf("DetectDirection(ten hebrew runes) = %q, want ltr", got)
	}
	if got := DetectDirection("אבגדהוזחטיכ"); got != RTL {
		t.Errorf("DetectDirection(eleven hebrew runes) = %q, want rtl", got)
	}
}
