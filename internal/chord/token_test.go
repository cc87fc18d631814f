package chord

import "testing"

func TestIsSystemToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"Am", true},
		{"F#m7", true},
		{"Bbmaj7", true},
		{"Cmaj7", true},
		{"C/E", true},
		{"Em7b5", true},
		{"Dsus4", true},
		{"Gsus2", true},
		{"Caug", true},
		{"Co", true},
		{"C+", true},
		{"G!", true},
		{"[G]", true},
		{"[F#m/C#]", true},
		{"/F", true},
		{"[/F]", true},
		{"/Bb!", true},
		{"/C7", false},
		{"/Fm7", false},
		{"[/C7]", false},
		{"--->", true},
		{"<---", true},
		{"-->", true},
		{"<--", true},
		{"---", true},
		{"---->", false},
		{"->", false},
		{"-", true},
		{"[]", true},
		{"x", true},
		{"2", true},
		{"12", true},
		{"(Em", true},
		{"Bb)", true},
		{"(Am7)", true},
		{"()", true},
		{"(x", true},
		{"(hello)", false},
		{"Hello", false},
		{"H", false},
		{"am", false},
		{"Bbb", false},
		{"[Intro]", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsSystemToken(tt.token); got != tt.want {
				t.Errorf("IsSystemToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsChordLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"simple", "Am   G   C", true},
		{"markers", "Am ---> G x 2", true},
		{"grouped", "(Cm Bb) - [] F", true},
		{"one foreign token", "Am G hello", false},
		{"lyric", "The road goes on", false},
		{"hebrew lyric", "שיר של יום", false},
		{"blank", "   ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChordLine(tt.line); got != tt.want {
				t.Errorf("IsChordLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsMarker(t *testing.T) {
	for _, token := range []string{"--->", "<--", "-", "[]", "x", "4"} {
		if !IsMarker(token) {
			t.Errorf("IsMarker(%q) = false, want true", token)
		}
	}
	for _, token := range []string{"Am", "/F", "[G]", "(x"} {
		if IsMarker(token) {
			t.Errorf("IsMarker(%q) = true, want false", token)
		}
	}
}
