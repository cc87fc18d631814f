package textutil

import (
	"strings"
	"testing"
)

func TestKeyStem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hallelujah", "hallelujah"},
		{"spaces collapse", "  Wish You Were Here ", "wish-you-were-here"},
		{"punctuation runs collapse", "Song (live) -- 2", "song-live-2"},
		{"underscores become hyphens", "rock_n_roll", "rock-n-roll"},
		{"edges trimmed", "__edge__", "edge"},
		{"hebrew only", "שיר", "song"},
		{"mixed scripts keep ascii", "שיר 2", "2"},
		{"empty", "", "song"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyStem(tt.in); got != tt.want {
				t.Errorf("KeyStem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyStemTruncates(t *testing.T) {
	got := KeyStem(strings.Repeat("ab ", 30))
	if len(got) > MaxStemLen {
		t.Fatalf("stem %q longer than %d", got, MaxStemLen)
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Fatalf("stem %q has a dangling hyphen", got)
	}
}
