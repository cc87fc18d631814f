package testsupport

import (
	"context"
	"testing"

	"chordstage/internal/config"
	"chordstage/internal/songcache"
)

// MustOpenCache opens the cache selected by cfg and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) songcache.Cache {
	t.Helper()

	cache, err := songcache.Open(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open song cache: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}

// Hallelujah is a small chorded transcript used across tests.
const Hallelujah = `Hallelujah - Leonard Cohen
Words: Leonard Cohen

{Intro}
C   Am   C   Am

[Verse 1]
C                 Am
I heard there was a secret chord
C                   Am
That David played and it pleased the Lord
F                G             C      G
But you don't really care for music, do you?

[Chorus]
F           Am
Hallelujah, Hallelujah
`
