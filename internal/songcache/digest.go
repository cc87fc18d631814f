package songcache

import (
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"chordstage/internal/textutil"
)

// Version returns the content digest of a raw transcript. Any edit to the
// text, whitespace included, produces a new version.
func Version(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Key derives the cache key for a transcript path. The readable prefix comes
// from the file name; the suffix keeps songs with the same name in different
// directories apart.
func Key(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	sum := blake3.Sum256([]byte(abs))
	return textutil.KeyStem(name) + "-" + hex.EncodeToString(sum[:6])
}
