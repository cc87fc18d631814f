package textutil

import "strings"

// MaxStemLen bounds the readable prefix of a cache key.
const MaxStemLen = 32

// KeyStem reduces name to the cache key alphabet [a-z0-9-]. ASCII letters
// are lowercased, every other run of characters becomes a single hyphen and
// the result is trimmed to MaxStemLen. Names with no ASCII letters or digits,
// such as Hebrew titles, yield "song".
func KeyStem(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		default:
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	stem := b.String()
	if len(stem) > MaxStemLen {
		stem = strings.TrimRight(stem[:MaxStemLen], "-")
	}
	if stem == "" {
		return "song"
	}
	return stem
}
