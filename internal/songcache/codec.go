package songcache

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"chordstage/internal/sheet"
)

func encodeEntry(version string, song sheet.Song, now time.Time) ([]byte, error) {
	data, err := msgpack.Marshal(entry{Version: version, CachedAt: now.UTC(), Song: song})
	if err != nil {
		return nil, fmt.Errorf("encode cached song: %w", err)
	}
	return data, nil
}

func decodeEntry(data []byte) (entry, error) {
	var e entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return entry{}, fmt.Errorf("decode cached song: %w", err)
	}
	return e, nil
}
