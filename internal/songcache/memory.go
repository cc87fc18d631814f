package songcache

import (
	"context"
	"sync"

	"chordstage/internal/sheet"
)

// Memory is a process-local Cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

func (m *Memory) Get(_ context.Context, key, version string) (sheet.Song, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || e.Version != version {
		return sheet.Song{}, false, nil
	}
	return e.Song, true, nil
}

func (m *Memory) Put(_ context.Context, key, version string, song sheet.Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{Version: version, Song: song}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Clear(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.entries)
	m.entries = make(map[string]entry)
	return n, nil
}

func (m *Memory) Close() error { return nil }
