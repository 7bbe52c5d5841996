// Package cache implements TTL memoization of remote responses.
package cache

import (
	"time"

	"go.uber.org/zap"
)

// ttlFor resolves the TTL for a resource class
func (m *Manager) ttlFor(class Class) time.Duration {
	switch class {
	case ClassVideoDetail:
		return m.ttl.VideoDetail
	case ClassThumbnail:
		return m.ttl.Thumbnail
	default:
		return m.ttl.VideoList
	}
}

// Get returns the cached value for key if it is younger than the class TTL.
// Expiry is lazy: stale entries are treated as absent and swept by Cleanup.
func (m *Manager) Get(key string, class Class) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.entries[key]
	if !exists || entry.Timestamp.IsZero() {
		return nil, false
	}

	if time.Since(entry.Timestamp) > m.ttlFor(class) {
		return nil, false
	}

	return entry.Value, true
}

// Put stores a value stamped with the current time
func (m *Manager) Put(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = Entry{
		Value:     value,
		Timestamp: time.Now(),
	}
}

// Invalidate evicts one key
func (m *Manager) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// InvalidateAll evicts everything, used after writes that can stale any view
func (m *Manager) InvalidateAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]Entry)
}

// Cleanup removes entries older than the longest configured TTL. There is no
// background sweep; callers may invoke this opportunistically.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxTTL := m.ttl.VideoList
	if m.ttl.VideoDetail > maxTTL {
		maxTTL = m.ttl.VideoDetail
	}
	if m.ttl.Thumbnail > maxTTL {
		maxTTL = m.ttl.Thumbnail
	}

	removed := 0
	for key, entry := range m.entries {
		if time.Since(entry.Timestamp) > maxTTL {
			delete(m.entries, key)
			removed++
		}
	}

	if removed > 0 {
		m.logger.Debug("Swept stale cache entries", zap.Int("removed", removed))
	}
}

// Len returns the number of stored entries, including stale ones
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
