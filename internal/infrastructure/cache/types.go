// Package cache contains the types for TTL memoization of remote responses.
package cache

import (
	"sync"
	"time"

	"clipstream/internal/config"

	"go.uber.org/zap"
)

// Class identifies a cached resource class. Each class carries its own TTL
// from configuration, callers never supply a TTL per call.
type Class int

const (
	ClassVideoList Class = iota
	ClassVideoDetail
	ClassThumbnail
	// ClassPlaylistList shares the video-list TTL
	ClassPlaylistList
)

// Cache defines the interface for cache operations
type Cache interface {
	Get(key string, class Class) (any, bool)
	Put(key string, value any)
	Invalidate(key string)
	InvalidateAll()
	Cleanup()
	Len() int
}

// Entry holds one cached value with its store time
type Entry struct {
	Value     any
	Timestamp time.Time
}

// Manager is the in-memory cache implementation
type Manager struct {
	mu      sync.Mutex
	entries map[string]Entry
	ttl     config.CacheTTLConfig
	logger  *zap.Logger
}

var _ Cache = (*Manager)(nil)

// NewManager creates a cache manager with the configured TTL table
func NewManager(ttl config.CacheTTLConfig, logger *zap.Logger) *Manager {
	return &Manager{
		entries: make(map[string]Entry),
		ttl:     ttl,
		logger:  logger,
	}
}
