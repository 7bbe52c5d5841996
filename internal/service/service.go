// Package service implements the hybrid sync orchestrator reconciling the
// local user-owned playlist collection with the remote admin catalog and the
// memoization cache.
package service

import (
	"sync"

	"clipstream/internal/gateway/admin"
	"clipstream/internal/gateway/vimeo"
	"clipstream/internal/infrastructure/cache"
	"clipstream/internal/model"

	"go.uber.org/zap"
)

// Cache keys used by the orchestrator
const (
	adminPlaylistsCacheKey = "playlists:admin"
	videoCacheKeyPrefix    = "video:"
)

// useAdminAPIKey is the persisted feature flag controlling admin-API reads
const useAdminAPIKey = "use_admin_api"

// Service is the single entry point for playlist and track reads and writes
type Service struct {
	playlists    model.PlaylistRepository
	settings     model.SettingRepository
	cachedTracks model.CachedTrackRepository
	adminClient  admin.Interface
	vimeoClient  vimeo.Interface
	cache        cache.Cache
	logger       *zap.Logger

	// writeMu serializes every read-modify-write cycle of the collection, so
	// concurrent writes cannot silently drop each other's snapshot.
	writeMu sync.Mutex
}

// New creates the sync orchestrator
func New(
	playlists model.PlaylistRepository,
	settings model.SettingRepository,
	cachedTracks model.CachedTrackRepository,
	adminClient admin.Interface,
	vimeoClient vimeo.Interface,
	c cache.Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		playlists:    playlists,
		settings:     settings,
		cachedTracks: cachedTracks,
		adminClient:  adminClient,
		vimeoClient:  vimeoClient,
		cache:        c,
		logger:       logger,
	}
}

func videoCacheKey(id string) string {
	return videoCacheKeyPrefix + id
}
