package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clipstream/internal/infrastructure/cache"
	"clipstream/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetPlaylists returns the merged playlist collection: user playlists first,
// then the curated admin playlists when the admin-API flag is on. Remote
// failure degrades to the local collection and never surfaces to the caller.
func (s *Service) GetPlaylists(ctx context.Context) []model.Playlist {
	local := s.localPlaylists(ctx)

	if !s.UseAdminAPI(ctx) {
		return local
	}

	adminPlaylists, err := s.adminPlaylists(ctx)
	if err != nil {
		s.logger.Warn("Admin playlist fetch failed, serving local collection only", zap.Error(err))
		return local
	}

	merged := make([]model.Playlist, 0, len(local)+len(adminPlaylists))
	merged = append(merged, local...)
	merged = append(merged, adminPlaylists...)

	return merged
}

// GetPlaylist returns one playlist from the merged collection
func (s *Service) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	for _, p := range s.GetPlaylists(ctx) {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: playlist %s", model.ErrNotFound, id)
}

// CreatePlaylist creates an empty user playlist and persists the collection
func (s *Service) CreatePlaylist(ctx context.Context, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", model.ErrInvalidOperation)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	now := time.Now()
	playlist := model.Playlist{
		ID:          newPlaylistID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Entries:     []model.PlaylistEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	collection := append(s.localPlaylists(ctx), playlist)
	if err := s.playlists.SaveAll(ctx, collection); err != nil {
		return nil, err
	}

	s.cache.Invalidate(adminPlaylistsCacheKey)
	s.logger.Info("Playlist created", zap.String("playlist_id", playlist.ID), zap.String("name", name))

	return &playlist, nil
}

// RenamePlaylist updates a user playlist's name and description
func (s *Service) RenamePlaylist(ctx context.Context, id, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", model.ErrInvalidOperation)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	collection := s.localPlaylists(ctx)
	idx, err := s.findMutable(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	collection[idx].Name = name
	collection[idx].Description = strings.TrimSpace(description)
	collection[idx].Touch()

	if err := s.playlists.SaveAll(ctx, collection); err != nil {
		return nil, err
	}

	s.cache.Invalidate(adminPlaylistsCacheKey)

	updated := collection[idx]
	return &updated, nil
}

// AddVideoToPlaylist appends a snapshot entry for track to a user playlist.
// Duplicate effective ids are rejected, never silently overwritten.
func (s *Service) AddVideoToPlaylist(ctx context.Context, playlistID string, track model.Track) (*model.Playlist, error) {
	if track.EffectiveID() == "" {
		return nil, fmt.Errorf("%w: track id is required", model.ErrInvalidOperation)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	collection := s.localPlaylists(ctx)
	idx, err := s.findMutable(ctx, collection, playlistID)
	if err != nil {
		return nil, err
	}

	if collection[idx].ContainsTrack(track.EffectiveID()) {
		return nil, fmt.Errorf("%w: track %s already in playlist %s", model.ErrDuplicateEntry, track.EffectiveID(), playlistID)
	}

	collection[idx].Entries = append(collection[idx].Entries, model.NewEntry(track))
	collection[idx].RecomputeThumbnail()
	collection[idx].Touch()

	if err := s.playlists.SaveAll(ctx, collection); err != nil {
		return nil, err
	}

	s.cache.Invalidate(adminPlaylistsCacheKey)
	s.logger.Info("Track added to playlist",
		zap.String("playlist_id", playlistID),
		zap.String("track_id", track.EffectiveID()))

	updated := collection[idx]
	return &updated, nil
}

// RemoveVideoFromPlaylist removes the entry matching trackID through either
// identity field. Removing an absent entry is a no-op success so retried
// deletes stay safe.
func (s *Service) RemoveVideoFromPlaylist(ctx context.Context, playlistID, trackID string) (*model.Playlist, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	collection := s.localPlaylists(ctx)
	idx, err := s.findMutable(ctx, collection, playlistID)
	if err != nil {
		return nil, err
	}

	kept := collection[idx].Entries[:0:0]
	for _, e := range collection[idx].Entries {
		if !e.Matches(trackID) {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(collection[idx].Entries) {
		// Nothing removed, leave the stored collection untouched
		unchanged := collection[idx]
		return &unchanged, nil
	}

	collection[idx].Entries = kept
	collection[idx].RecomputeThumbnail()
	collection[idx].Touch()

	if err := s.playlists.SaveAll(ctx, collection); err != nil {
		return nil, err
	}

	s.cache.Invalidate(adminPlaylistsCacheKey)
	s.logger.Info("Track removed from playlist",
		zap.String("playlist_id", playlistID),
		zap.String("track_id", trackID))

	updated := collection[idx]
	return &updated, nil
}

// DeletePlaylist removes a user playlist wholesale
func (s *Service) DeletePlaylist(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	collection := s.localPlaylists(ctx)
	idx, err := s.findMutable(ctx, collection, id)
	if err != nil {
		return err
	}

	collection = append(collection[:idx], collection[idx+1:]...)

	if err := s.playlists.SaveAll(ctx, collection); err != nil {
		return err
	}

	s.cache.Invalidate(adminPlaylistsCacheKey)
	s.logger.Info("Playlist deleted", zap.String("playlist_id", id))

	return nil
}

// UseAdminAPI reads the persisted feature flag. An unset flag defaults to on,
// the admin catalog is part of the product's default experience.
func (s *Service) UseAdminAPI(ctx context.Context) bool {
	value, ok := s.settings.GetBool(ctx, useAdminAPIKey)
	if !ok {
		return true
	}
	return value
}

// SetUseAdminAPI persists the feature flag and drops the stale playlist view
func (s *Service) SetUseAdminAPI(ctx context.Context, enabled bool) error {
	if err := s.settings.SetBool(ctx, useAdminAPIKey, enabled); err != nil {
		return err
	}

	s.cache.Invalidate(adminPlaylistsCacheKey)
	s.logger.Info("Admin API flag updated", zap.Bool("enabled", enabled))

	return nil
}

// localPlaylists loads the locally stored collection filtered to user-owned
// entries. Admin playlists are never persisted locally; the filter guards
// against collections written by older builds.
func (s *Service) localPlaylists(ctx context.Context) []model.Playlist {
	stored := s.playlists.LoadAll(ctx)

	local := stored[:0:0]
	for _, p := range stored {
		if !p.IsAdminOwned {
			local = append(local, p)
		}
	}

	if local == nil {
		local = []model.Playlist{}
	}

	return local
}

// adminPlaylists returns the curated collection, served from cache inside the
// configured TTL, tagged read-only
func (s *Service) adminPlaylists(ctx context.Context) ([]model.Playlist, error) {
	if cached, ok := s.cache.Get(adminPlaylistsCacheKey, cache.ClassPlaylistList); ok {
		if playlists, ok := cached.([]model.Playlist); ok {
			return playlists, nil
		}
	}

	fetched, err := s.adminClient.GetPlaylists(ctx)
	if err != nil {
		return nil, err
	}

	for i := range fetched {
		fetched[i].IsAdminOwned = true
	}

	s.cache.Put(adminPlaylistsCacheKey, fetched)

	return fetched, nil
}

// findMutable locates a user playlist inside the local collection. A hit in
// the admin id space is a permission error, a miss everywhere is not found.
func (s *Service) findMutable(ctx context.Context, collection []model.Playlist, id string) (int, error) {
	for i := range collection {
		if collection[i].ID == id {
			if collection[i].IsAdminOwned {
				return -1, fmt.Errorf("%w: playlist %s is admin-owned", model.ErrInvalidOperation, id)
			}
			return i, nil
		}
	}

	if s.UseAdminAPI(ctx) {
		if adminPlaylists, err := s.adminPlaylists(ctx); err == nil {
			for _, p := range adminPlaylists {
				if p.ID == id {
					return -1, fmt.Errorf("%w: playlist %s is admin-owned", model.ErrInvalidOperation, id)
				}
			}
		}
	}

	return -1, fmt.Errorf("%w: playlist %s", model.ErrNotFound, id)
}

// newPlaylistID generates a locally unique playlist id. Collisions are
// negligible, not impossible, and are not separately detected.
func newPlaylistID() string {
	return fmt.Sprintf("pl-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
