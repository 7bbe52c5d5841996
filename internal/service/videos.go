package service

import (
	"context"
	"fmt"

	"clipstream/internal/infrastructure/cache"
	"clipstream/internal/model"

	"go.uber.org/zap"
)

// GetVideoFiles returns the metadata and playback descriptors for one video.
// Read-through: memory cache, then the durable snapshot store, then the
// hosting provider. A remote failure degrades to the last durable snapshot
// when one exists.
func (s *Service) GetVideoFiles(ctx context.Context, id string) (*model.Track, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: video id is required", model.ErrNotFound)
	}

	key := videoCacheKey(id)

	if cached, ok := s.cache.Get(key, cache.ClassVideoDetail); ok {
		if track, ok := cached.(*model.Track); ok {
			return track, nil
		}
	}

	track, err := s.vimeoClient.GetVideoFiles(ctx, id)
	if err != nil {
		snapshot, snapErr := s.cachedTracks.Get(ctx, id)
		if snapErr == nil && snapshot != nil {
			s.logger.Warn("Video fetch failed, serving durable snapshot",
				zap.String("video_id", id),
				zap.Error(err))
			s.cache.Put(key, snapshot)
			return snapshot, nil
		}
		return nil, err
	}

	s.cache.Put(key, track)

	// Snapshot persistence is best effort, the fetched result is already in hand
	if err := s.cachedTracks.Put(ctx, *track); err != nil {
		s.logger.Warn("Failed to persist track snapshot", zap.String("video_id", id), zap.Error(err))
	}

	return track, nil
}
