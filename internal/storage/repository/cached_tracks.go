// Package repository contains the database repositories.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clipstream/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CachedTrackRepository stores durable snapshots of fetched track metadata
type CachedTrackRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewCachedTrackRepository creates a new cached track repository
func NewCachedTrackRepository(db *bun.DB, logger *zap.Logger) *CachedTrackRepository {
	return &CachedTrackRepository{
		db:     db,
		logger: logger,
	}
}

var _ model.CachedTrackRepository = (*CachedTrackRepository)(nil)

// Get returns the snapshot for a track id, or nil when none is stored
func (r *CachedTrackRepository) Get(ctx context.Context, trackID string) (*model.Track, error) {
	row := new(model.CachedTrack)

	err := r.db.NewSelect().
		Model(row).
		Where("track_id = ?", trackID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load cached track: %v", model.ErrStorage, err)
	}

	track := new(model.Track)
	if err := json.Unmarshal(row.Data, track); err != nil {
		r.logger.Warn("Failed to deserialize cached track", zap.String("track_id", trackID), zap.Error(err))
		return nil, nil
	}

	return track, nil
}

// Put stores a snapshot, replacing any previous one wholesale
func (r *CachedTrackRepository) Put(ctx context.Context, track model.Track) error {
	data, err := json.Marshal(track)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize track: %v", model.ErrStorage, err)
	}

	row := &model.CachedTrack{
		TrackID:   track.ID,
		Data:      data,
		FetchedAt: time.Now(),
	}

	_, err = r.db.NewInsert().
		Model(row).
		On("CONFLICT (track_id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("fetched_at = EXCLUDED.fetched_at").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("%w: failed to save cached track: %v", model.ErrStorage, err)
	}

	return nil
}

// Delete removes the snapshot for a track id
func (r *CachedTrackRepository) Delete(ctx context.Context, trackID string) error {
	_, err := r.db.NewDelete().
		Model((*model.CachedTrack)(nil)).
		Where("track_id = ?", trackID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("%w: failed to delete cached track: %v", model.ErrStorage, err)
	}

	return nil
}
