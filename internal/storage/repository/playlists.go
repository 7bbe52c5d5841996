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

// collectionKey is the single storage key holding the serialized playlist collection
const collectionKey = "playlists"

// PlaylistRepository persists the playlist collection as one serialized row
type PlaylistRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPlaylistRepository creates a new playlist collection repository
func NewPlaylistRepository(db *bun.DB, logger *zap.Logger) *PlaylistRepository {
	return &PlaylistRepository{
		db:     db,
		logger: logger,
	}
}

var _ model.PlaylistRepository = (*PlaylistRepository)(nil)

// LoadAll returns the stored playlist collection. Fails soft: an absent row or
// a payload that no longer deserializes yields an empty collection so reads
// never error out of the local path.
func (r *PlaylistRepository) LoadAll(ctx context.Context) []model.Playlist {
	row := new(model.PlaylistCollection)

	err := r.db.NewSelect().
		Model(row).
		Where("key = ?", collectionKey).
		Scan(ctx)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn("Failed to load playlist collection", zap.Error(err))
		}
		return []model.Playlist{}
	}

	var playlists []model.Playlist
	if err := json.Unmarshal(row.Data, &playlists); err != nil {
		r.logger.Warn("Failed to deserialize playlist collection", zap.Error(err))
		return []model.Playlist{}
	}

	return playlists
}

// SaveAll overwrites the stored collection with a single serialize and upsert
func (r *PlaylistRepository) SaveAll(ctx context.Context, playlists []model.Playlist) error {
	data, err := json.Marshal(playlists)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize playlist collection: %v", model.ErrStorage, err)
	}

	row := &model.PlaylistCollection{
		Key:       collectionKey,
		Data:      data,
		UpdatedAt: time.Now(),
	}

	_, err = r.db.NewInsert().
		Model(row).
		On("CONFLICT (key) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("%w: failed to save playlist collection: %v", model.ErrStorage, err)
	}

	return nil
}

// Clear removes the collection row entirely
func (r *PlaylistRepository) Clear(ctx context.Context) error {
	_, err := r.db.NewDelete().
		Model((*model.PlaylistCollection)(nil)).
		Where("key = ?", collectionKey).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("%w: failed to clear playlist collection: %v", model.ErrStorage, err)
	}

	return nil
}
