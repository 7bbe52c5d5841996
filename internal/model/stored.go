// Package model contains the domain types shared across layers.
//
// Group: PERSISTENCE - Stored rows and repository interfaces
// Contains: PlaylistCollection, Setting, CachedTrack
package model

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// PlaylistCollection holds the full playlist collection serialized as one JSON
// blob under a single key. All mutation is read-modify-write of the whole row.
type PlaylistCollection struct {
	bun.BaseModel `bun:"table:clipstream.playlist_collections"`

	Key       string    `bun:"key,pk" json:"key"`
	Data      []byte    `bun:"data,notnull" json:"data"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Setting is a persisted key/value pair, used for the admin-API feature flag
type Setting struct {
	bun.BaseModel `bun:"table:clipstream.settings"`

	Key       string    `bun:"key,pk" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// CachedTrack is a durable snapshot of remotely fetched track metadata
type CachedTrack struct {
	bun.BaseModel `bun:"table:clipstream.cached_tracks"`

	TrackID   string    `bun:"track_id,pk" json:"track_id"`
	Data      []byte    `bun:"data,notnull" json:"data"`
	FetchedAt time.Time `bun:"fetched_at,notnull,default:current_timestamp" json:"fetched_at"`
}

// PlaylistRepository defines the persistence interface for the playlist
// collection. LoadAll fails soft: a missing or unreadable row yields an empty
// slice, never an error.
type PlaylistRepository interface {
	LoadAll(ctx context.Context) []Playlist
	SaveAll(ctx context.Context, playlists []Playlist) error
	Clear(ctx context.Context) error
}

// SettingRepository defines the persistence interface for settings
type SettingRepository interface {
	GetBool(ctx context.Context, key string) (value bool, ok bool)
	SetBool(ctx context.Context, key string, value bool) error
}

// CachedTrackRepository defines the persistence interface for track snapshots
type CachedTrackRepository interface {
	Get(ctx context.Context, trackID string) (*Track, error)
	Put(ctx context.Context, track Track) error
	Delete(ctx context.Context, trackID string) error
}
