// Package model contains the domain types shared across layers.
//
// Group: ENTITIES - Catalog entities
// Contains: Track, NewEntry
package model

import "time"

// Track is a playable media item fetched from the hosting provider. A Track is
// immutable once fetched; a re-fetch replaces it wholesale.
type Track struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
	ThumbnailRef    string `json:"thumbnail_ref,omitempty"`
	PlaybackRef     string `json:"playback_ref,omitempty"`

	// HostingID is set when the track was authored against the hosting
	// provider's id namespace rather than the internal catalog one. The two
	// fields are kept separate, duplicate detection uses EffectiveID.
	HostingID string `json:"hosting_id,omitempty"`
}

// EffectiveID returns the identifier used for duplicate detection, preferring
// the hosting-provider id when present
func (t Track) EffectiveID() string {
	if t.HostingID != "" {
		return t.HostingID
	}
	return t.ID
}

// NewEntry builds a playlist entry snapshotting the track's display fields at
// add time. All entry construction goes through this factory.
func NewEntry(t Track) PlaylistEntry {
	return PlaylistEntry{
		TrackID:         t.ID,
		HostingTrackID:  t.HostingID,
		Title:           t.Title,
		ThumbnailRef:    t.ThumbnailRef,
		DurationSeconds: t.DurationSeconds,
		AddedAt:         time.Now(),
	}
}
