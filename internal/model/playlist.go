// Package model contains the domain types shared across layers.
//
// Group: ENTITIES - Playlist entities
// Contains: Playlist, PlaylistEntry
package model

import "time"

// PlaylistEntry is a track reference inside a playlist, carrying a denormalized
// snapshot of the track's display fields taken when it was added.
type PlaylistEntry struct {
	TrackID         string    `json:"track_id"`
	HostingTrackID  string    `json:"hosting_track_id,omitempty"`
	Title           string    `json:"title"`
	ThumbnailRef    string    `json:"thumbnail_ref,omitempty"`
	DurationSeconds int       `json:"duration_seconds"`
	AddedAt         time.Time `json:"added_at"`
}

// EffectiveID returns the identifier used for duplicate detection
func (e PlaylistEntry) EffectiveID() string {
	if e.HostingTrackID != "" {
		return e.HostingTrackID
	}
	return e.TrackID
}

// Matches reports whether the entry refers to the given id through either of
// its identity fields
func (e PlaylistEntry) Matches(id string) bool {
	if id == "" {
		return false
	}
	return e.TrackID == id || e.HostingTrackID == id
}

// Playlist is a named, ordered collection of track references. User playlists
// are locally mutable; admin playlists come from the curation backend and are
// read-only.
type Playlist struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Entries      []PlaylistEntry `json:"entries"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	IsAdminOwned bool            `json:"is_admin_owned"`
	ThumbnailRef string          `json:"thumbnail_ref,omitempty"`
}

// ContainsTrack reports whether an entry with the same effective id exists
func (p *Playlist) ContainsTrack(effectiveID string) bool {
	for _, e := range p.Entries {
		if e.EffectiveID() == effectiveID {
			return true
		}
	}
	return false
}

// RecomputeThumbnail derives the playlist thumbnail from the first entry.
// Called after every entry mutation.
func (p *Playlist) RecomputeThumbnail() {
	if len(p.Entries) == 0 {
		p.ThumbnailRef = ""
		return
	}
	p.ThumbnailRef = p.Entries[0].ThumbnailRef
}

// Touch bumps UpdatedAt, keeping it monotonically non-decreasing
func (p *Playlist) Touch() {
	now := time.Now()
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}
