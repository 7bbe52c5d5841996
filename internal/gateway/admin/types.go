// Package admin implements the client for the playlist-curation API.
package admin

import "time"

// playlistRecord mirrors one curated playlist as the admin backend returns it
type playlistRecord struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Videos      []videoRecord `json:"videos"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// videoRecord mirrors one curated entry. The curation backend keeps its own
// video ids alongside the hosting provider's id.
type videoRecord struct {
	ID              string    `json:"id"`
	VimeoID         string    `json:"vimeo_id"`
	Title           string    `json:"title"`
	DurationSeconds int       `json:"duration_seconds"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	AddedAt         time.Time `json:"added_at"`
}
