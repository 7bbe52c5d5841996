// Package admin implements the client for the playlist-curation API.
package admin

import (
	"context"

	"clipstream/internal/model"
)

// Interface defines the operations against the admin curation backend
type Interface interface {
	// GetPlaylists fetches the curated playlist records
	GetPlaylists(ctx context.Context) ([]model.Playlist, error)
}
