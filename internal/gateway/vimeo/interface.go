// Package vimeo implements the client for the video-hosting metadata API.
package vimeo

import (
	"context"

	"clipstream/internal/model"
)

// Interface defines the operations against the hosting provider's API
type Interface interface {
	// GetVideoFiles fetches the metadata and playback descriptors for one video
	GetVideoFiles(ctx context.Context, id string) (*model.Track, error)
}
