// Package vimeo implements the client for the video-hosting metadata API.
package vimeo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"clipstream/internal/gateway/httpclient"
	"clipstream/internal/model"

	"go.uber.org/zap"
)

// Client talks to the hosting provider's metadata endpoint. Stateless, no
// retries; retry policy, if any, belongs to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Interface = (*Client)(nil)

// NewClient creates a Vimeo metadata client with bearer-token auth
func NewClient(baseURL, token string, base *http.Client, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("vimeo base URL is required")
	}
	if token == "" {
		return nil, fmt.Errorf("vimeo token is required")
	}

	authed := &http.Client{
		Transport: &httpclient.BearerTransport{
			Base:  base.Transport,
			Token: token,
		},
		Timeout: base.Timeout,
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: authed,
		logger:     logger,
	}, nil
}

// GetVideoFiles fetches one video's metadata and playback descriptors
func (c *Client) GetVideoFiles(ctx context.Context, id string) (*model.Track, error) {
	if id == "" {
		return nil, fmt.Errorf("video id is required")
	}

	endpoint := fmt.Sprintf("%s/videos/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create video request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: video request: %v", model.ErrNetwork, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &model.RemoteError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var payload videoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode video response: %w", err)
	}

	track := &model.Track{
		ID:              id,
		Title:           payload.Name,
		DurationSeconds: payload.Duration,
		ThumbnailRef:    largestPicture(payload.Pictures.Sizes),
		PlaybackRef:     playbackRef(payload),
	}

	c.logger.Debug("Fetched video metadata",
		zap.String("video_id", id),
		zap.String("title", track.Title),
		zap.Int("duration_seconds", track.DurationSeconds))

	return track, nil
}

// largestPicture picks the widest thumbnail variant
func largestPicture(sizes []pictureSize) string {
	best := ""
	bestWidth := -1
	for _, s := range sizes {
		if s.Width > bestWidth && s.Link != "" {
			best = s.Link
			bestWidth = s.Width
		}
	}
	return best
}

// playbackRef prefers a direct file link, falling back to the embed URL
func playbackRef(payload videoResponse) string {
	for _, f := range payload.Files {
		if f.Link != "" {
			return f.Link
		}
	}
	return payload.PlayerEmbedURL
}
