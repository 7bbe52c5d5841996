// Package admin implements the client for the playlist-curation API.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"clipstream/internal/gateway/httpclient"
	"clipstream/internal/model"

	"go.uber.org/zap"
)

// Client talks to the admin curation endpoint. Stateless, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Interface = (*Client)(nil)

// NewClient creates an admin API client with bearer-token auth
func NewClient(baseURL, token string, base *http.Client, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("admin base URL is required")
	}

	client := base
	if token != "" {
		client = &http.Client{
			Transport: &httpclient.BearerTransport{
				Base:  base.Transport,
				Token: token,
			},
			Timeout: base.Timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger,
	}, nil
}

// GetPlaylists fetches the curated playlist records
func (c *Client) GetPlaylists(ctx context.Context) ([]model.Playlist, error) {
	endpoint := c.baseURL + "/playlists"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlists request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: playlists request: %v", model.ErrNetwork, err)
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

	var records []playlistRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode playlists response: %w", err)
	}

	playlists := make([]model.Playlist, 0, len(records))
	for _, rec := range records {
		playlists = append(playlists, rec.toPlaylist())
	}

	c.logger.Debug("Fetched curated playlists", zap.Int("count", len(playlists)))

	return playlists, nil
}

// toPlaylist converts a wire record into the domain shape. Entries keep both
// the curation id and the hosting id so duplicate detection can use the
// effective id.
func (rec playlistRecord) toPlaylist() model.Playlist {
	p := model.Playlist{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Entries:     make([]model.PlaylistEntry, 0, len(rec.Videos)),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}

	for _, v := range rec.Videos {
		entry := model.NewEntry(model.Track{
			ID:              v.ID,
			HostingID:       v.VimeoID,
			Title:           v.Title,
			DurationSeconds: v.DurationSeconds,
			ThumbnailRef:    v.ThumbnailURL,
		})
		if !v.AddedAt.IsZero() {
			entry.AddedAt = v.AddedAt
		}
		p.Entries = append(p.Entries, entry)
	}

	p.RecomputeThumbnail()

	return p
}
