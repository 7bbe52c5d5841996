package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetPlaylists(t *testing.T) {
	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/playlists" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "admin-1",
				"name": "Curated Hits",
				"description": "staff picks",
				"videos": [
					{
						"id": "cat-7",
						"vimeo_id": "900123",
						"title": "Song A",
						"duration_seconds": 180,
						"thumbnail_url": "https://cdn.example/a.jpg",
						"added_at": "2025-06-01T12:00:00Z"
					},
					{
						"id": "cat-8",
						"title": "Song B",
						"duration_seconds": 210,
						"thumbnail_url": "https://cdn.example/b.jpg"
					}
				],
				"created_at": "2025-05-01T00:00:00Z",
				"updated_at": "2025-06-01T12:00:00Z"
			}
		]`))
	}))
	defer upstream.Close()

	client, err := NewClient(upstream.URL, "admin-secret", upstream.Client(), zap.NewNop())
	require.NoError(t, err)

	playlists, err := client.GetPlaylists(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer admin-secret", gotAuth)
	require.Len(t, playlists, 1)

	p := playlists[0]
	assert.Equal(t, "admin-1", p.ID)
	assert.Equal(t, "Curated Hits", p.Name)
	require.Len(t, p.Entries, 2)

	// Entry authored under the hosting namespace keeps both identities
	assert.Equal(t, "cat-7", p.Entries[0].TrackID)
	assert.Equal(t, "900123", p.Entries[0].HostingTrackID)
	assert.Equal(t, "900123", p.Entries[0].EffectiveID())
	assert.Equal(t, "cat-8", p.Entries[1].EffectiveID())

	// Thumbnail derives from the first entry
	assert.Equal(t, "https://cdn.example/a.jpg", p.ThumbnailRef)
}

func TestGetPlaylists_RemoteError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer upstream.Close()

	client, err := NewClient(upstream.URL, "", upstream.Client(), zap.NewNop())
	require.NoError(t, err)

	_, err = client.GetPlaylists(context.Background())

	var remoteErr *model.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
}

func TestGetPlaylists_NetworkError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client, err := NewClient(upstream.URL, "", &http.Client{}, zap.NewNop())
	require.NoError(t, err)

	_, err = client.GetPlaylists(context.Background())
	assert.ErrorIs(t, err, model.ErrNetwork)
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient("", "", &http.Client{}, zap.NewNop()); err == nil {
		t.Error("NewClient() should reject an empty base URL")
	}
}
