package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrack_EffectiveID(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{
			name:  "hosting id preferred",
			track: Track{ID: "internal-1", HostingID: "vimeo-9"},
			want:  "vimeo-9",
		},
		{
			name:  "falls back to internal id",
			track: Track{ID: "internal-1"},
			want:  "internal-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.EffectiveID(); got != tt.want {
				t.Errorf("EffectiveID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaylistEntry_Matches(t *testing.T) {
	entry := PlaylistEntry{TrackID: "internal-1", HostingTrackID: "vimeo-9"}

	assert.True(t, entry.Matches("internal-1"))
	assert.True(t, entry.Matches("vimeo-9"))
	assert.False(t, entry.Matches("other"))

	// An empty query must not match entries with an empty HostingTrackID
	bare := PlaylistEntry{TrackID: "internal-1"}
	assert.False(t, bare.Matches(""))
}

func TestNewEntry_Snapshot(t *testing.T) {
	track := Track{
		ID:              "internal-1",
		HostingID:       "vimeo-9",
		Title:           "Song A",
		DurationSeconds: 180,
		ThumbnailRef:    "https://cdn.example/thumb.jpg",
	}

	entry := NewEntry(track)

	assert.Equal(t, "internal-1", entry.TrackID)
	assert.Equal(t, "vimeo-9", entry.HostingTrackID)
	assert.Equal(t, "Song A", entry.Title)
	assert.Equal(t, 180, entry.DurationSeconds)
	assert.Equal(t, "https://cdn.example/thumb.jpg", entry.ThumbnailRef)
	assert.False(t, entry.AddedAt.IsZero())
}

func TestPlaylist_RecomputeThumbnail(t *testing.T) {
	p := Playlist{
		Entries: []PlaylistEntry{
			{TrackID: "1", ThumbnailRef: "first.jpg"},
			{TrackID: "2", ThumbnailRef: "second.jpg"},
		},
	}

	p.RecomputeThumbnail()
	if p.ThumbnailRef != "first.jpg" {
		t.Errorf("ThumbnailRef = %q, want %q", p.ThumbnailRef, "first.jpg")
	}

	p.Entries = p.Entries[1:]
	p.RecomputeThumbnail()
	if p.ThumbnailRef != "second.jpg" {
		t.Errorf("ThumbnailRef = %q, want %q", p.ThumbnailRef, "second.jpg")
	}

	p.Entries = nil
	p.RecomputeThumbnail()
	if p.ThumbnailRef != "" {
		t.Errorf("ThumbnailRef = %q, want empty after last entry removed", p.ThumbnailRef)
	}
}

func TestPlaylist_ContainsTrack(t *testing.T) {
	p := Playlist{
		Entries: []PlaylistEntry{
			{TrackID: "internal-1", HostingTrackID: "vimeo-9"},
			{TrackID: "internal-2"},
		},
	}

	// Effective id of the first entry is the hosting id
	assert.True(t, p.ContainsTrack("vimeo-9"))
	assert.False(t, p.ContainsTrack("internal-1"))
	assert.True(t, p.ContainsTrack("internal-2"))
}

func TestPlaylist_TouchMonotonic(t *testing.T) {
	future := time.Now().Add(time.Hour)
	p := Playlist{UpdatedAt: future}

	p.Touch()
	if !p.UpdatedAt.Equal(future) {
		t.Errorf("Touch() moved UpdatedAt backwards: %v", p.UpdatedAt)
	}

	p.UpdatedAt = time.Now().Add(-time.Hour)
	before := p.UpdatedAt
	p.Touch()
	if !p.UpdatedAt.After(before) {
		t.Errorf("Touch() did not advance UpdatedAt")
	}
}
