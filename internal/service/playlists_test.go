package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clipstream/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlaylists_LocalOnlyWhenFlagOff(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.playlists.playlists = []model.Playlist{
		userPlaylist("pl-1", "Chill"),
		userPlaylist("pl-2", "Workout"),
	}
	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}
	require.NoError(t, d.svc.SetUseAdminAPI(ctx, false))

	got := d.svc.GetPlaylists(ctx)

	assert.Len(t, got, 2)
	// The remote admin endpoint must not be contacted at all
	assert.Equal(t, 0, d.admin.calls)
}

func TestGetPlaylists_MergesAdminAfterLocal(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.playlists.playlists = []model.Playlist{userPlaylist("pl-1", "Chill")}
	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}

	got := d.svc.GetPlaylists(ctx)

	require.Len(t, got, 2)
	assert.Equal(t, "pl-1", got[0].ID)
	assert.Equal(t, "admin-1", got[1].ID)
	assert.False(t, got[0].IsAdminOwned)
	assert.True(t, got[1].IsAdminOwned)
}

func TestGetPlaylists_DegradesToLocalOnRemoteFailure(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.playlists.playlists = []model.Playlist{
		userPlaylist("pl-1", "Chill"),
		userPlaylist("pl-2", "Workout"),
	}
	d.admin.err = fmt.Errorf("%w: connection refused", model.ErrNetwork)

	got := d.svc.GetPlaylists(ctx)

	assert.Len(t, got, 2)
}

func TestGetPlaylists_EmptyEverywhereReturnsEmpty(t *testing.T) {
	d := newTestDeps()
	d.admin.err = fmt.Errorf("%w: connection refused", model.ErrNetwork)

	got := d.svc.GetPlaylists(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetPlaylists_AdminListServedFromCache(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}

	d.svc.GetPlaylists(ctx)
	d.svc.GetPlaylists(ctx)

	assert.Equal(t, 1, d.admin.calls)
}

func TestCreatePlaylist(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "evening mix")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Chill", created.Name)
	assert.Equal(t, "evening mix", created.Description)
	assert.False(t, created.IsAdminOwned)
	assert.Empty(t, created.Entries)
	assert.Empty(t, created.ThumbnailRef)
	assert.Equal(t, 1, d.playlists.saves)

	_, err = d.svc.CreatePlaylist(ctx, "  ", "")
	assert.ErrorIs(t, err, model.ErrInvalidOperation)
}

func TestCreatePlaylist_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := newPlaylistID()
		if seen[id] {
			t.Fatalf("newPlaylistID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestAddVideoToPlaylist(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	require.NoError(t, err)

	track := model.Track{ID: "123", Title: "Song A", DurationSeconds: 180, ThumbnailRef: "thumb.jpg"}

	updated, err := d.svc.AddVideoToPlaylist(ctx, created.ID, track)
	require.NoError(t, err)

	require.Len(t, updated.Entries, 1)
	assert.Equal(t, "Song A", updated.Entries[0].Title)
	assert.Equal(t, "thumb.jpg", updated.ThumbnailRef)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// The add must be visible through a subsequent read
	playlists := d.svc.GetPlaylists(ctx)
	require.Len(t, playlists, 1)
	require.Len(t, playlists[0].Entries, 1)
	assert.Equal(t, "123", playlists[0].Entries[0].EffectiveID())
}

func TestAddVideoToPlaylist_DuplicateRejected(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	require.NoError(t, err)

	track := model.Track{ID: "internal-1", HostingID: "vimeo-9", Title: "Song A"}

	_, err = d.svc.AddVideoToPlaylist(ctx, created.ID, track)
	require.NoError(t, err)

	// Same effective id through a different internal id is still a duplicate
	_, err = d.svc.AddVideoToPlaylist(ctx, created.ID, model.Track{ID: "internal-2", HostingID: "vimeo-9", Title: "Song A again"})
	assert.ErrorIs(t, err, model.ErrDuplicateEntry)

	got, err := d.svc.GetPlaylist(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 1)
}

func TestAddVideoToPlaylist_NotFound(t *testing.T) {
	d := newTestDeps()

	_, err := d.svc.AddVideoToPlaylist(context.Background(), "missing", model.Track{ID: "1", Title: "Song"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAddVideoToPlaylist_AdminPlaylistRejected(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}

	_, err := d.svc.AddVideoToPlaylist(ctx, "admin-1", model.Track{ID: "1", Title: "Song"})
	assert.ErrorIs(t, err, model.ErrInvalidOperation)
	assert.Equal(t, 0, d.playlists.saves)
}

func TestRemoveVideoFromPlaylist_Idempotent(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	require.NoError(t, err)
	_, err = d.svc.AddVideoToPlaylist(ctx, created.ID, model.Track{ID: "123", Title: "Song A"})
	require.NoError(t, err)

	first, err := d.svc.RemoveVideoFromPlaylist(ctx, created.ID, "123")
	require.NoError(t, err)
	assert.Empty(t, first.Entries)
	assert.Empty(t, first.ThumbnailRef)

	savesAfterFirst := d.playlists.saves

	// The retried delete succeeds and changes nothing
	second, err := d.svc.RemoveVideoFromPlaylist(ctx, created.ID, "123")
	require.NoError(t, err)
	assert.Empty(t, second.Entries)
	assert.Equal(t, savesAfterFirst, d.playlists.saves)
}

func TestRemoveVideoFromPlaylist_MatchesEitherIDField(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	require.NoError(t, err)
	_, err = d.svc.AddVideoToPlaylist(ctx, created.ID, model.Track{ID: "internal-1", HostingID: "vimeo-9", Title: "Song A"})
	require.NoError(t, err)

	updated, err := d.svc.RemoveVideoFromPlaylist(ctx, created.ID, "internal-1")
	require.NoError(t, err)
	assert.Empty(t, updated.Entries)
}

func TestRemoveVideoFromPlaylist_AdminPlaylistRejected(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}

	_, err := d.svc.RemoveVideoFromPlaylist(ctx, "admin-1", "123")
	assert.ErrorIs(t, err, model.ErrInvalidOperation)
	assert.Equal(t, 0, d.playlists.saves)
}

func TestDeletePlaylist(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	require.NoError(t, err)

	require.NoError(t, d.svc.DeletePlaylist(ctx, created.ID))

	_, err = d.svc.GetPlaylist(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, d.svc.DeletePlaylist(ctx, created.ID), model.ErrNotFound)
}

func TestDeletePlaylist_AdminPlaylistRejected(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}
	savesBefore := d.playlists.saves

	err := d.svc.DeletePlaylist(ctx, "admin-1")
	assert.ErrorIs(t, err, model.ErrInvalidOperation)
	assert.Equal(t, savesBefore, d.playlists.saves)
}

func TestRenamePlaylist(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "old")
	require.NoError(t, err)

	renamed, err := d.svc.RenamePlaylist(ctx, created.ID, "Chillier", "new")
	require.NoError(t, err)
	assert.Equal(t, "Chillier", renamed.Name)
	assert.Equal(t, "new", renamed.Description)

	_, err = d.svc.RenamePlaylist(ctx, "missing", "Name", "")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWriteFailurePropagates(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.playlists.saveErr = fmt.Errorf("%w: disk full", model.ErrStorage)

	_, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	assert.True(t, errors.Is(err, model.ErrStorage))
}

func TestCreateAddGetScenario(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()
	require.NoError(t, d.svc.SetUseAdminAPI(ctx, false))

	created, err := d.svc.CreatePlaylist(ctx, "Chill", "")
	require.NoError(t, err)

	_, err = d.svc.AddVideoToPlaylist(ctx, created.ID, model.Track{ID: "123", Title: "Song A", DurationSeconds: 180, ThumbnailRef: "thumb.jpg"})
	require.NoError(t, err)

	playlists := d.svc.GetPlaylists(ctx)
	require.Len(t, playlists, 1)
	assert.Equal(t, "Chill", playlists[0].Name)
	require.Len(t, playlists[0].Entries, 1)
	assert.Equal(t, "Song A", playlists[0].Entries[0].Title)
	assert.Equal(t, "thumb.jpg", playlists[0].ThumbnailRef)
}

func TestSetUseAdminAPI_InvalidatesCachedView(t *testing.T) {
	d := newTestDeps()
	ctx := context.Background()

	d.admin.playlists = []model.Playlist{{ID: "admin-1", Name: "Curated"}}

	d.svc.GetPlaylists(ctx)
	require.NoError(t, d.svc.SetUseAdminAPI(ctx, true))
	d.svc.GetPlaylists(ctx)

	assert.Equal(t, 2, d.admin.calls)
}
