package service

import (
	"context"
	"time"

	"clipstream/internal/config"
	"clipstream/internal/infrastructure/cache"
	"clipstream/internal/model"

	"go.uber.org/zap"
)

// fakePlaylistRepo keeps the collection in memory and counts writes
type fakePlaylistRepo struct {
	playlists []model.Playlist
	saveErr   error
	saves     int
}

func (f *fakePlaylistRepo) LoadAll(_ context.Context) []model.Playlist {
	return append([]model.Playlist(nil), f.playlists...)
}

func (f *fakePlaylistRepo) SaveAll(_ context.Context, playlists []model.Playlist) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.playlists = append([]model.Playlist(nil), playlists...)
	return nil
}

func (f *fakePlaylistRepo) Clear(_ context.Context) error {
	f.playlists = nil
	return nil
}

type fakeSettingRepo struct {
	values map[string]bool
}

func (f *fakeSettingRepo) GetBool(_ context.Context, key string) (bool, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeSettingRepo) SetBool(_ context.Context, key string, value bool) error {
	if f.values == nil {
		f.values = map[string]bool{}
	}
	f.values[key] = value
	return nil
}

type fakeCachedTrackRepo struct {
	tracks map[string]model.Track
	puts   int
}

func (f *fakeCachedTrackRepo) Get(_ context.Context, trackID string) (*model.Track, error) {
	if t, ok := f.tracks[trackID]; ok {
		found := t
		return &found, nil
	}
	return nil, nil
}

func (f *fakeCachedTrackRepo) Put(_ context.Context, track model.Track) error {
	if f.tracks == nil {
		f.tracks = map[string]model.Track{}
	}
	f.tracks[track.ID] = track
	f.puts++
	return nil
}

func (f *fakeCachedTrackRepo) Delete(_ context.Context, trackID string) error {
	delete(f.tracks, trackID)
	return nil
}

type fakeAdminClient struct {
	playlists []model.Playlist
	err       error
	calls     int
}

func (f *fakeAdminClient) GetPlaylists(_ context.Context) ([]model.Playlist, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Playlist(nil), f.playlists...), nil
}

type fakeVimeoClient struct {
	track *model.Track
	err   error
	calls int
}

func (f *fakeVimeoClient) GetVideoFiles(_ context.Context, _ string) (*model.Track, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	found := *f.track
	return &found, nil
}

// testDeps bundles the fakes behind a freshly wired Service
type testDeps struct {
	svc       *Service
	playlists *fakePlaylistRepo
	settings  *fakeSettingRepo
	snapshots *fakeCachedTrackRepo
	admin     *fakeAdminClient
	vimeo     *fakeVimeoClient
	cache     cache.Cache
}

func newTestDeps() *testDeps {
	d := &testDeps{
		playlists: &fakePlaylistRepo{},
		settings:  &fakeSettingRepo{},
		snapshots: &fakeCachedTrackRepo{},
		admin:     &fakeAdminClient{},
		vimeo:     &fakeVimeoClient{},
		cache: cache.NewManager(config.CacheTTLConfig{
			VideoList:   time.Hour,
			VideoDetail: 24 * time.Hour,
			Thumbnail:   168 * time.Hour,
		}, zap.NewNop()),
	}

	d.svc = New(d.playlists, d.settings, d.snapshots, d.admin, d.vimeo, d.cache, zap.NewNop())
	return d
}

func userPlaylist(id, name string, entries ...model.PlaylistEntry) model.Playlist {
	p := model.Playlist{
		ID:        id,
		Name:      name,
		Entries:   entries,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	p.RecomputeThumbnail()
	return p
}
