// Package server exposes the sync orchestrator over HTTP.
package server

import (
	"context"
	"net/http"

	"clipstream/internal/model"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Orchestrator is the slice of the sync service the HTTP surface consumes
type Orchestrator interface {
	GetPlaylists(ctx context.Context) []model.Playlist
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	CreatePlaylist(ctx context.Context, name, description string) (*model.Playlist, error)
	RenamePlaylist(ctx context.Context, id, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	AddVideoToPlaylist(ctx context.Context, playlistID string, track model.Track) (*model.Playlist, error)
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, trackID string) (*model.Playlist, error)
	GetVideoFiles(ctx context.Context, id string) (*model.Track, error)
	UseAdminAPI(ctx context.Context) bool
	SetUseAdminAPI(ctx context.Context, enabled bool) error
}

// Server is the HTTP surface over the orchestrator
type Server struct {
	svc    Orchestrator
	logger *zap.Logger
}

// NewServer creates the HTTP surface
func NewServer(svc Orchestrator, logger *zap.Logger) *Server {
	return &Server{
		svc:    svc,
		logger: logger,
	}
}

// Router builds the chi router with all routes registered
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(recoverMiddleware(s.logger))
	r.Use(loggingMiddleware(s.logger))

	r.Get("/health", s.handleHealth)

	r.Get("/playlists", s.handleListPlaylists)
	r.Post("/playlists", s.handleCreatePlaylist)
	r.Get("/playlists/{id}", s.handleGetPlaylist)
	r.Patch("/playlists/{id}", s.handleRenamePlaylist)
	r.Delete("/playlists/{id}", s.handleDeletePlaylist)

	r.Post("/playlists/{id}/tracks", s.handleAddTrack)
	r.Delete("/playlists/{id}/tracks/{trackId}", s.handleRemoveTrack)

	r.Get("/videos/{id}/files", s.handleGetVideoFiles)

	r.Get("/settings/admin-api", s.handleGetAdminAPIFlag)
	r.Put("/settings/admin-api", s.handleSetAdminAPIFlag)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "clipstream",
	})
}
