package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"clipstream/internal/model"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAddTrack(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	var body struct {
		TrackID         string `json:"track_id"`
		HostingID       string `json:"hosting_id"`
		Title           string `json:"title"`
		DurationSeconds int    `json:"duration_seconds"`
		ThumbnailRef    string `json:"thumbnail_ref"`
		PlaybackRef     string `json:"playback_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.TrackID = strings.TrimSpace(body.TrackID)
	body.HostingID = strings.TrimSpace(body.HostingID)
	body.Title = strings.TrimSpace(body.Title)

	if body.TrackID == "" && body.HostingID == "" {
		writeError(w, http.StatusBadRequest, "track_id or hosting_id is required")
		return
	}
	if body.Title == "" || len(body.Title) > 300 {
		writeError(w, http.StatusBadRequest, "title must be between 1 and 300 characters")
		return
	}
	if body.DurationSeconds < 0 {
		writeError(w, http.StatusBadRequest, "duration_seconds must be non-negative")
		return
	}

	track := model.Track{
		ID:              body.TrackID,
		HostingID:       body.HostingID,
		Title:           body.Title,
		DurationSeconds: body.DurationSeconds,
		ThumbnailRef:    body.ThumbnailRef,
		PlaybackRef:     body.PlaybackRef,
	}

	playlist, err := s.svc.AddVideoToPlaylist(r.Context(), playlistID, track)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

func (s *Server) handleRemoveTrack(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")
	trackID := chi.URLParam(r, "trackId")
	if playlistID == "" || trackID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist or track id")
		return
	}

	playlist, err := s.svc.RemoveVideoFromPlaylist(r.Context(), playlistID, trackID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}
