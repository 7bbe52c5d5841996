package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"clipstream/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses so the
// client can message duplicate and permission failures distinctly from
// transient ones
func writeDomainError(w http.ResponseWriter, err error) {
	var remoteErr *model.RemoteError

	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidOperation):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrDuplicateEntry):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrStorage):
		writeError(w, http.StatusInternalServerError, "storage failure")
	case errors.As(err, &remoteErr), errors.Is(err, model.ErrNetwork):
		writeError(w, http.StatusBadGateway, "upstream failure")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
