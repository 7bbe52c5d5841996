// Package model contains the domain types shared across layers.
//
// Group: ERRORS - Domain error taxonomy
// Contains: ErrNotFound, ErrInvalidOperation, ErrDuplicateEntry, ErrStorage, ErrNetwork, RemoteError
package model

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the sync service and its collaborators. Callers
// discriminate with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrNotFound is returned when a playlist or track id resolves to nothing
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation is returned for mutations on admin-owned playlists
	ErrInvalidOperation = errors.New("operation not permitted")

	// ErrDuplicateEntry is returned when a track is already in the playlist
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrStorage wraps local persistence failures
	ErrStorage = errors.New("storage failure")

	// ErrNetwork wraps transport-level failures talking to an upstream API
	ErrNetwork = errors.New("network failure")
)

// RemoteError is returned when an upstream API answers with a non-2xx status
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote request failed with status %d: %s", e.StatusCode, e.Body)
}
