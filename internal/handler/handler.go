// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the directory service.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/repository"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/service"
)

// DirectoryHandler holds all HTTP handlers for the volunteer directory API.
type DirectoryHandler struct {
	dir     *service.Directory
	feed    *service.Feed
	catalog model.Catalog
}

// NewDirectoryHandler constructs a DirectoryHandler. feed may be nil, in
// which case /notifications always returns an empty list.
func NewDirectoryHandler(dir *service.Directory, feed *service.Feed) *DirectoryHandler {
	return &DirectoryHandler{dir: dir, feed: feed, catalog: model.DefaultCatalog()}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// writeFailure reports an operation error with the same text the store put
// in its failure notification.
func writeFailure(w http.ResponseWriter, op string, err error) {
	writeJSON(w, statusFor(err), model.ErrorResponse{
		Error:  service.FailureMessage(op, err),
		Reason: service.ReasonFor(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrOrganizerNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrEventFull),
		errors.Is(err, repository.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// orEmpty returns an empty slice rather than nil for better client compatibility.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Catalog handles GET /catalog
// Returns the known skills and regions.
func (h *DirectoryHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}

// Notifications handles GET /notifications
// Returns the most recent operation outcomes, oldest first.
func (h *DirectoryHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	var items []model.Notification
	if h.feed != nil {
		items = h.feed.Recent()
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}
