package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// filterResponse is returned by the filter endpoints.
type filterResponse struct {
	Skill  model.Skill   `json:"skill"`
	Events []model.Event `json:"events"`
}

// ListEvents handles GET /events?q=
// Returns the skill-filtered events, narrowed by the optional search term.
func (h *DirectoryHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.dir.SearchEvents(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(events))
}

// ListAllEvents handles GET /events/all
// Returns every event regardless of the active filter.
func (h *DirectoryHandler) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.dir.Events(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(events))
}

// GetEvent handles GET /events/{id}
func (h *DirectoryHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.dir.Event(r.Context(), id)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// CreateEvent handles POST /events
// Creates an event organised by the session user, already joined by the
// eligible volunteers that fit.
func (h *DirectoryHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.dir.CreateEvent(r.Context(), req)
	if err != nil {
		writeFailure(w, model.OpCreateEvent, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// MatchVolunteer handles POST /events/{id}/volunteers
// Joins the given user to the event.
func (h *DirectoryHandler) MatchVolunteer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.dir.MatchVolunteerToEvent(r.Context(), id, req.UserID)
	if err != nil {
		writeFailure(w, model.OpMatchVolunteer, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// ListEventVolunteers handles GET /events/{id}/volunteers
// Returns the matched volunteers in join order.
func (h *DirectoryHandler) ListEventVolunteers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.dir.Event(r.Context(), id)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list volunteers")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(event.MatchedVolunteers))
}

// GetFilter handles GET /filter
func (h *DirectoryHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	events, err := h.dir.FilteredEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, filterResponse{Skill: h.dir.ActiveFilter(), Events: orEmpty(events)})
}

// SetFilter handles PUT /filter
// An empty skill clears the filter.
func (h *DirectoryHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req model.FilterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	events, err := h.dir.FilterEventsBySkill(r.Context(), req.Skill)
	if err != nil {
		writeFailure(w, model.OpFilterEvents, err)
		return
	}
	writeJSON(w, http.StatusOK, filterResponse{Skill: req.Skill, Events: orEmpty(events)})
}
