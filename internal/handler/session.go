package handler

import (
	"net/http"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/service"
)

// CurrentUser handles GET /session
// Returns the session user, or 204 when nobody is logged in.
func (h *DirectoryHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.dir.CurrentUser()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Login handles POST /session
func (h *DirectoryHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.dir.Login(r.Context(), req.Email)
	if err != nil {
		writeFailure(w, model.OpLogin, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles DELETE /session
func (h *DirectoryHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.dir.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers handles GET /users
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.dir.Users(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(users))
}

// RegisterUser handles POST /users
// Creates a volunteer and logs them in.
func (h *DirectoryHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.dir.RegisterUser(r.Context(), req)
	if err != nil {
		writeFailure(w, model.OpRegisterUser, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// ListVolunteers handles GET /volunteers?q=&skill=&region=
func (h *DirectoryHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := model.VolunteerQuery{
		Term:   query.Get("q"),
		Skill:  model.Skill(query.Get("skill")),
		Region: model.Region(query.Get("region")),
	}
	if q.Skill != "" && !q.Skill.Valid() {
		writeError(w, http.StatusBadRequest, "unknown skill")
		return
	}
	if q.Region != "" && !q.Region.Valid() {
		writeError(w, http.StatusBadRequest, "unknown region")
		return
	}

	volunteers, err := h.dir.Volunteers(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list volunteers")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(volunteers))
}

// sessionUser writes 401 and returns false when nobody is logged in.
func (h *DirectoryHandler) sessionUser(w http.ResponseWriter) (*model.User, bool) {
	user, ok := h.dir.CurrentUser()
	if !ok {
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{
			Error:  "you must be logged in",
			Reason: model.ReasonAuthRequired,
		})
		return nil, false
	}
	return user, true
}

// MyEvents handles GET /me/events?upcoming=true
// Organizers get the events they created, volunteers the events they joined.
func (h *DirectoryHandler) MyEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w)
	if !ok {
		return
	}

	list := h.dir.UserEvents
	if r.URL.Query().Get("upcoming") == "true" {
		list = h.dir.UpcomingEvents
	}
	events, err := list(r.Context(), *user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(events))
}

// Recommended handles GET /me/recommended
func (h *DirectoryHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w)
	if !ok {
		return
	}

	events, err := h.dir.RecommendedEvents(r.Context(), *user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list recommended events")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(events))
}

// Dashboard handles GET /me/dashboard
func (h *DirectoryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dir.Dashboard(r.Context())
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{
				Error:  "you must be logged in",
				Reason: service.ReasonFor(err),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
