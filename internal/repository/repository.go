// Package repository holds the canonical in-memory user and event
// collections. Every method is safe for concurrent use and returns copies,
// so nothing outside the package can mutate stored state.
package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrEventFull is returned when an event has no remaining volunteer spots.
var ErrEventFull = errors.New("event already has the maximum number of volunteers")

// ErrAlreadyRegistered is returned when a volunteer joins the same event twice.
var ErrAlreadyRegistered = errors.New("volunteer already matched to this event")

// ─── Users ────────────────────────────────────────────────────────────────────

// UserRepository stores users in registration order.
type UserRepository struct {
	mu    sync.RWMutex
	ids   IDGenerator
	users []model.User
}

// NewUserRepository constructs a UserRepository holding a copy of seed.
func NewUserRepository(ids IDGenerator, seed []model.User) *UserRepository {
	users := make([]model.User, 0, len(seed))
	for _, u := range seed {
		users = append(users, u.Clone())
	}
	return &UserRepository{ids: ids, users: users}
}

// Create appends a new non-organizer user built from req and returns it.
func (r *UserRepository) Create(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	user := model.User{
		ID:             r.ids.NextID(),
		Name:           req.Name,
		Email:          req.Email,
		Skills:         append([]model.Skill(nil), req.Skills...),
		Region:         req.Region,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
		IsOrganizer:    false,
	}
	r.users = append(r.users, user)
	out := user.Clone()
	return &out, nil
}

// List returns every user in registration order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, len(r.users))
	for i, u := range r.users {
		users[i] = u.Clone()
	}
	return users, nil
}

// GetByID returns a single user or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.find(ctx, func(u model.User) bool { return u.ID == id })
}

// GetByEmail returns the first user whose email matches exactly, or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.find(ctx, func(u model.User) bool { return u.Email == email })
}

func (r *UserRepository) find(ctx context.Context, match func(model.User) bool) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			out := u.Clone()
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// ─── Events ───────────────────────────────────────────────────────────────────

// EventRepository stores events in creation order.
type EventRepository struct {
	mu     sync.RWMutex
	ids    IDGenerator
	events []model.Event
}

// NewEventRepository constructs an EventRepository holding a copy of seed.
func NewEventRepository(ids IDGenerator, seed []model.Event) *EventRepository {
	events := make([]model.Event, 0, len(seed))
	for _, e := range seed {
		events = append(events, e.Clone())
	}
	return &EventRepository{ids: ids, events: events}
}

// Create appends a new event already joined by volunteers, in order. The
// event becomes visible with its full volunteer list or not at all. More
// volunteers than MaxVolunteers is ErrEventFull. The organizer and
// volunteers are stored by value, so later changes to the user records are
// not reflected.
func (r *EventRepository) Create(ctx context.Context, req model.CreateEventRequest, organizer model.User, volunteers ...model.User) (*model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	if len(volunteers) > req.MaxVolunteers {
		return nil, ErrEventFull
	}
	matched := make([]model.User, 0, len(volunteers))
	for _, v := range volunteers {
		if slices.ContainsFunc(matched, func(m model.User) bool { return m.ID == v.ID }) {
			return nil, ErrAlreadyRegistered
		}
		matched = append(matched, v.Clone())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	event := model.Event{
		ID:                r.ids.NextID(),
		Title:             req.Title,
		Description:       req.Description,
		Date:              req.Date,
		Time:              req.Time,
		Location:          req.Location,
		Region:            req.Region,
		Organizer:         organizer.Clone(),
		RequiredSkills:    append([]model.Skill(nil), req.RequiredSkills...),
		MatchedVolunteers: matched,
		MaxVolunteers:     req.MaxVolunteers,
		IsActive:          active,
	}
	r.events = append(r.events, event)
	out := event.Clone()
	return &out, nil
}

// List returns every event in creation order.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]model.Event, len(r.events))
	for i, e := range r.events {
		events[i] = e.Clone()
	}
	return events, nil
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	out := r.events[i].Clone()
	return &out, nil
}

// Join appends volunteer to the event's matched volunteers.
//
// The capacity check and the append happen under the write lock, so two
// concurrent joins can never both take the last spot. Capacity is checked
// before membership: a full event reports ErrEventFull even for a
// volunteer who is already on it.
//
// The stored event is replaced with a new value holding a fresh volunteer
// slice; copies handed out earlier are never touched.
func (r *EventRepository) Join(ctx context.Context, eventID string, volunteer model.User) (*model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("join event: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(eventID)
	if i < 0 {
		return nil, ErrNotFound
	}
	current := r.events[i]
	if current.IsFull() {
		return nil, ErrEventFull
	}
	if current.HasVolunteer(volunteer.ID) {
		return nil, ErrAlreadyRegistered
	}

	matched := make([]model.User, 0, len(current.MatchedVolunteers)+1)
	matched = append(matched, current.MatchedVolunteers...)
	matched = append(matched, volunteer.Clone())
	current.MatchedVolunteers = matched
	r.events[i] = current

	out := current.Clone()
	return &out, nil
}

func (r *EventRepository) indexOf(id string) int {
	for i, e := range r.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
