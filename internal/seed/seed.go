// Package seed provides the initial users and events the directory starts
// with, and checks that a seed satisfies the data-model invariants before
// the store is built from it.
package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// ErrInvalidSeed is returned when a seed document breaks an invariant.
var ErrInvalidSeed = errors.New("invalid seed")

// Document is the serialised form of a seed. Events refer to users by id.
type Document struct {
	Users  []model.User  `json:"users"`
	Events []EventRecord `json:"events"`
}

// EventRecord is an event whose organizer and volunteers are user ids.
type EventRecord struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Location       string        `json:"location"`
	Region         model.Region  `json:"region"`
	OrganizerID    string        `json:"organizer_id"`
	RequiredSkills []model.Skill `json:"required_skills"`
	VolunteerIDs   []string      `json:"volunteer_ids"`
	MaxVolunteers  int           `json:"max_volunteers"`
	IsActive       bool          `json:"is_active"`
}

// Data is a resolved seed, ready to load into the repositories.
type Data struct {
	Users  []model.User
	Events []model.Event
}

// UserIDs returns the ids of every seeded user.
func (d Data) UserIDs() []string {
	ids := make([]string, len(d.Users))
	for i, u := range d.Users {
		ids[i] = u.ID
	}
	return ids
}

// EventIDs returns the ids of every seeded event.
func (d Data) EventIDs() []string {
	ids := make([]string, len(d.Events))
	for i, e := range d.Events {
		ids[i] = e.ID
	}
	return ids
}

// LoadFile reads a JSON seed document from path.
func LoadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read seed file: %w", err)
	}
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return doc, nil
}

// Resolve validates the document and replaces user ids with user values.
// Organizers and volunteers are copied, matching how events capture users.
func (doc Document) Resolve() (Data, error) {
	byID := make(map[string]model.User, len(doc.Users))
	users := make([]model.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		if u.ID == "" {
			return Data{}, fmt.Errorf("%w: user %q has no id", ErrInvalidSeed, u.Email)
		}
		if _, dup := byID[u.ID]; dup {
			return Data{}, fmt.Errorf("%w: duplicate user id %s", ErrInvalidSeed, u.ID)
		}
		if !u.Region.Valid() {
			return Data{}, fmt.Errorf("%w: user %s has unknown region %q", ErrInvalidSeed, u.ID, u.Region)
		}
		if err := checkSkills(u.Skills); err != nil {
			return Data{}, fmt.Errorf("%w: user %s: %v", ErrInvalidSeed, u.ID, err)
		}
		byID[u.ID] = u
		users = append(users, u.Clone())
	}

	seen := make(map[string]bool, len(doc.Events))
	events := make([]model.Event, 0, len(doc.Events))
	for _, r := range doc.Events {
		event, err := r.resolve(byID)
		if err != nil {
			return Data{}, err
		}
		if seen[event.ID] {
			return Data{}, fmt.Errorf("%w: duplicate event id %s", ErrInvalidSeed, event.ID)
		}
		seen[event.ID] = true
		events = append(events, event)
	}
	return Data{Users: users, Events: events}, nil
}

func (r EventRecord) resolve(users map[string]model.User) (model.Event, error) {
	fail := func(format string, args ...any) (model.Event, error) {
		return model.Event{}, fmt.Errorf("%w: event %s: %s", ErrInvalidSeed, r.ID, fmt.Sprintf(format, args...))
	}
	if r.ID == "" {
		return fail("missing id")
	}
	if !r.Region.Valid() {
		return fail("unknown region %q", r.Region)
	}
	if len(r.RequiredSkills) == 0 {
		return fail("no required skills")
	}
	if err := checkSkills(r.RequiredSkills); err != nil {
		return fail("%v", err)
	}
	if r.MaxVolunteers <= 0 {
		return fail("max volunteers must be positive")
	}
	if len(r.VolunteerIDs) > r.MaxVolunteers {
		return fail("%d volunteers exceed capacity %d", len(r.VolunteerIDs), r.MaxVolunteers)
	}
	organizer, ok := users[r.OrganizerID]
	if !ok {
		return fail("unknown organizer %q", r.OrganizerID)
	}

	matched := make([]model.User, 0, len(r.VolunteerIDs))
	joined := make(map[string]bool, len(r.VolunteerIDs))
	for _, id := range r.VolunteerIDs {
		v, ok := users[id]
		if !ok {
			return fail("unknown volunteer %q", id)
		}
		if joined[id] {
			return fail("volunteer %s listed twice", id)
		}
		joined[id] = true
		matched = append(matched, v.Clone())
	}

	return model.Event{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Date:              r.Date,
		Time:              r.Time,
		Location:          r.Location,
		Region:            r.Region,
		Organizer:         organizer.Clone(),
		RequiredSkills:    append([]model.Skill(nil), r.RequiredSkills...),
		MatchedVolunteers: matched,
		MaxVolunteers:     r.MaxVolunteers,
		IsActive:          r.IsActive,
	}, nil
}

func checkSkills(skills []model.Skill) error {
	for _, s := range skills {
		if !s.Valid() {
			return fmt.Errorf("unknown skill %q", s)
		}
	}
	return nil
}
