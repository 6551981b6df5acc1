package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/repository"
)

// CreateEvent creates an event organised by the session user, already
// joined by every eligible volunteer.
//
// Candidates are taken in registration order and fill the event up to its
// capacity; the rest are turned away with a capacity failure, exactly as if
// each had been joined through MatchVolunteerToEvent. That is not a failure
// of CreateEvent. The event is stored together with its volunteers, so no
// reader or concurrent join ever sees it half matched.
func (d *Directory) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	organizer, ok := d.CurrentUser()
	if !ok {
		err := fmt.Errorf("create event: %w", ErrAuthRequired)
		d.fail(ctx, model.OpCreateEvent, err)
		return nil, err
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := validateEvent(req); err != nil {
		d.fail(ctx, model.OpCreateEvent, err)
		return nil, err
	}

	candidates, err := d.eligibleVolunteers(ctx, model.Event{Region: req.Region, RequiredSkills: req.RequiredSkills})
	if err != nil {
		err = fmt.Errorf("create event: %w", err)
		d.fail(ctx, model.OpCreateEvent, err)
		return nil, err
	}
	joined, turnedAway := candidates, []model.User(nil)
	if len(candidates) > req.MaxVolunteers {
		joined, turnedAway = candidates[:req.MaxVolunteers], candidates[req.MaxVolunteers:]
	}

	event, err := d.events.Create(ctx, req, *organizer, joined...)
	if err != nil {
		err = fmt.Errorf("create event: %w", err)
		d.fail(ctx, model.OpCreateEvent, err)
		return nil, err
	}
	d.notify(ctx, model.KindSuccess, model.OpCreateEvent, "Event created successfully!")
	for _, v := range joined {
		d.notify(ctx, model.KindSuccess, model.OpMatchVolunteer,
			fmt.Sprintf("%s has been matched to %s!", v.Name, event.Title))
	}
	for _, v := range turnedAway {
		_ = d.matchFailed(ctx, event.ID, v.ID, repository.ErrEventFull)
	}
	return event, nil
}

// MatchVolunteerToEvent joins userID to eventID.
//
// Checks run in order: both records exist, the user is not an organizer
// (unless AllowOrganizerJoins), the event has a free spot, and the user has
// not already joined. Any failure leaves the event unchanged.
func (d *Directory) MatchVolunteerToEvent(ctx context.Context, eventID, userID string) (*model.Event, error) {
	event, err := d.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, d.matchFailed(ctx, eventID, userID, err)
	}
	user, err := d.users.GetByID(ctx, userID)
	if err != nil {
		return nil, d.matchFailed(ctx, eventID, userID, err)
	}
	if user.IsOrganizer && !d.allowOrganizerJoins {
		return nil, d.matchFailed(ctx, eventID, userID, ErrOrganizerNotAllowed)
	}

	updated, err := d.events.Join(ctx, eventID, *user)
	if err != nil {
		return nil, d.matchFailed(ctx, eventID, userID, err)
	}
	d.notify(ctx, model.KindSuccess, model.OpMatchVolunteer,
		fmt.Sprintf("%s has been matched to %s!", user.Name, event.Title))
	return updated, nil
}

func (d *Directory) matchFailed(ctx context.Context, eventID, userID string, err error) error {
	err = fmt.Errorf("match volunteer %s to event %s: %w", userID, eventID, err)
	d.fail(ctx, model.OpMatchVolunteer, err)
	return err
}

// FilterEventsBySkill sets the active skill filter and returns the filtered
// view. An empty skill clears the filter. The event collection is not touched.
func (d *Directory) FilterEventsBySkill(ctx context.Context, skill model.Skill) ([]model.Event, error) {
	if skill != "" && !skill.Valid() {
		err := invalid("Unknown skill %q", skill)
		d.fail(ctx, model.OpFilterEvents, err)
		return nil, err
	}
	d.mu.Lock()
	d.skillFilter = skill
	d.mu.Unlock()
	return d.FilteredEvents(ctx)
}

// ActiveFilter returns the current skill filter, or "" when none is set.
func (d *Directory) ActiveFilter() model.Skill {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.skillFilter
}

func (d *Directory) eligibleVolunteers(ctx context.Context, event model.Event) ([]model.User, error) {
	users, err := d.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var eligible []model.User
	for _, u := range users {
		if model.IsEligible(u, event) {
			eligible = append(eligible, u)
		}
	}
	return eligible, nil
}
