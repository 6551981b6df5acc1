package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// Users returns every user in registration order.
func (d *Directory) Users(ctx context.Context) ([]model.User, error) {
	return d.users.List(ctx)
}

// Events returns every event in creation order.
func (d *Directory) Events(ctx context.Context) ([]model.Event, error) {
	return d.events.List(ctx)
}

// Event returns a single event by id.
func (d *Directory) Event(ctx context.Context, id string) (*model.Event, error) {
	event, err := d.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	return event, nil
}

// FilteredEvents applies the active skill filter to the current events.
func (d *Directory) FilteredEvents(ctx context.Context) ([]model.Event, error) {
	events, err := d.events.List(ctx)
	if err != nil {
		return nil, err
	}
	skill := d.ActiveFilter()
	if skill == "" {
		return events, nil
	}
	return filter(events, func(e model.Event) bool { return e.Requires(skill) }), nil
}

// SearchEvents narrows the filtered view to events whose title, description
// or location contains term, ignoring case.
func (d *Directory) SearchEvents(ctx context.Context, term string) ([]model.Event, error) {
	events, err := d.FilteredEvents(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return events, nil
	}
	return filter(events, func(e model.Event) bool {
		return containsFold(e.Title, term) ||
			containsFold(e.Description, term) ||
			containsFold(e.Location, term)
	}), nil
}

// Volunteers lists non-organizers matching q.
func (d *Directory) Volunteers(ctx context.Context, q model.VolunteerQuery) ([]model.User, error) {
	users, err := d.users.List(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Term))
	return filter(users, func(u model.User) bool {
		if u.IsOrganizer {
			return false
		}
		if term != "" && !containsFold(u.Name, term) && !containsFold(u.Bio, term) {
			return false
		}
		if q.Skill != "" && !u.HasSkill(q.Skill) {
			return false
		}
		return q.Region == "" || u.Region == q.Region
	}), nil
}

// RecommendedEvents lists events user is eligible for but has not joined.
// Organizers never get recommendations.
func (d *Directory) RecommendedEvents(ctx context.Context, user model.User) ([]model.Event, error) {
	events, err := d.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(events, func(e model.Event) bool {
		return model.IsEligible(user, e) && !e.HasVolunteer(user.ID)
	}), nil
}

// UserEvents lists the events an organizer created, or the events a
// volunteer has joined.
func (d *Directory) UserEvents(ctx context.Context, user model.User) ([]model.Event, error) {
	events, err := d.events.List(ctx)
	if err != nil {
		return nil, err
	}
	if user.IsOrganizer {
		return filter(events, func(e model.Event) bool { return e.Organizer.ID == user.ID }), nil
	}
	return filter(events, func(e model.Event) bool { return e.HasVolunteer(user.ID) }), nil
}

// UpcomingEvents is UserEvents restricted to events dated today or later.
func (d *Directory) UpcomingEvents(ctx context.Context, user model.User) ([]model.Event, error) {
	events, err := d.UserEvents(ctx, user)
	if err != nil {
		return nil, err
	}
	today := d.now().Format(model.DateLayout)
	return filter(events, func(e model.Event) bool { return e.Date >= today }), nil
}

// Dashboard summarises the session user's activity.
func (d *Directory) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	user, ok := d.CurrentUser()
	if !ok {
		return nil, fmt.Errorf("dashboard: %w", ErrAuthRequired)
	}
	mine, err := d.UserEvents(ctx, *user)
	if err != nil {
		return nil, err
	}
	upcoming, err := d.UpcomingEvents(ctx, *user)
	if err != nil {
		return nil, err
	}
	recommended, err := d.RecommendedEvents(ctx, *user)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		UserID:           user.ID,
		IsOrganizer:      user.IsOrganizer,
		EventCount:       len(mine),
		SkillCount:       len(user.Skills),
		UpcomingCount:    len(upcoming),
		RecommendedCount: len(recommended),
	}
	if user.IsOrganizer {
		for _, e := range mine {
			stats.TotalVolunteers += len(e.MatchedVolunteers)
		}
	}
	return stats, nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// containsFold expects needle already lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
