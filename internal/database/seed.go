package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/seed"
)

// Querier is the subset of *pgxpool.Pool the seed import needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	usersQuery = `SELECT id, name, email, skills, region,
		COALESCE(profile_picture, ''), COALESCE(bio, ''), is_organizer
		FROM users
		ORDER BY created_at ASC, id ASC`

	eventsQuery = `SELECT id, title, description,
		to_char(event_date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI'),
		location, region, organizer_id, required_skills, max_volunteers, is_active
		FROM events
		ORDER BY created_at ASC, id ASC`

	volunteersQuery = `SELECT event_id, user_id
		FROM event_volunteers
		ORDER BY joined_at ASC`
)

// LoadSeed reads users, events and their volunteers into a seed document.
// Volunteers keep their join order.
func LoadSeed(ctx context.Context, q Querier) (seed.Document, error) {
	users, err := loadUsers(ctx, q)
	if err != nil {
		return seed.Document{}, err
	}
	events, err := loadEvents(ctx, q)
	if err != nil {
		return seed.Document{}, err
	}
	volunteers, err := loadVolunteers(ctx, q)
	if err != nil {
		return seed.Document{}, err
	}
	for i := range events {
		events[i].VolunteerIDs = volunteers[events[i].ID]
	}
	return seed.Document{Users: users, Events: events}, nil
}

func loadUsers(ctx context.Context, q Querier) ([]model.User, error) {
	rows, err := q.Query(ctx, usersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var (
			u      model.User
			skills []string
			region string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &skills, &region,
			&u.ProfilePicture, &u.Bio, &u.IsOrganizer); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Skills = toSkills(skills)
		u.Region = model.Region(region)
		users = append(users, u)
	}
	return users, rows.Err()
}

func loadEvents(ctx context.Context, q Querier) ([]seed.EventRecord, error) {
	rows, err := q.Query(ctx, eventsQuery)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []seed.EventRecord
	for rows.Next() {
		var (
			e      seed.EventRecord
			skills []string
			region string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time,
			&e.Location, &region, &e.OrganizerID, &skills, &e.MaxVolunteers, &e.IsActive); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.RequiredSkills = toSkills(skills)
		e.Region = model.Region(region)
		events = append(events, e)
	}
	return events, rows.Err()
}

func loadVolunteers(ctx context.Context, q Querier) (map[string][]string, error) {
	rows, err := q.Query(ctx, volunteersQuery)
	if err != nil {
		return nil, fmt.Errorf("list event volunteers: %w", err)
	}
	defer rows.Close()

	byEvent := make(map[string][]string)
	for rows.Next() {
		var eventID, userID string
		if err := rows.Scan(&eventID, &userID); err != nil {
			return nil, fmt.Errorf("scan event volunteer: %w", err)
		}
		byEvent[eventID] = append(byEvent[eventID], userID)
	}
	return byEvent, rows.Err()
}

func toSkills(raw []string) []model.Skill {
	skills := make([]model.Skill, len(raw))
	for i, s := range raw {
		skills[i] = model.Skill(s)
	}
	return skills
}
