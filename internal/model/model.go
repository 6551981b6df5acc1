// Package model defines the core domain types for the volunteer directory.
package model

import "slices"

// User is a registered volunteer or organizer.
type User struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Skills         []Skill `json:"skills"`
	Region         Region  `json:"region"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	Bio            string  `json:"bio,omitempty"`
	IsOrganizer    bool    `json:"is_organizer"`
}

// HasSkill reports whether the user lists skill.
func (u User) HasSkill(skill Skill) bool {
	return slices.Contains(u.Skills, skill)
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.Skills = slices.Clone(u.Skills)
	return u
}

// Layouts of Event.Date and Event.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is a volunteer opportunity created by an organizer.
type Event struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	Location          string  `json:"location"`
	Region            Region  `json:"region"`
	Organizer         User    `json:"organizer"`
	RequiredSkills    []Skill `json:"required_skills"`
	MatchedVolunteers []User  `json:"matched_volunteers"`
	MaxVolunteers     int     `json:"max_volunteers"`
	IsActive          bool    `json:"is_active"`
}

// Remaining returns the number of open volunteer spots.
func (e *Event) Remaining() int {
	return e.MaxVolunteers - len(e.MatchedVolunteers)
}

// IsFull returns true when no spots remain.
func (e *Event) IsFull() bool {
	return len(e.MatchedVolunteers) >= e.MaxVolunteers
}

// Requires reports whether skill is one of the event's required skills.
func (e *Event) Requires(skill Skill) bool {
	return slices.Contains(e.RequiredSkills, skill)
}

// HasVolunteer reports whether userID has already joined the event.
func (e *Event) HasVolunteer(userID string) bool {
	return slices.ContainsFunc(e.MatchedVolunteers, func(v User) bool { return v.ID == userID })
}

// Clone returns a deep copy so callers can never alias the stored event.
func (e Event) Clone() Event {
	e.Organizer = e.Organizer.Clone()
	e.RequiredSkills = slices.Clone(e.RequiredSkills)
	matched := make([]User, len(e.MatchedVolunteers))
	for i, v := range e.MatchedVolunteers {
		matched[i] = v.Clone()
	}
	e.MatchedVolunteers = matched
	return e
}

// IsEligible is the matching predicate shared by auto-match and
// recommendations: same region, at least one shared skill, not an organizer.
func IsEligible(user User, event Event) bool {
	if user.IsOrganizer || user.Region != event.Region {
		return false
	}
	return slices.ContainsFunc(user.Skills, event.Requires)
}

// ─── Requests ─────────────────────────────────────────────────────────────────

// RegisterUserRequest is the payload for registering a new volunteer.
type RegisterUserRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Skills         []Skill `json:"skills"`
	Region         Region  `json:"region"`
	Bio            string  `json:"bio,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
}

// CreateEventRequest is the payload for creating a new event.
// IsActive defaults to true when omitted.
type CreateEventRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Location       string  `json:"location"`
	Region         Region  `json:"region"`
	RequiredSkills []Skill `json:"required_skills"`
	MaxVolunteers  int     `json:"max_volunteers"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// LoginRequest is the payload for starting a session.
type LoginRequest struct {
	Email string `json:"email"`
}

// MatchRequest is the payload for joining a volunteer to an event.
type MatchRequest struct {
	UserID string `json:"user_id"`
}

// FilterRequest sets or clears the active skill filter. An empty skill clears it.
type FilterRequest struct {
	Skill Skill `json:"skill"`
}

// VolunteerQuery narrows the volunteer directory. Empty fields match everything.
type VolunteerQuery struct {
	Term   string
	Skill  Skill
	Region Region
}

// DashboardStats summarises the session user's activity.
type DashboardStats struct {
	UserID           string `json:"user_id"`
	IsOrganizer      bool   `json:"is_organizer"`
	EventCount       int    `json:"event_count"`
	SkillCount       int    `json:"skill_count"`
	TotalVolunteers  int    `json:"total_volunteers"`
	UpcomingCount    int    `json:"upcoming_count"`
	RecommendedCount int    `json:"recommended_count"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason Reason `json:"reason,omitempty"`
}
