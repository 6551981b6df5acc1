package model

import "time"

// NotificationKind classifies the outcome an operation reports.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindInfo    NotificationKind = "info"
	KindFailure NotificationKind = "failure"
)

// Reason names why an operation failed. Empty on success.
type Reason string

const (
	ReasonNotFound            Reason = "not_found"
	ReasonAuthRequired        Reason = "auth_required"
	ReasonCapacityExceeded    Reason = "capacity_exceeded"
	ReasonDuplicateMembership Reason = "duplicate_membership"
	ReasonOrganizerNotAllowed Reason = "organizer_not_allowed"
	ReasonInvalidInput        Reason = "invalid_input"
)

// Operation names, used in notifications and metrics labels.
const (
	OpRegisterUser   = "register_user"
	OpLogin          = "login"
	OpLogout         = "logout"
	OpCreateEvent    = "create_event"
	OpMatchVolunteer = "match_volunteer"
	OpFilterEvents   = "filter_events"
)

// Notification is the human-readable outcome of a single store operation.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Operation string           `json:"operation"`
	Message   string           `json:"message"`
	Reason    Reason           `json:"reason,omitempty"`
	At        time.Time        `json:"at"`
}
