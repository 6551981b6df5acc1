// Package service implements the volunteer directory's business rules:
// the session, registration, event creation with auto-matching, manual
// matching and the skill filter. It orchestrates the repository layer and
// reports every outcome through a Notifier.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
	"github.com/Shivanand-hulikatti/volunteer-connect/internal/repository"
)

// ErrAuthRequired is returned when an operation needs a session and there is none.
var ErrAuthRequired = errors.New("you must be logged in")

// ErrOrganizerNotAllowed is returned when an organizer is joined to an event.
var ErrOrganizerNotAllowed = errors.New("organizers cannot join events as volunteers")

// ErrInvalidInput is returned when a request breaks the caller-facing contract.
var ErrInvalidInput = errors.New("invalid input")

// Option configures a Directory.
type Option func(*Directory)

// WithNotifier sets where operation outcomes are reported.
func WithNotifier(n Notifier) Option {
	return func(d *Directory) { d.notifier = n }
}

// WithClock overrides the time source used for notifications and the
// upcoming-events view.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// AllowOrganizerJoins disables the organizer check in MatchVolunteerToEvent,
// leaving the guard to the presentation layer.
func AllowOrganizerJoins(allow bool) Option {
	return func(d *Directory) { d.allowOrganizerJoins = allow }
}

// Directory is the domain store. It owns the session and the active skill
// filter; users and events live in the repositories it wraps.
type Directory struct {
	users  *repository.UserRepository
	events *repository.EventRepository

	notifier            Notifier
	now                 func() time.Time
	allowOrganizerJoins bool

	mu          sync.RWMutex
	current     *model.User
	skillFilter model.Skill
}

// NewDirectory constructs a Directory with its dependencies.
func NewDirectory(
	users *repository.UserRepository,
	events *repository.EventRepository,
	opts ...Option,
) *Directory {
	d := &Directory{
		users:    users,
		events:   events,
		notifier: Discard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ─── Session ──────────────────────────────────────────────────────────────────

// RegisterUser creates a new volunteer and starts a session for them.
// Duplicate emails are accepted.
func (d *Directory) RegisterUser(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRegistration(req); err != nil {
		d.fail(ctx, model.OpRegisterUser, err)
		return nil, err
	}

	user, err := d.users.Create(ctx, req)
	if err != nil {
		err = fmt.Errorf("register user: %w", err)
		d.fail(ctx, model.OpRegisterUser, err)
		return nil, err
	}

	d.setCurrent(user)
	d.notify(ctx, model.KindSuccess, model.OpRegisterUser, "Account created successfully!")
	return user, nil
}

// Login starts a session for the first user whose email matches exactly.
// On no match the session is left as it was.
func (d *Directory) Login(ctx context.Context, email string) (*model.User, error) {
	user, err := d.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = fmt.Errorf("login %q: %w", email, repository.ErrNotFound)
		} else {
			err = fmt.Errorf("login: %w", err)
		}
		d.fail(ctx, model.OpLogin, err)
		return nil, err
	}

	d.setCurrent(user)
	d.notify(ctx, model.KindSuccess, model.OpLogin, fmt.Sprintf("Welcome back, %s!", user.Name))
	return user, nil
}

// Logout ends the session. Calling it while logged out is harmless.
func (d *Directory) Logout(ctx context.Context) {
	d.setCurrent(nil)
	d.notify(ctx, model.KindInfo, model.OpLogout, "You have been logged out.")
}

// CurrentUser returns the session user, if any.
func (d *Directory) CurrentUser() (*model.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.current == nil {
		return nil, false
	}
	u := d.current.Clone()
	return &u, true
}

func (d *Directory) setCurrent(user *model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if user == nil {
		d.current = nil
		return
	}
	u := user.Clone()
	d.current = &u
}

// ─── Notifications ────────────────────────────────────────────────────────────

func (d *Directory) notify(ctx context.Context, kind model.NotificationKind, op, msg string) {
	d.notifier.Notify(ctx, model.Notification{
		Kind:      kind,
		Operation: op,
		Message:   msg,
		At:        d.now(),
	})
}

func (d *Directory) fail(ctx context.Context, op string, err error) {
	d.notifier.Notify(ctx, model.Notification{
		Kind:      model.KindFailure,
		Operation: op,
		Message:   FailureMessage(op, err),
		Reason:    ReasonFor(err),
		At:        d.now(),
	})
}

// ReasonFor maps an operation error to the reason reported to callers.
func ReasonFor(err error) model.Reason {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return model.ReasonNotFound
	case errors.Is(err, ErrAuthRequired):
		return model.ReasonAuthRequired
	case errors.Is(err, repository.ErrEventFull):
		return model.ReasonCapacityExceeded
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return model.ReasonDuplicateMembership
	case errors.Is(err, ErrOrganizerNotAllowed):
		return model.ReasonOrganizerNotAllowed
	case errors.Is(err, ErrInvalidInput):
		return model.ReasonInvalidInput
	}
	return ""
}

// FailureMessage returns the human-readable text shown when op fails with err.
func FailureMessage(op string, err error) string {
	var verr *validationError
	switch {
	case errors.As(err, &verr):
		return verr.msg
	case errors.Is(err, repository.ErrNotFound):
		switch op {
		case model.OpLogin:
			return "User not found"
		case model.OpMatchVolunteer:
			return "Event or volunteer not found"
		}
		return "Not found"
	case errors.Is(err, ErrAuthRequired):
		return "You must be logged in to create an event"
	case errors.Is(err, repository.ErrEventFull):
		return "This event already has the maximum number of volunteers"
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return "This volunteer is already matched to this event"
	case errors.Is(err, ErrOrganizerNotAllowed):
		return "Organizers cannot join events as volunteers"
	}
	return err.Error()
}
