package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// validationError carries the message shown to the user and unwraps to
// ErrInvalidInput.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return "invalid input: " + e.msg }

func (e *validationError) Unwrap() error { return ErrInvalidInput }

func invalid(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

func validateRegistration(req model.RegisterUserRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return invalid("Email is required")
	}
	if !isValidEmail(req.Email) {
		return invalid("Please enter a valid email address")
	}
	if len(req.Skills) == 0 {
		return invalid("Please select at least one skill")
	}
	if err := validateSkills(req.Skills); err != nil {
		return err
	}
	if !req.Region.Valid() {
		return invalid("Unknown region %q", req.Region)
	}
	return nil
}

func validateEvent(req model.CreateEventRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return invalid("Event title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return invalid("Event description is required")
	}
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return invalid("Date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(model.TimeLayout, req.Time); err != nil {
		return invalid("Time must be in HH:MM format")
	}
	if strings.TrimSpace(req.Location) == "" {
		return invalid("Event location is required")
	}
	if len(req.RequiredSkills) == 0 {
		return invalid("Please select at least one required skill")
	}
	if err := validateSkills(req.RequiredSkills); err != nil {
		return err
	}
	if !req.Region.Valid() {
		return invalid("Unknown region %q", req.Region)
	}
	if req.MaxVolunteers <= 0 {
		return invalid("Max volunteers must be a positive number")
	}
	return nil
}

func validateSkills(skills []model.Skill) error {
	for _, s := range skills {
		if !s.Valid() {
			return invalid("Unknown skill %q", s)
		}
	}
	return nil
}

// isValidEmail does a basic structural check.
func isValidEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return false
	}
	return local != "" && strings.Contains(domain, ".")
}
