// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation failure. The specific
// errors below wrap it, so callers can test for the whole family with errors.Is.
var ErrValidation = errors.New("validation failed")

// Validation errors returned by the entity constructors.
var (
	// ErrEmptyUsername is returned when a username is empty or whitespace-only.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrInvalidEmail is returned when an email lacks an '@' or a '.'.
	ErrInvalidEmail = fmt.Errorf("%w: a valid email address is required", ErrValidation)

	// ErrEmptyDescription is returned when a workspace or goal table description
	// is empty or whitespace-only.
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)

	// ErrEmptyTitle is returned when a goal table title is empty or whitespace-only.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrEmptyText is returned when goal text is empty or whitespace-only.
	ErrEmptyText = fmt.Errorf("%w: goal text cannot be empty", ErrValidation)

	// ErrUnknownRole is returned by ParseRoleStrict for unrecognised role names.
	ErrUnknownRole = fmt.Errorf("%w: unknown user role", ErrValidation)
)

// ErrNilOwner is returned when an owned entity is constructed without an owner.
var ErrNilOwner = errors.New("owner cannot be nil")
