package service

import "errors"

// Prerequisite errors. Each blocks the requested action until the missing
// entity has been created; no state changes when one is returned.
var (
	// ErrNoCurrentUser is returned when an action needs a user and none exists.
	ErrNoCurrentUser = errors.New("no current user")

	// ErrNoCurrentWorkspace is returned when a goal table is requested
	// before any workspace exists.
	ErrNoCurrentWorkspace = errors.New("no current workspace")

	// ErrNoCurrentGoalTable is returned when a goal is requested before any
	// goal table exists.
	ErrNoCurrentGoalTable = errors.New("no current goal table")
)

// IsPrerequisiteError reports whether err is one of the prerequisite errors.
func IsPrerequisiteError(err error) bool {
	return errors.Is(err, ErrNoCurrentUser) ||
		errors.Is(err, ErrNoCurrentWorkspace) ||
		errors.Is(err, ErrNoCurrentGoalTable)
}
