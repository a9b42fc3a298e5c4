package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when no task matches the id and owner.
	// Cross-owner access reports the same error so existence never leaks.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTitleRequired is returned when a task is written without a title.
	ErrTitleRequired = errors.New("title is required")
)
