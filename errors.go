package taskhelp

import "errors"

var (
	// ErrInvalidRegistration is returned when a registration call cannot be
	// resolved into a task name and a task function.
	ErrInvalidRegistration = errors.New("invalid registration")

	// ErrTaskNotFound is returned by hosts when a name has no task.
	ErrTaskNotFound = errors.New("task not found")
)
