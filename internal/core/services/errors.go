package services

import "errors"

// Task errors
var (
	ErrTaskNotFound           = errors.New("task: not found")
	ErrTaskTitleRequired      = errors.New("task: title is required")
	ErrTaskTitleTooLong       = errors.New("task: title exceeds 200 characters")
	ErrTaskDescriptionTooLong = errors.New("task: description exceeds 1000 characters")
	ErrTaskInvalidStatus      = errors.New("task: status must be one of: pending, in-progress, completed")
)

// IsValidationError reports whether err is a client-input fault that maps
// to HTTP 400 rather than 404 or 500.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTaskTitleRequired) ||
		errors.Is(err, ErrTaskTitleTooLong) ||
		errors.Is(err, ErrTaskDescriptionTooLong) ||
		errors.Is(err, ErrTaskInvalidStatus)
}
