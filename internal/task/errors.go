package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrMissingUser  = errors.New("user id is required")
)
