package conversation

import "errors"

var (
	ErrMissingUser   = errors.New("user id is required")
	ErrInvalidSender = errors.New("invalid sender")
	ErrEmptyMessage  = errors.New("message is empty")
)
