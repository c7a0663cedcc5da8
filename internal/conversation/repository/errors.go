package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert chat message")
	ErrFailedToList   = errors.New("failed to list chat messages")
)
