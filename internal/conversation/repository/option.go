package repository

import (
	"time"

	"chat-task-manager/internal/model"
)

// CreateMessageOptions carries a fully built message; the ID sorts by creation time.
type CreateMessageOptions struct {
	ID        string
	UserID    string
	Sender    model.ChatSender
	Message   string
	Action    string
	CreatedAt time.Time
}

// ListMessagesOptions selects a user's log. Limit 0 returns everything.
type ListMessagesOptions struct {
	UserID string
	Limit  int
}
