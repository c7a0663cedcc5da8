package repository

import (
	"context"

	"chat-task-manager/internal/model"
)

// Repository stores chat log messages.
type Repository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)

	// ListMessages returns the user's most recent Limit messages in chronological order.
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.ChatMessage, error)
}
