package conversation

import (
	"context"

	"chat-task-manager/internal/model"
)

// UseCase keeps the per-user chat log.
type UseCase interface {
	// Record appends one message to the caller's log.
	Record(ctx context.Context, sc model.Scope, input RecordInput) (model.ChatMessage, error)

	// History returns the caller's last messages, oldest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) ([]model.ChatMessage, error)
}
