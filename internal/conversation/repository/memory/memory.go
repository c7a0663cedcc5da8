// Package memory keeps the chat log in process memory.
package memory

import (
	"context"
	"sync"

	"chat-task-manager/internal/conversation/repository"
	"chat-task-manager/internal/model"
)

type implRepository struct {
	mu     sync.RWMutex
	byUser map[string][]model.ChatMessage
}

// New creates an empty in-memory chat log.
func New() repository.Repository {
	return &implRepository{byUser: map[string][]model.ChatMessage{}}
}

func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	m := model.ChatMessage{
		ID:        opt.ID,
		UserID:    opt.UserID,
		Sender:    opt.Sender,
		Message:   opt.Message,
		Action:    opt.Action,
		CreatedAt: opt.CreatedAt.UTC(),
	}

	r.mu.Lock()
	r.byUser[opt.UserID] = append(r.byUser[opt.UserID], m)
	r.mu.Unlock()
	return m, nil
}

func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.byUser[opt.UserID]
	start := 0
	if opt.Limit > 0 && len(all) > opt.Limit {
		start = len(all) - opt.Limit
	}
	return append([]model.ChatMessage{}, all[start:]...), nil
}
