package usecase

import (
	"context"

	"chat-task-manager/internal/conversation"
	repo "chat-task-manager/internal/conversation/repository"
	"chat-task-manager/internal/model"
)

// History returns the caller's last messages, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input conversation.HistoryInput) ([]model.ChatMessage, error) {
	if sc.UserID == "" {
		return nil, conversation.ErrMissingUser
	}

	limit := input.Limit
	if limit <= 0 || limit > uc.historyLimit {
		limit = uc.historyLimit
	}

	msgs, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.History ListMessages: %v", err)
		return nil, err
	}
	return msgs, nil
}
