package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/internal/conversation"
	repo "chat-task-manager/internal/conversation/repository"
	"chat-task-manager/internal/model"
)

// Record appends a message to the caller's chat log.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input conversation.RecordInput) (model.ChatMessage, error) {
	if sc.UserID == "" {
		return model.ChatMessage{}, conversation.ErrMissingUser
	}
	if input.Sender != model.ChatSenderUser && input.Sender != model.ChatSenderBot {
		return model.ChatMessage{}, fmt.Errorf("%w: %q", conversation.ErrInvalidSender, input.Sender)
	}
	if strings.TrimSpace(input.Message) == "" {
		return model.ChatMessage{}, conversation.ErrEmptyMessage
	}

	now := uc.now()
	id, err := uc.newID(now)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Record newID: %v", err)
		return model.ChatMessage{}, err
	}

	msg, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ID:        id,
		UserID:    sc.UserID,
		Sender:    input.Sender,
		Message:   input.Message,
		Action:    input.Action,
		CreatedAt: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Record CreateMessage: %v", err)
		return model.ChatMessage{}, err
	}
	return msg, nil
}
