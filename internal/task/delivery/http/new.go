package http

import (
	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/task"
	"chat-task-manager/pkg/log"
)

type handler struct {
	l    log.Logger
	uc   task.UseCase
	chat conversation.UseCase
}

// New creates a new HTTP handler for the chat endpoints.
func New(l log.Logger, uc task.UseCase, chat conversation.UseCase) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		chat: chat,
	}
}
