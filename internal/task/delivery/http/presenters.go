package http

import (
	"strings"

	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return task.ErrEmptyMessage
	}
	return nil
}

// ---

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() conversation.HistoryInput {
	if r.Limit < 0 {
		r.Limit = 0
	}
	return conversation.HistoryInput{Limit: r.Limit}
}

// --- Response DTOs ---

// chatResp is the interpreted reply; see task.CommandResponse for the fields.
type chatResp = task.CommandResponse

type historyResp struct {
	Messages []model.ChatMessage `json:"messages"`
	Count    int                 `json:"count"`
}

func (h *handler) newHistoryResp(msgs []model.ChatMessage) historyResp {
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	return historyResp{Messages: msgs, Count: len(msgs)}
}
