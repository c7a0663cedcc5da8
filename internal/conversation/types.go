package conversation

import "chat-task-manager/internal/model"

// ActionUserInput tags messages typed by the user.
const ActionUserInput = "USER_INPUT"

type RecordInput struct {
	Sender  model.ChatSender
	Message string
	Action  string
}

// HistoryInput.Limit <= 0 means the configured default.
type HistoryInput struct {
	Limit int
}
