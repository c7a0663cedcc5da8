package model

import "time"

// ChatSender tells who wrote a chat log entry.
type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderBot  ChatSender = "bot"
)

// ChatMessage is one line of a user's conversation log.
type ChatMessage struct {
	ID        string     `json:"id"` // ULID, sortable by creation time
	UserID    string     `json:"user_id"`
	Sender    ChatSender `json:"sender"`
	Message   string     `json:"message"`
	Action    string     `json:"action"`
	CreatedAt time.Time  `json:"created_at"`
}
