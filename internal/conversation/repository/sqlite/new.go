package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"chat-task-manager/internal/conversation/repository"
	"chat-task-manager/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_messages (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	sender     TEXT NOT NULL,
	message    TEXT NOT NULL,
	action     TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages (user_id, id);`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed chat log. Call Migrate once on db first.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("conversation/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the chat_messages table when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("conversation/repository/sqlite: migrate: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/sqlite.%s", method)
}
