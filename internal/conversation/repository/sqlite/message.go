package sqlite

import (
	"context"
	"time"

	"chat-task-manager/internal/conversation/repository"
	"chat-task-manager/internal/model"
)

func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	const query = `
		INSERT INTO chat_messages (id, user_id, sender, message, action, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := opt.CreatedAt.UTC()
	if _, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.UserID, string(opt.Sender), opt.Message, opt.Action, createdAt.UnixNano()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.ChatMessage{}, repository.ErrFailedToInsert
	}

	return model.ChatMessage{
		ID:        opt.ID,
		UserID:    opt.UserID,
		Sender:    opt.Sender,
		Message:   opt.Message,
		Action:    opt.Action,
		CreatedAt: createdAt,
	}, nil
}

// ListMessages reads newest first, then reverses into chronological order.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error) {
	query := `SELECT id, user_id, sender, message, action, created_at
		FROM chat_messages WHERE user_id = ? ORDER BY id DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	msgs := []model.ChatMessage{}
	for rows.Next() {
		var (
			m         model.ChatMessage
			sender    string
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.UserID, &sender, &m.Message, &m.Action, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repository.ErrFailedToList
		}
		m.Sender = model.ChatSender(sender)
		m.CreatedAt = time.Unix(0, createdAt).UTC()
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, repository.ErrFailedToList
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
