package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"chat-task-manager/internal/model"
	repo "chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/datemath"
)

const taskColumns = `id, user_id, title, description, status, priority, due_date, created_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// ListTasks returns the user's tasks newest first; rowid breaks created_at ties.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(opt.Priority))
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC, rowid DESC`,
		taskColumns, strings.Join(conds, " AND "))
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CreateTask inserts a task row and returns the stored entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	opt, err := opt.Normalize(r.now())
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:          r.newID(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   opt.CreatedAt,
	}
	if t.Status == model.TaskStatusDone {
		completed := t.CreatedAt
		t.CompletedAt = &completed
	}

	const query = `
		INSERT INTO tasks (id, user_id, title, description, status, priority, due_date, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, string(t.Status), string(t.Priority),
		dueDateValue(t.DueDate), t.CreatedAt.UnixNano(), timeValue(t.CompletedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// CompleteTask returns a zero Task when the user has no task with that id.
func (r *implRepository) CompleteTask(ctx context.Context, userID, id string) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks SET status = ?, completed_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING %s`, taskColumns)

	row := r.db.QueryRowContext(ctx, query,
		string(model.TaskStatusDone), r.now().UTC().UnixNano(), id, userID)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes the user's task by id.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t           model.Task
		status      string
		priority    string
		dueDate     sql.NullString
		createdAt   int64
		completedAt sql.NullInt64
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &status, &priority,
		&dueDate, &createdAt, &completedAt); err != nil {
		return model.Task{}, err
	}

	t.Status = model.TaskStatus(status)
	t.Priority = model.TaskPriority(priority)
	t.CreatedAt = time.Unix(0, createdAt).UTC()
	if dueDate.Valid && dueDate.String != "" {
		d, err := datemath.ParseDate(dueDate.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("due_date %q: %w", dueDate.String, err)
		}
		t.DueDate = &d
	}
	if completedAt.Valid {
		c := time.Unix(0, completedAt.Int64).UTC()
		t.CompletedAt = &c
	}
	return t, nil
}

func dueDateValue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(datemath.DateLayout)
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().UnixNano()
}
