package repository

import (
	"time"

	"chat-task-manager/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
// Empty Status and Priority default to todo and medium; a zero CreatedAt means now.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	DueDate     *time.Time
	CreatedAt   time.Time
}

// ListTasksOptions filters a user's tasks. Zero-valued fields do not filter; Limit 0 means no limit.
type ListTasksOptions struct {
	UserID   string
	Status   model.TaskStatus
	Priority model.TaskPriority
	Limit    int
}
