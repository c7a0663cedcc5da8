package repository

import (
	"context"

	"chat-task-manager/internal/model"
)

// Repository is the task store consumed by the interpreter.
// Implementations return errors only for store faults; "not found" is a zero value or false.
type Repository interface {
	// ListTasks returns the user's tasks newest created_at first. Tasks created at the
	// same instant are ordered newest insert first. Positions in this list are what
	// "task N" refers to.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// CreateTask stores a new task and returns it with its generated ID.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// CompleteTask marks the task done and stamps completed_at.
	// Returns a zero Task (ID == "") when the user has no such task.
	CompleteTask(ctx context.Context, userID, id string) (model.Task, error)

	// DeleteTask reports whether a task was removed.
	DeleteTask(ctx context.Context, userID, id string) (bool, error)
}
