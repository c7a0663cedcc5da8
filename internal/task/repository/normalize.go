package repository

import (
	"fmt"
	"strings"
	"time"

	"chat-task-manager/internal/model"
)

// Normalize applies defaults and validates opt. Backends call it before storing.
func (opt CreateTaskOptions) Normalize(now time.Time) (CreateTaskOptions, error) {
	opt.Title = strings.TrimSpace(opt.Title)
	if opt.UserID == "" {
		return opt, fmt.Errorf("%w: user id is required", ErrInvalidTask)
	}
	if opt.Title == "" {
		return opt, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if opt.Status == "" {
		opt.Status = model.TaskStatusTodo
	}
	if !opt.Status.Valid() {
		return opt, fmt.Errorf("%w: status %q", ErrInvalidTask, opt.Status)
	}
	if opt.Priority == "" {
		opt.Priority = model.TaskPriorityMedium
	}
	if !opt.Priority.Valid() {
		return opt, fmt.Errorf("%w: priority %q", ErrInvalidTask, opt.Priority)
	}
	if opt.CreatedAt.IsZero() {
		opt.CreatedAt = now
	}
	opt.CreatedAt = opt.CreatedAt.UTC()
	if opt.DueDate != nil {
		d := time.Date(opt.DueDate.Year(), opt.DueDate.Month(), opt.DueDate.Day(), 0, 0, 0, 0, time.UTC)
		opt.DueDate = &d
	}
	return opt, nil
}
