package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

func (uc *implUseCase) view(ctx context.Context, sc model.Scope, message string) task.CommandResponse {
	kind, opt := viewFilter(message)

	tasks, err := uc.listTasks(ctx, sc, opt)
	if err != nil {
		return uc.errorResponse(ctx, "view", err)
	}
	if len(tasks) == 0 {
		return task.CommandResponse{
			Message: fmt.Sprintf(MsgViewEmpty, kind),
			Action:  task.ActionTaskViewEmpty,
		}
	}

	pending, completed, summary := split(tasks)
	return task.CommandResponse{
		Message:        fmt.Sprintf(MsgViewAll, len(tasks), kind),
		Action:         task.ActionTaskViewAll,
		Tasks:          tasks,
		PendingTasks:   pending,
		CompletedTasks: completed,
		Summary:        summary,
	}
}

// viewFilter picks the listing from the first keyword found, in fixed order.
func viewFilter(message string) (string, repository.ListTasksOptions) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "completed"):
		return ViewKindCompleted, repository.ListTasksOptions{Status: model.TaskStatusDone}
	case strings.Contains(lower, "pending"), strings.Contains(lower, "incomplete"):
		return ViewKindPending, repository.ListTasksOptions{Status: model.TaskStatusTodo}
	case strings.Contains(lower, "high"), strings.Contains(lower, "urgent"):
		return ViewKindHighPriority, repository.ListTasksOptions{Priority: model.TaskPriorityHigh}
	default:
		return ViewKindAll, repository.ListTasksOptions{}
	}
}
