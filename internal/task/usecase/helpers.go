package usecase

import (
	"context"
	"fmt"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/schedule"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

// errorResponse logs err and turns it into the ERROR reply.
func (uc *implUseCase) errorResponse(ctx context.Context, method string, err error) task.CommandResponse {
	uc.l.Errorf(ctx, "task.usecase.%s: %v", method, err)
	return task.CommandResponse{
		Message: fmt.Sprintf(MsgError, err),
		Action:  task.ActionError,
	}
}

// listTasks reads the user's tasks in the store's newest-first order.
func (uc *implUseCase) listTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	opt.UserID = sc.UserID
	if opt.Limit <= 0 {
		opt.Limit = uc.listLimit
	}
	return uc.repo.ListTasks(ctx, opt)
}

// split partitions tasks and counts them.
func split(tasks []model.Task) (pending, completed []model.Task, summary *task.Summary) {
	pending, completed = schedule.Partition(tasks)
	return pending, completed, &task.Summary{
		Total:     len(tasks),
		Pending:   len(pending),
		Completed: len(completed),
	}
}
