package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/internal/extract"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/router"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

func (uc *implUseCase) add(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand) task.CommandResponse {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title, _ = extract.Title(message)
	}
	if len([]rune(title)) < extract.MinTermLength {
		return task.CommandResponse{Message: MsgAddTaskRequest, Action: task.ActionAddTaskRequest}
	}

	now := uc.now()
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = fmt.Sprintf(DescriptionCreatedVia, now.In(uc.dateMath.Location()).Format(DescriptionTimeLayout))
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: description,
		Status:      model.TaskStatusTodo,
		Priority:    model.TaskPriorityMedium,
		CreatedAt:   now,
	})
	if err != nil {
		return uc.errorResponse(ctx, "add", err)
	}

	return task.CommandResponse{
		Message: fmt.Sprintf(MsgTaskAdded, created.Title),
		Action:  task.ActionTaskAddSuccess,
		Task:    &created,
	}
}
