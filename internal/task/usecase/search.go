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

// search matches the term case-insensitively against title and description.
func (uc *implUseCase) search(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand) task.CommandResponse {
	term := strings.TrimSpace(cmd.SearchQuery)
	if term == "" {
		var ok bool
		if term, ok = extract.SearchTerm(message); !ok {
			return task.CommandResponse{Message: MsgSearchRequest, Action: task.ActionSearchRequest}
		}
	}

	tasks, err := uc.listTasks(ctx, sc, repository.ListTasksOptions{})
	if err != nil {
		return uc.errorResponse(ctx, "search", err)
	}

	needle := strings.ToLower(term)
	matches := []model.Task{}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) || strings.Contains(strings.ToLower(t.Description), needle) {
			matches = append(matches, t)
		}
	}

	uc.l.Infof(ctx, "task.usecase.search: user=%s term=%q matches=%d", sc.UserID, term, len(matches))

	if len(matches) == 0 {
		return task.CommandResponse{
			Message: fmt.Sprintf(MsgSearchNoResults, term),
			Action:  task.ActionTaskSearchNoResults,
			Tasks:   matches,
		}
	}
	return task.CommandResponse{
		Message: fmt.Sprintf(MsgSearchFound, len(matches), term),
		Action:  task.ActionTaskSearch,
		Tasks:   matches,
	}
}
