package usecase

import (
	"context"
	"fmt"

	"chat-task-manager/internal/extract"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/router"
	"chat-task-manager/internal/schedule"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

// viewPlan lists what is due in a period. An explicit date in the message wins,
// then the classifier's period, then period words in the message.
func (uc *implUseCase) viewPlan(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand) task.CommandResponse {
	period := schedule.Period{Kind: cmd.TimePeriod}
	if !period.Kind.Valid() || period.Kind == extract.PeriodAll {
		period.Kind = extract.PeriodOf(message)
	}
	if d, ok := extract.ExplicitDate(message, uc.dateMath); ok {
		period.Date = d
	}

	tasks, err := uc.listTasks(ctx, sc, repository.ListTasksOptions{})
	if err != nil {
		return uc.errorResponse(ctx, "viewPlan", err)
	}

	res := uc.filter.Apply(tasks, period, uc.now())
	pending, completed, summary := split(res.Tasks)

	return task.CommandResponse{
		Message:        fmt.Sprintf(MsgViewPlan, res.Label, summary.Pending, summary.Completed),
		Action:         task.ActionTaskViewPlan,
		Tasks:          res.Tasks,
		PendingTasks:   pending,
		CompletedTasks: completed,
		Summary:        summary,
	}
}
