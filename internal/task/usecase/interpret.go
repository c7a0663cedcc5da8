package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/router"
	"chat-task-manager/internal/task"
)

// Interpret classifies message and dispatches it to one handler.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, message string) task.CommandResponse {
	message = strings.TrimSpace(message)
	if message == "" {
		return task.CommandResponse{Message: MsgEmptyMessage, Action: task.ActionError}
	}
	if sc.UserID == "" {
		return uc.errorResponse(ctx, "Interpret", task.ErrMissingUser)
	}
	if err := ctx.Err(); err != nil {
		return uc.errorResponse(ctx, "Interpret", err)
	}

	cmd := uc.router.Classify(ctx, message)

	// An abandoned request never reaches the store.
	if err := ctx.Err(); err != nil {
		return uc.errorResponse(ctx, "Interpret", err)
	}

	uc.l.Infof(ctx, "task.usecase.Interpret: user=%s intent=%s source=%s", sc.UserID, cmd.Intent, cmd.Source)

	switch cmd.Intent {
	case router.IntentAdd:
		return uc.add(ctx, sc, message, cmd)
	case router.IntentComplete:
		return uc.complete(ctx, sc, message, cmd)
	case router.IntentDelete:
		return uc.delete(ctx, sc, message, cmd)
	case router.IntentEdit:
		return uc.edit(ctx, sc, message, cmd)
	case router.IntentSearch:
		return uc.search(ctx, sc, message, cmd)
	case router.IntentViewPlan:
		return uc.viewPlan(ctx, sc, message, cmd)
	case router.IntentView:
		return uc.view(ctx, sc, message)
	default:
		return task.CommandResponse{
			Message: fmt.Sprintf(MsgUnderstood, message),
			Action:  task.ActionUnderstood,
		}
	}
}
