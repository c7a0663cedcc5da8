package usecase

import (
	"context"
	"fmt"

	"chat-task-manager/internal/extract"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/resolver"
	"chat-task-manager/internal/router"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

// resolve finds the task a COMPLETE, DELETE or EDIT message points at.
// A non-nil reply means resolution ended the conversation turn.
func (uc *implUseCase) resolve(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand, verb extract.Verb) (model.Task, *task.CommandResponse) {
	tasks, err := uc.listTasks(ctx, sc, repository.ListTasksOptions{})
	if err != nil {
		resp := uc.errorResponse(ctx, string(verb), err)
		return model.Task{}, &resp
	}

	// A task id the classifier spotted counts as if it were written in the message.
	text := message
	if _, inMessage := extract.UUID(message); !inMessage {
		if id, ok := extract.UUID(cmd.ReferencedID); ok {
			text = id + " " + message
		}
	}

	ref := resolver.Resolve(text, verb, tasks)
	if ref.Found {
		uc.l.Debugf(ctx, "task.usecase.resolve: %s matched %s by %s", verb, ref.Task.ID, ref.Strategy)
		return ref.Task, nil
	}

	resp := task.CommandResponse{Action: task.ActionTaskNotFound}
	if ref.Reason == resolver.ReasonOrdinalOutOfRange {
		resp.Message = fmt.Sprintf(MsgOrdinalNotFound, ref.OrdinalText, ref.Size)
	} else {
		resp.Message = fmt.Sprintf(MsgReferenceNotFound, verb)
	}
	return model.Task{}, &resp
}

func (uc *implUseCase) complete(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand) task.CommandResponse {
	target, resp := uc.resolve(ctx, sc, message, cmd, extract.VerbComplete)
	if resp != nil {
		return *resp
	}

	updated, err := uc.repo.CompleteTask(ctx, sc.UserID, target.ID)
	if err != nil {
		return uc.errorResponse(ctx, "complete", err)
	}
	if updated.ID == "" {
		return task.CommandResponse{Message: MsgCompleteFailed, Action: task.ActionTaskUpdateFailed}
	}

	return task.CommandResponse{
		Message: fmt.Sprintf(MsgTaskCompleted, updated.Title),
		Action:  task.ActionTaskCompleteSuccess,
		Task:    &updated,
	}
}

func (uc *implUseCase) delete(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand) task.CommandResponse {
	target, resp := uc.resolve(ctx, sc, message, cmd, extract.VerbDelete)
	if resp != nil {
		return *resp
	}

	deleted, err := uc.repo.DeleteTask(ctx, sc.UserID, target.ID)
	if err != nil {
		return uc.errorResponse(ctx, "delete", err)
	}
	if !deleted {
		return task.CommandResponse{Message: MsgDeleteFailed, Action: task.ActionTaskDeleteFailed}
	}

	return task.CommandResponse{
		Message: fmt.Sprintf(MsgTaskDeleted, target.Title),
		Action:  task.ActionTaskDeleteSuccess,
		Task:    &target,
	}
}

// edit only identifies the task; the follow-up question carries the change.
func (uc *implUseCase) edit(ctx context.Context, sc model.Scope, message string, cmd router.ParsedCommand) task.CommandResponse {
	target, resp := uc.resolve(ctx, sc, message, cmd, extract.VerbEdit)
	if resp != nil {
		return *resp
	}

	return task.CommandResponse{
		Message: fmt.Sprintf(MsgTaskEditFound, target.Title),
		Action:  task.ActionTaskEditFound,
		Task:    &target,
	}
}
