package task

import (
	"context"

	"chat-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Interpret classifies a free-form chat message and runs the task operation it asks for.
	// It never returns an error: failures are reported through the response's Action.
	Interpret(ctx context.Context, sc model.Scope, message string) CommandResponse
}
