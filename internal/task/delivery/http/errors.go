package http

import (
	"errors"
	"net/http"

	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/task"
	"chat-task-manager/pkg/response"
)

var (
	errUnauthorized = response.NewErr(http.StatusUnauthorized, http.StatusUnauthorized, "Unauthorized")
	errBadRequest   = response.NewErr(http.StatusBadRequest, response.BadRequestErrorCode, "Bad request")
	errInternal     = response.NewErr(http.StatusInternalServerError, response.InternalServerErrorCode, response.DefaultErrorMessage)
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) *response.Err {
	switch {
	case errors.Is(err, task.ErrMissingUser), errors.Is(err, conversation.ErrMissingUser):
		return errUnauthorized
	case errors.Is(err, task.ErrEmptyMessage), errors.Is(err, conversation.ErrEmptyMessage):
		return errBadRequest
	default:
		return errInternal
	}
}
