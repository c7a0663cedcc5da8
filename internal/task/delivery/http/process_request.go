package http

import (
	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/middleware"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
)

// processChatReq binds and validates the chat message body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return chatReq{}, sc, task.ErrMissingUser
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, task.ErrEmptyMessage
	}
	return req, sc, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return historyReq{}, sc, task.ErrMissingUser
	}

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}
