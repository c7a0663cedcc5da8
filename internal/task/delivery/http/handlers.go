package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Interprets a free-form message ("add a task to buy milk", "complete task 2") and runs the task operation it asks for. The user message and the reply are both appended to the chat history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Authenticated user id"
// @Param       body      body   chatReq true "Chat message"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp{data=chatResp} "Empty message"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatReq(c)
	if err != nil {
		if errors.Is(err, task.ErrEmptyMessage) {
			resp := h.uc.Interpret(ctx, sc, "")
			response.Error(c, errors.New(resp.Message), resp)
			return
		}
		response.HTTPError(c, h.mapError(err))
		return
	}

	if _, err := h.chat.Record(ctx, sc, conversation.RecordInput{
		Sender:  model.ChatSenderUser,
		Message: req.Message,
		Action:  conversation.ActionUserInput,
	}); err != nil {
		h.l.Errorf(ctx, "chat.Record user: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	resp := h.uc.Interpret(ctx, sc, req.Message)

	if _, err := h.chat.Record(ctx, sc, conversation.RecordInput{
		Sender:  model.ChatSenderBot,
		Message: resp.Message,
		Action:  string(resp.Action),
	}); err != nil {
		// The task operation already ran; the reply still goes out.
		h.l.Warnf(ctx, "chat.Record bot: %v", err)
	}

	response.OK(c, resp)
}

// History godoc
// @Summary     Chat history
// @Description Returns the caller's most recent chat messages, oldest first.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Authenticated user id"
// @Param       limit     query  int    false "Max messages (default and cap: interpreter.history_limit)"
// @Success     200 {object} response.Resp{data=historyResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	msgs, err := h.chat.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.History: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(msgs))
}
