// Package mcp exposes the chat interpreter as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chat-task-manager/internal/conversation"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/pkg/log"
)

const (
	ServerName = "chat-task-manager"

	ToolInterpretMessage = "interpret_message"
	ToolChatHistory      = "chat_history"
)

// ServerConfig holds the dependencies of the MCP server.
type ServerConfig struct {
	Logger  log.Logger
	UseCase task.UseCase
	Chat    conversation.UseCase
	// UserID is used when a tool call names no user_id.
	UserID  string
	Version string
}

type handler struct {
	l      log.Logger
	uc     task.UseCase
	chat   conversation.UseCase
	userID string
}

// NewServer creates an MCP server with the interpreter tools registered.
func NewServer(cfg ServerConfig) *server.MCPServer {
	ver := cfg.Version
	if ver == "" {
		ver = "dev"
	}

	s := server.NewMCPServer(ServerName, ver, server.WithToolCapabilities(false))

	h := &handler{l: cfg.Logger, uc: cfg.UseCase, chat: cfg.Chat, userID: cfg.UserID}
	h.registerInterpretTool(s)
	h.registerHistoryTool(s)
	return s
}

func (h *handler) registerInterpretTool(s *server.MCPServer) {
	tool := mcp.NewTool(ToolInterpretMessage,
		mcp.WithDescription("Interpret a natural-language task message (add, complete, delete, edit, search, view plan) and run it against the user's task list. Returns the reply as JSON."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The chat message, e.g. 'add a task to buy milk' or 'complete task 2'"),
		),
		mcp.WithString("user_id",
			mcp.Description("User whose tasks are affected. Defaults to the server's configured user."),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil || strings.TrimSpace(message) == "" {
			return mcp.NewToolResultError("Please provide a message"), nil
		}
		sc := h.scope(req)

		if _, err := h.chat.Record(ctx, sc, conversation.RecordInput{
			Sender:  model.ChatSenderUser,
			Message: message,
			Action:  conversation.ActionUserInput,
		}); err != nil {
			h.l.Errorf(ctx, "mcp.%s Record user: %v", ToolInterpretMessage, err)
			return mcp.NewToolResultError(fmt.Sprintf("chat log error: %v", err)), nil
		}

		resp := h.uc.Interpret(ctx, sc, message)

		if _, err := h.chat.Record(ctx, sc, conversation.RecordInput{
			Sender:  model.ChatSenderBot,
			Message: resp.Message,
			Action:  string(resp.Action),
		}); err != nil {
			h.l.Warnf(ctx, "mcp.%s Record bot: %v", ToolInterpretMessage, err)
		}

		return jsonResult(resp)
	})
}

func (h *handler) registerHistoryTool(s *server.MCPServer) {
	tool := mcp.NewTool(ToolChatHistory,
		mcp.WithDescription("Return the user's most recent chat messages, oldest first."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of messages (default and cap come from the server's history limit)"),
		),
		mcp.WithString("user_id",
			mcp.Description("User whose history is returned. Defaults to the server's configured user."),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input conversation.HistoryInput
		if v, err := req.RequireFloat("limit"); err == nil && v > 0 {
			input.Limit = int(v)
		}

		msgs, err := h.chat.History(ctx, h.scope(req), input)
		if err != nil {
			h.l.Errorf(ctx, "mcp.%s: %v", ToolChatHistory, err)
			return mcp.NewToolResultError(fmt.Sprintf("history error: %v", err)), nil
		}
		if msgs == nil {
			msgs = []model.ChatMessage{}
		}
		return jsonResult(msgs)
	})
}

func (h *handler) scope(req mcp.CallToolRequest) model.Scope {
	if userID, err := req.RequireString("user_id"); err == nil && strings.TrimSpace(userID) != "" {
		return model.Scope{UserID: strings.TrimSpace(userID)}
	}
	return model.Scope{UserID: h.userID}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
