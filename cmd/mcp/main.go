// Command mcp serves the chat interpreter to MCP clients over stdio.
// stdout carries the protocol, so logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"chat-task-manager/config"
	"chat-task-manager/internal/app"
	taskMCP "chat-task-manager/internal/task/delivery/mcp"
	"chat-task-manager/pkg/log"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Output:   os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting MCP server (user %q)...", cfg.MCP.UserID)

	a, err := app.New(ctx, cfg, cfg.MCP.UserID, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		os.Exit(1)
	}
	defer a.Close()

	s := taskMCP.NewServer(taskMCP.ServerConfig{
		Logger:  logger,
		UseCase: a.Tasks,
		Chat:    a.Chat,
		UserID:  cfg.MCP.UserID,
		Version: version,
	})

	if err := server.ServeStdio(s); err != nil {
		logger.Error(ctx, "MCP server stopped: ", err)
	}
}
