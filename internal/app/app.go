// Package app wires the stores, classifier and use cases shared by every entry point.
package app

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/config"
	"chat-task-manager/internal/conversation"
	chatUC "chat-task-manager/internal/conversation/usecase"
	"chat-task-manager/internal/router"
	"chat-task-manager/internal/storage"
	"chat-task-manager/internal/task"
	taskUC "chat-task-manager/internal/task/usecase"
	"chat-task-manager/pkg/datemath"
	"chat-task-manager/pkg/llmprovider"
	"chat-task-manager/pkg/log"
)

// App holds the wired components of one process.
type App struct {
	Stores *storage.Stores
	Tasks  task.UseCase
	Chat   conversation.UseCase
}

// New opens the configured store and builds the use cases on top of it.
// seedUser owns seed tasks that name no user.
func New(ctx context.Context, cfg *config.Config, seedUser string, l log.Logger) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Interpreter.Timezone, datemath.DateOrder(cfg.Interpreter.DateOrder))
	if err != nil {
		return nil, fmt.Errorf("datemath: %w", err)
	}

	rt := newRouter(ctx, cfg, l)

	stores, err := storage.Open(ctx, cfg.Store, seedUser, l)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Store: %s", describeStore(cfg.Store))

	return &App{
		Stores: stores,
		Tasks:  taskUC.New(l, rt, stores.Tasks, dateMath, cfg.Interpreter.ListLimit),
		Chat:   chatUC.New(stores.Chat, l, cfg.Interpreter.HistoryLimit),
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Stores.Close()
}

// newRouter never fails: without a usable provider the keyword rules classify alone.
func newRouter(ctx context.Context, cfg *config.Config, l log.Logger) *router.SemanticRouter {
	if len(cfg.LLM.Providers) == 0 {
		l.Warn(ctx, "No LLM providers configured, classifying with keyword rules only")
		return router.New(nil, cfg.Interpreter.ClassifyTimeout, l)
	}

	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "LLM providers unavailable, classifying with keyword rules only: %v", err)
		return router.New(nil, cfg.Interpreter.ClassifyTimeout, l)
	}

	names := make([]string, 0, len(llm.Providers()))
	for _, p := range llm.Providers() {
		names = append(names, p.Name()+"/"+p.Model())
	}
	l.Infof(ctx, "LLM providers: %s", strings.Join(names, ", "))

	return router.New(llm, cfg.Interpreter.ClassifyTimeout, l)
}

func describeStore(cfg config.StoreConfig) string {
	if cfg.Driver == config.StoreDriverMemory {
		return "memory"
	}
	return "sqlite " + cfg.SQLitePath
}
