package router

import (
	"context"
	"time"

	"chat-task-manager/pkg/llmprovider"
	"chat-task-manager/pkg/log"
)

// Router turns a raw chat message into a ParsedCommand.
type Router interface {
	Classify(ctx context.Context, message string) ParsedCommand
}

// Generator is the language-model call the router depends on.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// SemanticRouter classifies with a language model and falls back to keyword rules.
type SemanticRouter struct {
	llm     Generator
	timeout time.Duration
	l       log.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a SemanticRouter. llm may be nil, in which case only the keyword rules run.
// timeout bounds each model call; 0 leaves it to the caller's context.
func New(llm Generator, timeout time.Duration, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm:     llm,
		timeout: timeout,
		l:       l,
	}
}
