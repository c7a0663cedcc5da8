// Package memory is an ephemeral task store for tests, demos and fixture-driven runs.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task // insertion order
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New creates an empty in-memory task Repository.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
